// Package markdown renders chat answers from Markdown into the HTML
// fragments returned by the chat endpoint.
package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Renderer converts a Markdown answer into an HTML fragment.
type Renderer interface {
	Render(text string) string
}

type renderer struct{}

// NewRenderer creates the gomarkdown-backed Renderer.
func NewRenderer() Renderer {
	return renderer{}
}

// Render converts text to HTML. Answers that already contain HTML markup
// (the list-all branch emits <br>-joined fragments) pass through unchanged.
func (renderer) Render(text string) string {
	if strings.Contains(text, "<br>") || strings.Contains(text, "<a href") {
		return text
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(text), p, r)
	return strings.TrimSpace(string(out))
}
