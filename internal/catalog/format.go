package catalog

import (
	"fmt"
	"strings"

	"storefront-chatbot/internal/model"
)

// Style selects the output markup for formatted product lists.
type Style int

const (
	// StyleMarkdown renders links as [title](url), lines joined with "\n".
	StyleMarkdown Style = iota
	// StyleHTML renders links as <a href>, lines joined with "<br>".
	StyleHTML
)

// Formatter renders product lists for chat replies. The store base URL is
// fixed at construction; products without a handle render without a link.
type Formatter struct {
	storeBaseURL string
}

// NewFormatter creates a Formatter that links products under the given
// storefront base URL (empty disables links entirely).
func NewFormatter(storeBaseURL string) *Formatter {
	return &Formatter{storeBaseURL: storeBaseURL}
}

// FormatProductList renders up to limit products as a numbered list in the
// given style. It never fails: missing titles and prices render as "N/A"
// and products without a constructible link render as plain text.
func (f *Formatter) FormatProductList(products []model.Product, limit int, style Style) string {
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	lines := make([]string, 0, len(products))
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s - $%s", i+1, f.titleOrLink(p, style), p.Price()))
	}

	sep := "\n"
	if style == StyleHTML {
		sep = "<br>"
	}
	return strings.Join(lines, sep)
}

func (f *Formatter) titleOrLink(p model.Product, style Style) string {
	title := p.DisplayTitle()
	url := p.StoreURL(f.storeBaseURL)
	if url == "" {
		return title
	}
	if style == StyleHTML {
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, title)
	}
	return fmt.Sprintf("[%s](%s)", title, url)
}
