package router

import (
	"context"

	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/internal/model"
	"storefront-chatbot/pkg/helicone"
	"storefront-chatbot/pkg/log"
)

// Router classifies incoming shopper messages and produces answer text,
// either deterministically from the catalog or by delegating to the LLM
// gateway.
type Router interface {
	Respond(ctx context.Context, sc model.Scope, message string) string
}

// KeywordRouter routes via an ordered decision table over keyword rules,
// with LLM escalation for anonymous, long, or explanatory queries.
type KeywordRouter struct {
	catalog   *catalog.Catalog
	formatter *catalog.Formatter
	llm       helicone.Completer
	l         log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. The catalog is read-only; the router holds
// no mutable state, so it is safe for concurrent use.
func New(cat *catalog.Catalog, formatter *catalog.Formatter, llm helicone.Completer, l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		catalog:   cat,
		formatter: formatter,
		llm:       llm,
		l:         l,
	}
}
