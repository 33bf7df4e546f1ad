package router

import (
	"context"
	"fmt"
	"strings"

	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/internal/model"
)

// Respond walks the decision table and returns the first matching rule's
// answer. Every branch is read-only with respect to the catalog; only the
// LLM-delegation branches are non-deterministic.
func (r *KeywordRouter) Respond(ctx context.Context, sc model.Scope, message string) string {
	q := newQuery(sc, message)
	for _, rl := range r.rules() {
		if rl.match(q) {
			r.l.Infof(ctx, "router: rule %q matched for user=%s session=%s", rl.name, sc.UserID, sc.SessionID)
			return rl.respond(ctx, q)
		}
	}
	// The default rule matches everything; this is unreachable.
	return ""
}

// rules is the ordered decision table. The escalation rule sits second, so
// the keyword rules below it fire only for short, identified-user queries
// without explanatory cues — the deliberate fast path. Reordering changes
// observable behavior; see the router tests.
func (r *KeywordRouter) rules() []rule {
	return []rule{
		{
			name:    "list-all",
			match:   func(q query) bool { return q.containsAny(listAllPhrases) },
			respond: r.listAllProducts,
		},
		{
			name:    "escalate",
			match:   needsEscalation,
			respond: r.delegate,
		},
		{
			name:    "greeting",
			match:   func(q query) bool { return q.hasWord(greetingWords) },
			respond: fixed(ReplyGreeting),
		},
		{
			name:    "products",
			match:   func(q query) bool { return q.hasWord(productWords) },
			respond: r.showProducts,
		},
		{
			name:    "price",
			match:   func(q query) bool { return q.hasWord(priceWords) || q.containsAny(pricePhrases) },
			respond: fixed(ReplyPriceClarify),
		},
		{
			name:    "shipping",
			match:   func(q query) bool { return q.hasWord(shippingWords) },
			respond: fixed(ReplyShipping),
		},
		{
			name:    "link",
			match:   func(q query) bool { return q.hasWord(linkWords) },
			respond: r.findProductLink,
		},
		{
			name:    "farewell",
			match:   func(q query) bool { return q.hasWord(farewellWords) },
			respond: fixed(ReplyFarewell),
		},
		{
			name:    "fallback",
			match:   func(q query) bool { return true },
			respond: r.fallback,
		},
	}
}

// needsEscalation holds for anonymous callers, queries longer than the
// fast-path budget, and anything carrying an explanatory cue.
func needsEscalation(q query) bool {
	return q.sc.Anonymous() || len(q.words) > maxFastPathWords || q.containsAny(explainCues)
}

// fixed wraps a canned reply as a respond func.
func fixed(reply string) func(ctx context.Context, q query) string {
	return func(ctx context.Context, q query) string { return reply }
}

// delegate hands the raw query to the LLM gateway.
func (r *KeywordRouter) delegate(ctx context.Context, q query) string {
	return r.llm.Complete(ctx, q.raw, q.sc.UserID, q.sc.SessionID)
}

// listAllProducts renders the first products of the catalog as HTML,
// bypassing the LLM entirely.
func (r *KeywordRouter) listAllProducts(ctx context.Context, q query) string {
	return replyListAllPrefix + r.formatter.FormatProductList(r.catalog.Products(), limitListAll, catalog.StyleHTML)
}

// showProducts renders a short inline product sample.
func (r *KeywordRouter) showProducts(ctx context.Context, q query) string {
	return replyProductsPrefix + r.formatter.FormatProductList(r.catalog.Products(), limitInline, catalog.StyleMarkdown)
}

// findProductLink strips the link/purchase words and matches the remainder
// against the catalog.
func (r *KeywordRouter) findProductLink(ctx context.Context, q query) string {
	remainder := q.withoutWords(linkWords)
	if strings.TrimSpace(remainder) == "" {
		return ReplyLinkSpecify
	}

	matches := r.catalog.FindMatches(remainder)
	if len(matches) == 0 {
		return fmt.Sprintf(replyNoMatchFormat, remainder)
	}
	return replyFoundPrefix + r.formatter.FormatProductList(matches, limitSearch, catalog.StyleMarkdown)
}

// fallback tries the catalog with the full query and delegates to the LLM
// when nothing matches.
func (r *KeywordRouter) fallback(ctx context.Context, q query) string {
	matches := r.catalog.FindMatches(q.raw)
	if len(matches) == 0 {
		return r.delegate(ctx, q)
	}
	return replyFoundPrefix + r.formatter.FormatProductList(matches, limitInline, catalog.StyleMarkdown) + replyMatchesHint
}
