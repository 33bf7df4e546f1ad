package router

import (
	"context"
	"strings"

	"storefront-chatbot/internal/model"
)

// rule is one entry of the decision table. Rules are evaluated in fixed
// priority order and the first match wins; no rule is re-evaluated.
type rule struct {
	name    string
	match   func(q query) bool
	respond func(ctx context.Context, q query) string
}

// query is an incoming message pre-processed once for all rules.
type query struct {
	raw   string
	lower string
	words []string // lowercased whitespace tokens
	sc    model.Scope
}

func newQuery(sc model.Scope, message string) query {
	lower := strings.ToLower(message)
	return query{
		raw:   message,
		lower: lower,
		words: strings.Fields(lower),
		sc:    sc,
	}
}

// hasWord reports whether any whitespace token of the query is in set.
func (q query) hasWord(set map[string]bool) bool {
	for _, w := range q.words {
		if set[w] {
			return true
		}
	}
	return false
}

// containsAny reports whether the query contains any of the phrases as a
// substring.
func (q query) containsAny(phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(q.lower, p) {
			return true
		}
	}
	return false
}

// withoutWords returns the query text minus the tokens in set, preserving
// the original token order.
func (q query) withoutWords(set map[string]bool) string {
	var kept []string
	for _, w := range q.words {
		if !set[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
