package catalog

import (
	"strings"

	"storefront-chatbot/internal/model"
)

// SearchTerms extracts the significant search terms from a free-text query:
// lowercase, whitespace split, stop words and short tokens removed.
func SearchTerms(query string) []string {
	var terms []string
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if len(token) < minTermLength || stopWords[token] {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// FindMatches returns the products whose title contains any significant
// term of the query, in catalog order. The first qualifying term
// short-circuits, so a product is included at most once. A query that
// reduces to zero terms yields zero matches.
func (c *Catalog) FindMatches(query string) []model.Product {
	terms := SearchTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matches []model.Product
	for _, p := range c.products {
		title := strings.ToLower(p.Title)
		for _, term := range terms {
			if strings.Contains(title, term) {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}
