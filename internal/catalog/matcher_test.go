package catalog_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/internal/model"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Title: "Red Leather Belt", Handle: "red-leather-belt", Variants: []model.Variant{{Price: "24.99"}}},
		{ID: 2, Title: "Blue Denim Jacket", Handle: "blue-denim-jacket", Variants: []model.Variant{{Price: "89.00"}}},
		{ID: 3, Title: "Classic Belt Buckle", Handle: "classic-belt-buckle", Variants: []model.Variant{{Price: "12.50"}}},
	}
}

func TestSearchTerms(t *testing.T) {
	t.Run("Stop Words And Short Tokens Removed", func(t *testing.T) {
		terms := catalog.SearchTerms("can you give me the link for belts")
		if !reflect.DeepEqual(terms, []string{"belts"}) {
			t.Errorf("expected [belts], got %v", terms)
		}
	})

	t.Run("Only Stop Words Yields Nothing", func(t *testing.T) {
		if terms := catalog.SearchTerms("can you give me the url"); len(terms) != 0 {
			t.Errorf("expected no terms, got %v", terms)
		}
	})

	t.Run("Lowercases Tokens", func(t *testing.T) {
		terms := catalog.SearchTerms("RED Belt")
		if !reflect.DeepEqual(terms, []string{"red", "belt"}) {
			t.Errorf("expected [red belt], got %v", terms)
		}
	})
}

func TestFindMatches(t *testing.T) {
	cat := catalog.New(testProducts())

	t.Run("Matches In Catalog Order", func(t *testing.T) {
		matches := cat.FindMatches("buy the red belt")
		if len(matches) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(matches))
		}
		if matches[0].ID != 1 || matches[1].ID != 3 {
			t.Errorf("expected catalog order [1 3], got [%d %d]", matches[0].ID, matches[1].ID)
		}
	})

	t.Run("Product Included At Most Once", func(t *testing.T) {
		// Both "red" and "belt" hit product 1; it must appear once.
		matches := cat.FindMatches("red belt")
		for i, m := range matches {
			for j, n := range matches {
				if i != j && m.ID == n.ID {
					t.Fatalf("product %d duplicated in matches", m.ID)
				}
			}
		}
	})

	t.Run("Empty Term Set Yields Zero Matches", func(t *testing.T) {
		if matches := cat.FindMatches("can you give me a url"); len(matches) != 0 {
			t.Errorf("expected no matches, got %d", len(matches))
		}
	})

	t.Run("No Match For Unknown Term", func(t *testing.T) {
		if matches := cat.FindMatches("snowboard"); len(matches) != 0 {
			t.Errorf("expected no matches, got %d", len(matches))
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("Valid Catalog File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		data := `[
			{"id": 1, "title": "Red Belt", "handle": "red-belt", "variants": [{"id": 10, "price": "24.99"}]},
			{"id": 2, "title": "Blue Jacket", "handle": "", "variants": []}
		]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		cat, err := catalog.LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cat.Len() != 2 {
			t.Errorf("expected 2 products, got %d", cat.Len())
		}
		if cat.Products()[0].Price() != "24.99" {
			t.Errorf("unexpected price: %s", cat.Products()[0].Price())
		}
		if cat.Products()[1].Price() != "N/A" {
			t.Errorf("expected N/A for variant-less product, got %s", cat.Products()[1].Price())
		}
	})

	t.Run("Missing File Is An Error", func(t *testing.T) {
		if _, err := catalog.LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Error("expected error for missing catalog file")
		}
	})

	t.Run("Corrupt File Is An Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := catalog.LoadFile(path); err == nil {
			t.Error("expected error for corrupt catalog file")
		}
	})
}
