package catalog_test

import (
	"strings"
	"testing"

	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/internal/model"
)

func TestFormatProductList(t *testing.T) {
	f := catalog.NewFormatter("https://starky.myshopify.com")

	t.Run("Markdown With Links", func(t *testing.T) {
		got := f.FormatProductList(testProducts(), 2, catalog.StyleMarkdown)
		want := "1. [Red Leather Belt](https://starky.myshopify.com/products/red-leather-belt) - $24.99\n" +
			"2. [Blue Denim Jacket](https://starky.myshopify.com/products/blue-denim-jacket) - $89.00"
		if got != want {
			t.Errorf("unexpected output:\n got: %q\nwant: %q", got, want)
		}
	})

	t.Run("HTML Uses Anchor Tags And BR Joiner", func(t *testing.T) {
		got := f.FormatProductList(testProducts(), 2, catalog.StyleHTML)
		if !strings.Contains(got, `<a href="https://starky.myshopify.com/products/red-leather-belt">Red Leather Belt</a>`) {
			t.Errorf("missing anchor tag: %q", got)
		}
		if !strings.Contains(got, "<br>") {
			t.Errorf("expected <br> joiner: %q", got)
		}
		if strings.Contains(got, "\n") {
			t.Errorf("HTML style must not join with newlines: %q", got)
		}
	})

	t.Run("No Handle And No Variants Never Fails", func(t *testing.T) {
		bare := []model.Product{{ID: 9, Title: "Title"}}
		got := f.FormatProductList(bare, 3, catalog.StyleMarkdown)
		if got != "1. Title - $N/A" {
			t.Errorf("expected plain N/A line, got %q", got)
		}
	})

	t.Run("Missing Title Renders NA", func(t *testing.T) {
		got := f.FormatProductList([]model.Product{{ID: 9}}, 1, catalog.StyleMarkdown)
		if got != "1. N/A - $N/A" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Truncates To Limit", func(t *testing.T) {
		got := f.FormatProductList(testProducts(), 1, catalog.StyleMarkdown)
		if strings.Contains(got, "2.") {
			t.Errorf("expected truncation to 1 item, got %q", got)
		}
	})

	t.Run("No Store URL Means Plain Titles", func(t *testing.T) {
		plain := catalog.NewFormatter("")
		got := plain.FormatProductList(testProducts(), 1, catalog.StyleMarkdown)
		if got != "1. Red Leather Belt - $24.99" {
			t.Errorf("got %q", got)
		}
	})
}
