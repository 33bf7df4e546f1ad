package shopify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func newTestClient(ts *httptest.Server) *Client {
	c := New(Config{ShopName: "starky-shop", AccessToken: "shpat_test", Timeout: 5 * time.Second}, nopLogger{})
	c.SetBaseURL(ts.URL)
	return c
}

func TestFetchAllProducts_SinglePage(t *testing.T) {
	var gotToken, gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"products":[
			{"id":1,"title":"Red Leather Belt","handle":"red-leather-belt","variants":[{"id":11,"title":"Default","price":"24.99"}]},
			{"id":2,"title":"Blue Denim Jacket","handle":"blue-denim-jacket","variants":[{"id":21,"title":"M","price":"89.00"}]}
		]}`)
	}))
	defer ts.Close()

	products, err := newTestClient(ts).FetchAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "shpat_test", gotToken)
	assert.Equal(t, "/admin/api/2024-01/products.json", gotPath)
	assert.Equal(t, "limit=250", gotQuery)
	assert.Equal(t, "Red Leather Belt", products[0].Title)
	assert.Equal(t, "24.99", products[0].Price())
}

func TestFetchAllProducts_FollowsLinkHeader(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page_info") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/admin/api/2024-01/products.json?limit=250&page_info=abc>; rel="next"`, ts.URL))
			fmt.Fprint(w, `{"products":[{"id":1,"title":"Belt","handle":"belt","variants":[]}]}`)
			return
		}
		// Last page carries only a rel="previous" link.
		w.Header().Set("Link", fmt.Sprintf(`<%s/admin/api/2024-01/products.json?limit=250&page_info=xyz>; rel="previous"`, ts.URL))
		fmt.Fprint(w, `{"products":[{"id":2,"title":"Buckle","handle":"buckle","variants":[]}]}`)
	}))
	defer ts.Close()

	products, err := newTestClient(ts).FetchAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
}

func TestFetchAllProducts_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":"[API] Invalid API key or access token"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).FetchAllProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNextPageURL(t *testing.T) {
	cases := map[string]struct {
		header string
		want   string
	}{
		"empty":         {"", ""},
		"previous only": {`<https://x/p?page_info=a>; rel="previous"`, ""},
		"next only":     {`<https://x/p?page_info=b>; rel="next"`, "https://x/p?page_info=b"},
		"both": {
			`<https://x/p?page_info=a>; rel="previous", <https://x/p?page_info=b>; rel="next"`,
			"https://x/p?page_info=b",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextPageURL(tc.header))
		})
	}
}
