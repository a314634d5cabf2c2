package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duckydrinks/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productJSON = `{
  "id": "gid://shopify/Product/1",
  "title": "Ducky Classic",
  "description": "The original.",
  "handle": "ducky-classic",
  "productType": "Sparkling Water",
  "tags": ["flagship"],
  "priceRange": {"minVariantPrice": {"amount": "14.99", "currencyCode": "USD"}},
  "images": {"edges": [{"node": {"url": "https://cdn.example.com/classic.png", "altText": "can"}}]},
  "variants": {"edges": [
    {"node": {"id": "gid://shopify/ProductVariant/4", "title": "4-pack",
      "price": {"amount": "14.99", "currencyCode": "USD"}, "availableForSale": true,
      "selectedOptions": [{"name": "Pack Size", "value": "4-pack"}]}},
    {"node": {"id": "gid://shopify/ProductVariant/12", "title": "12-pack",
      "price": {"amount": "44.99", "currencyCode": "USD"}, "availableForSale": false,
      "selectedOptions": [{"name": "Pack Size", "value": "12-pack"}]}}
  ]},
  "options": [{"name": "Pack Size", "values": ["4-pack", "12-pack"]}]
}`

type catalogStub struct {
	status       int
	responseBody string
	gotToken     string
	gotQuery     string
	gotVariables map[string]any
}

func (s *catalogStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.gotToken = r.Header.Get(tokenHeader)
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		s.gotQuery = body.Query
		s.gotVariables = body.Variables
		if s.status != 0 {
			w.WriteHeader(s.status)
		}
		_, _ = w.Write([]byte(s.responseBody))
	}
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	cfg := config.CatalogConfig{
		Domain:     "duckydrinks.example.com",
		APIVersion: "2024-10",
		Token:      "shpat-test",
		Timeout:    time.Second,
	}
	client := NewClient(cfg, server.Client(), slog.New(slog.DiscardHandler))
	client.url = server.URL
	return client
}

func TestClient_FetchProducts(t *testing.T) {
	// given
	stub := &catalogStub{
		responseBody: `{"data": {"products": {"edges": [{"node": ` + productJSON + `}]}}}`,
	}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()
	client := newTestClient(t, server)

	// when
	products, err := client.FetchProducts(context.Background(), 20)

	// then
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "shpat-test", stub.gotToken)
	assert.Equal(t, float64(20), stub.gotVariables["first"])

	product := products[0]
	assert.Equal(t, "ducky-classic", product.Handle)
	assert.Equal(t, "14.99", product.MinPrice.Amount)
	require.Len(t, product.Variants, 2)
	assert.True(t, product.Variants[0].AvailableForSale)
	assert.False(t, product.Variants[1].AvailableForSale)
	assert.Equal(t, []SelectedOption{{Name: "Pack Size", Value: "12-pack"}}, product.Variants[1].SelectedOptions)
	require.Len(t, product.Images, 1)
	assert.Equal(t, "https://cdn.example.com/classic.png", product.Images[0].URL)
}

func TestClient_ProductByHandle(t *testing.T) {
	testCases := []struct {
		name         string
		responseBody string
		wantErr      error
		wantHandle   string
	}{
		{
			name:         "found",
			responseBody: `{"data": {"productByHandle": ` + productJSON + `}}`,
			wantHandle:   "ducky-classic",
		},
		{
			name:         "not found",
			responseBody: `{"data": {"productByHandle": null}}`,
			wantErr:      ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			stub := &catalogStub{responseBody: tc.responseBody}
			server := httptest.NewServer(stub.handler(t))
			defer server.Close()
			client := newTestClient(t, server)

			// when
			product, err := client.ProductByHandle(context.Background(), "ducky-classic")

			// then
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHandle, product.Handle)
			assert.Equal(t, "ducky-classic", stub.gotVariables["handle"])
		})
	}
}

func TestClient_CollectionProducts_UnknownCollectionIsEmpty(t *testing.T) {
	// given
	stub := &catalogStub{responseBody: `{"data": {"collection": null}}`}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()
	client := newTestClient(t, server)

	// when
	products, err := client.CollectionProducts(context.Background(), "future-flavors", 6)

	// then
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_PaymentRequired(t *testing.T) {
	// given
	stub := &catalogStub{status: http.StatusPaymentRequired, responseBody: `{}`}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()
	client := newTestClient(t, server)

	// when
	_, err := client.FetchProducts(context.Background(), 20)

	// then
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestClient_GraphQLErrorsAreJoined(t *testing.T) {
	// given
	stub := &catalogStub{
		responseBody: `{"data": null, "errors": [{"message": "first problem"}, {"message": "second problem"}]}`,
	}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()
	client := newTestClient(t, server)

	// when
	_, err := client.FetchProducts(context.Background(), 20)

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first problem, second problem")
}
