package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/duckydrinks/storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// mockCatalogService is a mock implementation of the CatalogService interface
type mockCatalogService struct {
	products []catalog.Product
	product  *catalog.Product
	err      error
}

func (m *mockCatalogService) FetchProducts(_ context.Context, _ int) ([]catalog.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockCatalogService) ProductByHandle(_ context.Context, _ string) (*catalog.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.product, nil
}

func (m *mockCatalogService) CollectionProducts(_ context.Context, _ string, _ int) ([]catalog.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v any) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newCatalogRouter(service CatalogService) *chi.Mux {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewCatalogHandler(service, logger).RegisterRoutes(r)
	return r
}

var lemonade = catalog.Product{
	ID:          "gid://shopify/Product/7",
	Title:       "Classic Lemonade",
	Description: "Fresh squeezed, lightly sweetened.",
	Handle:      "classic-lemonade",
	ProductType: "Lemonade",
	Tags:        []string{"bestseller"},
	MinPrice:    catalog.Money{Amount: "29.99", CurrencyCode: "USD"},
	Variants: []catalog.Variant{{
		ID:               "gid://shopify/ProductVariant/801",
		Title:            "12-pack",
		Price:            catalog.Money{Amount: "29.99", CurrencyCode: "USD"},
		AvailableForSale: true,
	}},
}

func Test_CatalogAPI_ListProducts(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - products listed",
			mockService:  mockCatalogService{products: []catalog.Product{lemonade}},
			target:       "/api/v1/products",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Success - explicit page size",
			mockService:  mockCatalogService{products: []catalog.Product{lemonade}},
			target:       "/api/v1/products?first=3",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Error - invalid page size",
			mockService:  mockCatalogService{},
			target:       "/api/v1/products?first=0",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error": "Invalid first number: 0"}`,
		},
		{
			name:         "Error - plan does not allow storefront access",
			mockService:  mockCatalogService{err: catalog.ErrPaymentRequired},
			target:       "/api/v1/products",
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"error": "Catalog is temporarily unavailable"}`,
		},
		{
			name:         "Error - upstream failure",
			mockService:  mockCatalogService{err: errors.New("connection refused")},
			target:       "/api/v1/products",
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"error": "Failed to fetch products"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newCatalogRouter(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			if tc.expectedBody == "" {
				tc.expectedBody = toJSON(t, tc.mockService.products)
			}
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_CatalogAPI_ProductByHandle(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		handle       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  mockCatalogService{product: &lemonade},
			handle:       "classic-lemonade",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Error - product not found",
			mockService:  mockCatalogService{err: catalog.ErrProductNotFound},
			handle:       "gone",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error": "Product \"gone\" not found"}`,
		},
		{
			name:         "Error - upstream failure",
			mockService:  mockCatalogService{err: errors.New("boom")},
			handle:       "classic-lemonade",
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"error": "Failed to fetch product \"classic-lemonade\""}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newCatalogRouter(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.handle, nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			if tc.expectedBody == "" {
				tc.expectedBody = toJSON(t, tc.mockService.product)
			}
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_CatalogAPI_CollectionProducts(t *testing.T) {
	// given
	service := &mockCatalogService{products: []catalog.Product{lemonade}}
	router := newCatalogRouter(service)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/featured", nil)
	rr := httptest.NewRecorder()

	// when
	router.ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, toJSON(t, service.products), rr.Body.String())
}
