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

	"github.com/duckydrinks/storefront/internal/locator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLocationService is a mock implementation of the LocationService interface
type mockLocationService struct {
	locations []locator.Location
	err       error
}

func (m *mockLocationService) Locations(_ context.Context) ([]locator.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.locations, nil
}

func newLocatorRouter(service LocationService) *chi.Mux {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewLocatorHandler(service, logger).RegisterRoutes(r)
	return r
}

func coord(v float64) *float64 { return &v }

func Test_LocatorAPI_List(t *testing.T) {
	austin := locator.Location{
		ID: "1", Name: "Corner Market", City: "Austin", State: "TX",
		Latitude: coord(30.2672), Longitude: coord(-97.7431),
	}
	dallas := locator.Location{
		ID: "2", Name: "Downtown Deli", City: "Dallas", State: "TX",
		Latitude: coord(32.7767), Longitude: coord(-96.7970),
	}
	unmapped := locator.Location{ID: "3", Name: "Pop-up Stand", City: "Austin"}

	testCases := []struct {
		name          string
		mockService   mockLocationService
		target        string
		expectedCode  int
		expectedNames []string
	}{
		{
			name:          "Success - all mappable locations",
			mockService:   mockLocationService{locations: []locator.Location{austin, dallas, unmapped}},
			target:        "/api/v1/locations",
			expectedCode:  http.StatusOK,
			expectedNames: []string{"Corner Market", "Downtown Deli"},
		},
		{
			name:          "Success - filtered by city",
			mockService:   mockLocationService{locations: []locator.Location{austin, dallas, unmapped}},
			target:        "/api/v1/locations?q=austin",
			expectedCode:  http.StatusOK,
			expectedNames: []string{"Corner Market"},
		},
		{
			name:          "Success - no matches",
			mockService:   mockLocationService{locations: []locator.Location{austin}},
			target:        "/api/v1/locations?q=seattle",
			expectedCode:  http.StatusOK,
			expectedNames: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newLocatorRouter(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			var got []locator.Location
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			names := make([]string, 0, len(got))
			for _, l := range got {
				names = append(names, l.Name)
			}
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}

func Test_LocatorAPI_List_FeedUnavailable(t *testing.T) {
	// given
	router := newLocatorRouter(&mockLocationService{err: errors.New("feed timeout")})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)
	rr := httptest.NewRecorder()

	// when
	router.ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"error": "Failed to fetch store locations"}`, rr.Body.String())
}
