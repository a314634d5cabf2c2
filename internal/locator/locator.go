// Package locator fetches retail locations from a published spreadsheet CSV
// feed and offers search over them.
package locator

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/duckydrinks/storefront/pkg/client/rest"
	"github.com/duckydrinks/storefront/pkg/config"
)

// Location is one retail location from the feed. Latitude/Longitude are nil
// when the feed row carries no parseable coordinates; such rows are listed
// but never mapped.
type Location struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zip_code"`
	Phone     string   `json:"phone"`
	Hours     string   `json:"hours"`
	Type      string   `json:"type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Mappable reports whether the location carries coordinates.
func (l Location) Mappable() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Service fetches and filters store locations.
type Service struct {
	feedURL string
	doer    rest.Doer
	logger  *slog.Logger
}

// NewService creates a locator service reading the configured feed.
func NewService(cfg config.LocatorConfig, doer rest.Doer, logger *slog.Logger) *Service {
	return &Service{
		feedURL: cfg.FeedURL,
		doer:    doer,
		logger:  logger.With("component", "locator"),
	}
}

// Locations fetches the feed and parses it into locations.
func (s *Service) Locations(ctx context.Context) ([]Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	resp, err := s.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer func() { _, _ = io.Copy(io.Discard, resp.Body); _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	locations, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Fetched store locations", "count", len(locations))
	return locations, nil
}

// Parse reads the CSV feed. The first row is the header; column order is
// whatever the spreadsheet publishes, so cells are looked up by header name.
func Parse(r io.Reader) ([]Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []Location{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var locations []Location
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read feed row %d: %w", i+1, err)
		}
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}
		locations = append(locations, Location{
			ID:        strconv.Itoa(i),
			Name:      orDefault(cell("Store Name"), "Unknown"),
			Address:   cell("Address"),
			City:      cell("City"),
			State:     cell("State"),
			ZipCode:   cell("Zip"),
			Phone:     cell("Phone"),
			Hours:     cell("Hours"),
			Type:      cell("Type"),
			Latitude:  parseCoordinate(cell("Latitude")),
			Longitude: parseCoordinate(cell("Longitude")),
		})
	}
	return locations, nil
}

// Search filters locations on name, city, state, or zip code, keeping only
// mappable ones. An empty term matches everything mappable.
func Search(locations []Location, term string) []Location {
	term = strings.ToLower(strings.TrimSpace(term))
	matched := make([]Location, 0, len(locations))
	for _, location := range locations {
		if !location.Mappable() {
			continue
		}
		if term == "" ||
			strings.Contains(strings.ToLower(location.Name), term) ||
			strings.Contains(strings.ToLower(location.City), term) ||
			strings.Contains(strings.ToLower(location.State), term) ||
			strings.Contains(location.ZipCode, term) {
			matched = append(matched, location)
		}
	}
	return matched
}

func parseCoordinate(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
