package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// ErrNoResults is returned when the geocoder cannot resolve the address.
var ErrNoResults = errors.New("geocode: no results for address")

// Location is the region an address resolves to. Any part may be empty.
type Location struct {
	Country string `json:"country"`
	Admin   string `json:"admin"`
	City    string `json:"city"`
}

// Complete reports whether every part of the region was resolved.
func (l Location) Complete() bool {
	return l.Country != "" && l.Admin != "" && l.City != ""
}

// Region renders the location as "City, Admin, Country", skipping empty parts.
func (l Location) Region() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Admin, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Geocoder resolves free-form addresses to a region.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Location, error)
}

// GoogleGeocoder calls the Google Geocoding API and caches answers in Redis.
type GoogleGeocoder struct {
	apiKey   string
	endpoint string
	http     *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	prefix   string
	logger   *zap.Logger
}

// Option customises a GoogleGeocoder.
type Option func(*GoogleGeocoder)

// WithEndpoint overrides the API URL.
func WithEndpoint(endpoint string) Option {
	return func(g *GoogleGeocoder) { g.endpoint = endpoint }
}

// WithCache enables the Redis cache.
func WithCache(client *redis.Client, prefix string, ttl time.Duration) Option {
	return func(g *GoogleGeocoder) {
		g.cache = client
		g.prefix = prefix
		g.cacheTTL = ttl
	}
}

// NewGoogleGeocoder builds a geocoder for the given API key.
func NewGoogleGeocoder(apiKey string, logger *zap.Logger, opts ...Option) *GoogleGeocoder {
	g := &GoogleGeocoder{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []addressComponent `json:"address_components"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// Geocode resolves an address, consulting the cache first.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Location{}, ErrNoResults
	}
	key := g.prefix + strings.ToLower(address)

	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, key).Result(); err == nil {
			var loc Location
			if json.Unmarshal([]byte(cached), &loc) == nil {
				return loc, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			g.logger.Warn("geocode cache read failed", zap.Error(err))
		}
	}

	loc, err := g.lookup(ctx, address)
	if err != nil {
		return Location{}, err
	}

	if g.cache != nil {
		if b, err := json.Marshal(loc); err == nil {
			if err := g.cache.Set(ctx, key, b, g.cacheTTL).Err(); err != nil {
				g.logger.Warn("geocode cache write failed", zap.Error(err))
			}
		}
	}
	return loc, nil
}

func (g *GoogleGeocoder) lookup(ctx context.Context, address string) (Location, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: build request: %w", err)
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return Location{}, ErrNoResults
	default:
		return Location{}, fmt.Errorf("geocode: %s %s", body.Status, body.ErrorMessage)
	}
	if len(body.Results) == 0 {
		return Location{}, ErrNoResults
	}
	return parseComponents(body.Results[0].AddressComponents), nil
}

// parseComponents picks country, first-level admin area and city. Postal towns
// stand in for localities where Google reports no locality.
func parseComponents(components []addressComponent) Location {
	var loc Location
	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "country":
				loc.Country = c.LongName
			case "administrative_area_level_1":
				loc.Admin = c.LongName
			case "locality", "postal_town":
				if loc.City == "" || t == "locality" {
					loc.City = c.LongName
				}
			}
		}
	}
	return loc
}
