// Package geocode resolves browser-reported coordinates to a postal code
// via the BigDataCloud reverse-geocode endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/pricecart/pricecart/internal/geo"
)

const cacheTTL = 10 * time.Minute

// Config holds reverse-geocode client configuration from environment variables.
type Config struct {
	BaseURL string
}

// Client fetches and caches zipcode lookups keyed by rounded coordinates.
type Client struct {
	client  *http.Client
	baseURL string

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	zipcode string
	fetched time.Time
}

// NewClient creates a reverse-geocode client with the given configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"
	}
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cache:   make(map[string]cacheEntry),
	}
}

// Zipcode resolves coordinates to a postal code. Any failure, including a
// response with no usable postal code, yields the unknown-zipcode sentinel
// rather than an error so callers fall back to unfiltered browsing.
func (c *Client) Zipcode(ctx context.Context, lat, lng float64) string {
	key := fmt.Sprintf("%.3f,%.3f", lat, lng)

	c.mu.Lock()
	if e, ok := c.cache[key]; ok && time.Since(e.fetched) < cacheTTL {
		c.mu.Unlock()
		return e.zipcode
	}
	c.mu.Unlock()

	zipcode, err := c.fetch(ctx, lat, lng)
	if err != nil {
		return geo.UnknownZipcode
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{zipcode: zipcode, fetched: time.Now()}
	c.mu.Unlock()
	return zipcode
}

func (c *Client) fetch(ctx context.Context, lat, lng float64) (string, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&localityLanguage=en", c.baseURL, lat, lng)

	var zipcode string
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("reverse geocode returned status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
		}

		// The endpoint has used both key spellings over time.
		var body struct {
			Postcode   string `json:"postcode"`
			PostalCode string `json:"postalCode"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("decode reverse geocode response: %w", err)
		}

		switch {
		case body.Postcode != "":
			zipcode = body.Postcode
		case body.PostalCode != "":
			zipcode = body.PostalCode
		default:
			return fmt.Errorf("reverse geocode response has no postal code")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return zipcode, nil
}
