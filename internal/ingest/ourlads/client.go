// Package ourlads fetches the Ourlads NFL depth chart page and reduces it to
// row records for the depth parser.
package ourlads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/depthsheets/internal/cache"
	"github.com/fortuna/depthsheets/internal/ingest"
	"github.com/go-resty/resty/v2"
)

const (
	// DepthChartsURL is the all-teams depth chart page
	DepthChartsURL = "https://www.ourlads.com/nfldepthcharts/depthcharts.aspx"

	// DefaultCacheTTL bounds how long a fetched page is reused
	DefaultCacheTTL = time.Hour

	cacheKey       = "ourlads:depthcharts:nfl"
	requestTimeout = 30 * time.Second
)

// Client fetches the depth chart page, memoizing it for a bounded window
type Client struct {
	url   string
	http  *resty.Client
	cache cache.Cache
	ttl   time.Duration
}

// NewClient creates a depth chart client. cache may be nil to disable memoization.
func NewClient(pageURL string, c cache.Cache, ttl time.Duration) *Client {
	if pageURL == "" {
		pageURL = DepthChartsURL
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Client{
		url: pageURL,
		http: resty.New().
			SetTimeout(requestTimeout).
			SetHeader("User-Agent", ingest.EdgeUserAgent),
		cache: c,
		ttl:   ttl,
	}
}

// FetchDepthCharts returns the raw depth chart page, from cache when fresh
func (c *Client) FetchDepthCharts(ctx context.Context) (string, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err == nil && cached != "":
			log.Println("[ourlads] using cached depth charts")
			return cached, nil
		case err != nil && !errors.Is(err, cache.ErrMiss):
			log.Printf("[ourlads] cache read failed: %v", err)
		}
	}

	log.Printf("[ourlads] fetching %s", c.url)
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return "", fmt.Errorf("fetch depth charts: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch depth charts: unexpected status %d", resp.StatusCode())
	}
	body := resp.String()

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, body, c.ttl); err != nil {
			log.Printf("[ourlads] cache write failed: %v", err)
		}
	}

	return body, nil
}

// Invalidate drops the memoized page
func (c *Client) Invalidate(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Delete(ctx, cacheKey)
}
