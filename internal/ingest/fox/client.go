// Package fox scrapes the weekly NFL schedule from FOX Sports.
package fox

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/fortuna/depthsheets/internal/ingest"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/go-resty/resty/v2"
)

const (
	// BaseURL of the weekly schedule page
	BaseURL = "https://www.foxsports.com/nfl/schedule"

	requestTimeout = 30 * time.Second
)

// Fetcher returns the raw schedule page markup for one week
type Fetcher interface {
	FetchSchedule(ctx context.Context, seasonType store.SeasonType, week int) (string, error)
}

// Client fetches the schedule page over plain HTTP
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient creates a schedule client. An empty baseURL uses BaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}

	http := resty.New().
		SetTimeout(requestTimeout).
		SetHeaders(map[string]string{
			"User-Agent":      ingest.EdgeUserAgent,
			"Accept-Language": "en-US,en;q=0.8",
			"Referer":         "https://www.foxsports.com/",
			"Cache-Control":   "no-cache",
		})

	return &Client{
		baseURL: baseURL,
		http:    http,
	}
}

// BaseURL returns the page URL box-score links are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSchedule fetches the schedule page for a season type and week
func (c *Client) FetchSchedule(ctx context.Context, seasonType store.SeasonType, week int) (string, error) {
	log.Printf("[fox] fetching schedule %s week %d", seasonType, week)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"seasonType": string(seasonType),
			"week":       strconv.Itoa(week),
		}).
		Get(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("fetch schedule: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch schedule: unexpected status %d", resp.StatusCode())
	}

	return resp.String(), nil
}
