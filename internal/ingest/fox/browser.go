package fox

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/fortuna/depthsheets/internal/ingest"
	"github.com/fortuna/depthsheets/internal/store"
)

// BrowserClient renders the schedule page in headless Chrome, for when the
// plain HTTP response is missing the score chips
type BrowserClient struct {
	baseURL string

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowserClient starts a headless Chrome allocator
func NewBrowserClient(baseURL string) *BrowserClient {
	if baseURL == "" {
		baseURL = BaseURL
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(ingest.EdgeUserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &BrowserClient{
		baseURL:  baseURL,
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// Close releases the browser allocator
func (c *BrowserClient) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// BaseURL returns the page URL box-score links are resolved against
func (c *BrowserClient) BaseURL() string {
	return c.baseURL
}

// FetchSchedule renders the schedule page and returns its outer HTML
func (c *BrowserClient) FetchSchedule(ctx context.Context, seasonType store.SeasonType, week int) (string, error) {
	pageURL, err := scheduleURL(c.baseURL, seasonType, week)
	if err != nil {
		return "", err
	}

	log.Printf("[fox] rendering %s", pageURL)

	browserCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, requestTimeout)
	defer cancel()

	// stop the browser tab when the caller gives up
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var htmlContent string
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}

	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	return htmlContent, nil
}

func scheduleURL(base string, seasonType store.SeasonType, week int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse schedule url: %w", err)
	}
	q := u.Query()
	q.Set("seasonType", string(seasonType))
	q.Set("week", strconv.Itoa(week))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
