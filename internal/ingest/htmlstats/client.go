// Package htmlstats extracts game results and team listings from the
// HTML-rendered statistics site.
package htmlstats

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/fortuna/rinkside/internal/etl"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves a page and returns it parsed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// HTTPFetcher fetches pages with a plain HTTP GET.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with an explicit request timeout. A stuck
// source should fail the run, not hang the operator's cron slot forever.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch retrieves and parses the page at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "building request for %s", url)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, etl.New(etl.KindSource, "fetching %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "parsing %s", url)
	}
	return doc, nil
}

// RenderedFetcher fetches pages through headless Chrome, for sources that
// fill their tables in with JavaScript after page load.
type RenderedFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewRenderedFetcher creates a headless browser allocator.
func NewRenderedFetcher() *RenderedFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &RenderedFetcher{allocCtx: allocCtx, cancel: cancel}
}

// Close releases the browser allocator.
func (f *RenderedFetcher) Close() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Fetch navigates to url, waits for the page to render, and parses the
// resulting DOM.
func (f *RenderedFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	browserCtx, cancel := chromedp.NewContext(f.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "rendering %s", url)
	}
	if html == "" {
		return nil, etl.New(etl.KindSource, "rendering %s: empty document", url)
	}

	return ParseHTML(html)
}

// ParseHTML converts raw HTML to a goquery document.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "parsing HTML")
	}
	return doc, nil
}

// cellText returns the trimmed text of the cell matched by selector within
// row, failing when the cell is absent.
func cellText(row *goquery.Selection, selector string) (string, error) {
	cell := row.Find(selector)
	if cell.Length() == 0 {
		return "", etl.New(etl.KindSource, "missing cell %s", selector)
	}
	return strings.TrimSpace(cell.First().Text()), nil
}

// rawCellText is cellText without trimming, for fields where an empty string
// is a meaningful sentinel.
func rawCellText(row *goquery.Selection, selector string) (string, error) {
	cell := row.Find(selector)
	if cell.Length() == 0 {
		return "", etl.New(etl.KindSource, "missing cell %s", selector)
	}
	return cell.First().Text(), nil
}
