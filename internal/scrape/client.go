package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/codeGROOVE-dev/retry"
	"golang.org/x/time/rate"

	"github.com/stokwatch/stokwatch/internal/config"
)

// StatusError indicates a non-OK HTTP response from a store page.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// Fetcher is the shared HTTP client for all store scrapers. Requests are
// rate limited across stores and retried with backoff; 403 responses are
// not retried since they indicate a block rather than a transient fault.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
	userAgent string
	attempts  uint
}

// NewFetcher creates a fetcher from scrape config.
func NewFetcher(cfg config.ScrapeConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst),
		logger:    logger,
		userAgent: cfg.UserAgent,
		attempts:  uint(cfg.MaxAttempts), //nolint:gosec // validated positive by config
	}
}

// Fetch retrieves a page and parses it into a goquery document.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var doc *goquery.Document

	err := retry.Do(
		func() error {
			if err := f.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create request: %w", err))
			}
			req.Header.Set("User-Agent", f.userAgent)
			req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
			req.Header.Set("Accept-Language", "tr-TR,tr;q=0.9,en;q=0.8")

			start := time.Now()
			resp, err := f.client.Do(req)
			if err != nil {
				f.logger.Warn("fetch failed, will retry",
					"url", pageURL,
					"duration_ms", time.Since(start).Milliseconds(),
					"error", err)
				return err
			}
			defer func() {
				if closeErr := resp.Body.Close(); closeErr != nil {
					f.logger.Warn("failed to close response body", "error", closeErr)
				}
			}()

			f.logger.Debug("fetch completed",
				"url", pageURL,
				"status_code", resp.StatusCode,
				"duration_ms", time.Since(start).Milliseconds())

			if resp.StatusCode != http.StatusOK {
				statusErr := &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
				if resp.StatusCode == http.StatusForbidden {
					return retry.Unrecoverable(statusErr)
				}
				return statusErr
			}

			doc, err = goquery.NewDocumentFromReader(resp.Body)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("parse HTML: %w", err))
			}
			return nil
		},
		retry.Attempts(f.attempts),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.MaxJitter(5*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			f.logger.Info("retrying fetch", "attempt", n, "url", pageURL, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	return doc, nil
}
