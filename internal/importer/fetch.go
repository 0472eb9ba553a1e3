package importer

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trade-journal-go/internal/config"
)

// Fetcher downloads brokerage export files over HTTP. Broker download
// endpoints throttle aggressively, so every request goes through a rate
// limiter and transient failures are retried with backoff.
type Fetcher struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewFetcher creates a fetcher with the configured rate limit.
func NewFetcher(cfg *config.Importer, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:  resty.New().SetTimeout(30 * time.Second),
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
	}
}

// FetchExport downloads the export at url and returns its raw bytes.
// HTTP 429 and server errors retry with exponential backoff, honoring
// a Retry-After header when present.
func (f *Fetcher) FetchExport(ctx context.Context, url string) ([]byte, error) {
	const maxRetries = 3
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		f.logger.Debug("Downloading export", zap.String("url", url))
		resp, err := f.client.R().SetContext(ctx).Get(url)

		if err == nil && !resp.IsError() {
			return resp.Body(), nil
		}

		// Analyze error and decide whether to retry
		shouldRetry := false
		var retryAfter time.Duration

		if err != nil {
			lastErr = err
			shouldRetry = true // network or client-side error
		} else {
			lastErr = fmt.Errorf("status %s", resp.Status())
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				if seconds, aerr := strconv.Atoi(resp.Header().Get("Retry-After")); aerr == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
		}

		if !shouldRetry {
			return nil, fmt.Errorf("download failed: %w", lastErr)
		}

		if retryAfter == 0 {
			// Exponential backoff: 1s, 2s, 4s
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		f.logger.Warn("Download failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(lastErr),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("download failed after %d attempts: %w", maxRetries, lastErr)
}
