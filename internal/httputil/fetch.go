// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the bounded HTTP fetch used by the blog driver.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const maxRetries = 2

// Get fetches url and returns the response body. Any transport error or
// non-2xx status is an error; the overall deadline comes from the client's
// timeout plus ctx. HTTP 429 is retried with exponential backoff (2 s, 4 s)
// before giving up, draining the body between attempts. If ctx is cancelled
// during a backoff wait, ctx.Err() is returned.
func Get(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", url, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading response from %s: %w", url, readErr)
		}
		return body, nil
	}
}
