package crawler

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Fetcher performs a single bounded HTTP GET per call. Every call goes
// through the injected Limiter first, so the process-wide politeness
// bound holds no matter who drives the fetch.
type Fetcher struct {
	client    *http.Client
	limiter   Limiter
	userAgent string
}

func NewFetcher(limiter Limiter, timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		limiter:   limiter,
		userAgent: userAgent,
	}
}

// Fetch returns the response body, or nil when the page is unavailable
// for any reason (transport error, timeout, non-2xx status). The cause
// is logged; no retry is attempted.
func (f *Fetcher) Fetch(url string) []byte {
	f.limiter.Acquire()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		slog.Error("failed to build request.", slog.String("url", url), slog.String("err", err.Error()))
		return nil
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Error("failed to fetch page.", slog.String("url", url), slog.String("err", err.Error()))
		return nil
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			slog.Error("error closing response body", slog.String("err", err.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("non-success status for page.", slog.String("url", url),
			slog.Int("status_code", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read response body.", slog.String("url", url), slog.String("err", err.Error()))
		return nil
	}

	return body
}
