package crawler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	cacheClient "github.com/IliaW/scraper-api/internal/cache"
	"github.com/IliaW/scraper-api/util"
	"github.com/jimsmart/grobotstxt"
)

// RobotsPolicy answers whether a URL may be fetched by the given user
// agent. Lookups are memoized per domain for the lifetime of the
// injected cache.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name RobotsPolicy
type RobotsPolicy interface {
	CanFetch(url string, userAgent string) bool
}

// denyAllRobotsTxt stands in for an unreachable robots.txt when the
// policy is configured to deny on lookup failure.
var denyAllRobotsTxt = []byte("User-agent: *\nDisallow: /")

type HttpRobotsPolicy struct {
	client   *http.Client
	cache    cacheClient.CachedClient
	failOpen bool
}

// NewHttpRobotsPolicy builds the robots checker. onLookupFailure is
// either "allow" (default, scraping proceeds when robots.txt itself is
// unreachable or malformed) or "deny".
func NewHttpRobotsPolicy(cache cacheClient.CachedClient, fetchTimeout time.Duration,
	onLookupFailure string) *HttpRobotsPolicy {
	return &HttpRobotsPolicy{
		client:   &http.Client{Timeout: fetchTimeout},
		cache:    cache,
		failOpen: strings.ToLower(onLookupFailure) != "deny",
	}
}

func (p *HttpRobotsPolicy) CanFetch(url string, userAgent string) bool {
	robotsTxt, ok := p.cache.GetRobotsFile(url)
	if !ok {
		file, err := p.fetchRobotsTxt(url)
		if err != nil {
			slog.Warn("robots.txt lookup failed.", slog.String("url", url),
				slog.String("err", err.Error()))
			// cache the best-effort rule set so the domain is not
			// re-fetched within this process
			if p.failOpen {
				file = []byte{}
			} else {
				file = denyAllRobotsTxt
			}
		}
		p.cache.SaveRobotsFile(url, file)
		robotsTxt = file
	}

	return grobotstxt.AgentAllowed(string(robotsTxt), userAgent, url)
}

func (p *HttpRobotsPolicy) fetchRobotsTxt(url string) ([]byte, error) {
	baseUrl, err := util.GetBaseUrl(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url. %w", err)
	}
	resp, err := p.client.Get(baseUrl + "/robots.txt")
	if err != nil {
		return nil, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			slog.Error("error closing response body", slog.String("err", err.Error()))
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("robots.txt responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
