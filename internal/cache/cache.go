package cache

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/IliaW/scraper-api/config"
)

// CachedClient stores fetched robots.txt bodies keyed by domain. The
// in-memory backend keeps entries for the process lifetime with no
// invalidation; the memcached backend is shared between instances and
// honors the configured TTL.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name CachedClient
type CachedClient interface {
	GetRobotsFile(url string) ([]byte, bool)
	SaveRobotsFile(url string, robotsFile []byte)
	Close()
}

func NewCachedClient(cacheConfig *config.CacheConfig) CachedClient {
	if strings.ToLower(cacheConfig.Type) == "memcached" {
		return NewMemcachedClient(cacheConfig)
	}

	return NewInMemoryClient()
}

// InMemoryClient is a process-local robots cache. Writes happen at most
// once per domain in practice; a duplicate write from a concurrent
// crawl is benign.
type InMemoryClient struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewInMemoryClient() *InMemoryClient {
	return &InMemoryClient{
		files: make(map[string][]byte),
	}
}

func (c *InMemoryClient) GetRobotsFile(url string) ([]byte, bool) {
	key := generateDomainHash(url)
	c.mu.RLock()
	defer c.mu.RUnlock()
	file, ok := c.files[key]
	if !ok {
		slog.Debug("cache not found.", slog.String("key", key), slog.String("url", url))
		return nil, false
	}
	slog.Debug("cache found.", slog.String("key", key))

	return file, true
}

func (c *InMemoryClient) SaveRobotsFile(url string, robotsFile []byte) {
	key := generateDomainHash(url)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[key] = robotsFile
	slog.Debug("robots file saved to cache.", slog.String("key", key))
}

func (c *InMemoryClient) Close() {}
