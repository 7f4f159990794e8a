package cache

import (
	"testing"

	"github.com/IliaW/scraper-api/config"
	"github.com/stretchr/testify/assert"
)

func Test_InMemoryClient_SaveAndGet(t *testing.T) {
	client := NewInMemoryClient()

	_, ok := client.GetRobotsFile("https://example.com/docs")
	assert.False(t, ok)

	client.SaveRobotsFile("https://example.com/docs", []byte("User-agent: *\nAllow: /"))

	file, ok := client.GetRobotsFile("https://example.com/docs")
	assert.True(t, ok)
	assert.Equal(t, []byte("User-agent: *\nAllow: /"), file)
}

func Test_InMemoryClient_KeyedByDomain(t *testing.T) {
	client := NewInMemoryClient()
	client.SaveRobotsFile("https://example.com/docs", []byte("robots"))

	// any url on the same domain hits the same entry
	file, ok := client.GetRobotsFile("https://example.com/other/path?q=1")
	assert.True(t, ok)
	assert.Equal(t, []byte("robots"), file)

	_, ok = client.GetRobotsFile("https://other.com/docs")
	assert.False(t, ok)
}

func Test_InMemoryClient_EmptyFileIsAHit(t *testing.T) {
	client := NewInMemoryClient()
	client.SaveRobotsFile("https://example.com", []byte{})

	file, ok := client.GetRobotsFile("https://example.com")
	assert.True(t, ok)
	assert.Empty(t, file)
}

func Test_NewCachedClient_DefaultsToInMemory(t *testing.T) {
	client := NewCachedClient(&config.CacheConfig{Type: "memory"})
	assert.IsType(t, &InMemoryClient{}, client)

	client = NewCachedClient(&config.CacheConfig{Type: ""})
	assert.IsType(t, &InMemoryClient{}, client)
}
