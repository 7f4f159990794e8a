package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsValidUrl(t *testing.T) {
	testSet := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "https url",
			url:      "https://example.com/docs",
			expected: true,
		},
		{
			name:     "http url",
			url:      "http://example.com",
			expected: true,
		},
		{
			name:     "missing scheme",
			url:      "example.com/docs",
			expected: false,
		},
		{
			name:     "unsupported scheme",
			url:      "ftp://example.com/file",
			expected: false,
		},
		{
			name:     "scheme without host",
			url:      "https://",
			expected: false,
		},
		{
			name:     "empty string",
			url:      "",
			expected: false,
		},
		{
			name:     "not a url",
			url:      "not a url",
			expected: false,
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, IsValidUrl(test.url))
		})
	}
}

func Test_GetDomain(t *testing.T) {
	testSet := []struct {
		name        string
		url         string
		expected    string
		expectedErr bool
	}{
		{
			name:     "url with path",
			url:      "https://example.com/test/path",
			expected: "example.com",
		},
		{
			name:     "url with port",
			url:      "https://example.com:8080/test",
			expected: "example.com",
		},
		{
			name:        "url without hostname",
			url:         "/relative/path",
			expectedErr: true,
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			domain, err := GetDomain(test.url)
			if test.expectedErr {
				assert.Error(tt, err)
				return
			}
			assert.NoError(tt, err)
			assert.Equal(tt, test.expected, domain)
		})
	}
}

func Test_GetBaseUrl(t *testing.T) {
	testSet := []struct {
		name        string
		url         string
		expected    string
		expectedErr bool
	}{
		{
			name:     "url with path and query",
			url:      "https://example.com/docs/page?x=1",
			expected: "https://example.com",
		},
		{
			name:     "url without path",
			url:      "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "url with explicit port keeps the port",
			url:      "http://127.0.0.1:8080/docs/page",
			expected: "http://127.0.0.1:8080",
		},
		{
			name:        "url without scheme",
			url:         "example.com/docs",
			expectedErr: true,
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			baseUrl, err := GetBaseUrl(test.url)
			if test.expectedErr {
				assert.Error(tt, err)
				return
			}
			assert.NoError(tt, err)
			assert.Equal(tt, test.expected, baseUrl)
		})
	}
}
