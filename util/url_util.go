package util

import (
	"errors"
	u "net/url"
)

// IsValidUrl reports whether the string is an absolute URL with an
// http(s) scheme and a hostname. It never touches the network.
func IsValidUrl(url string) bool {
	parsedUrl, err := u.Parse(url)
	if err != nil {
		return false
	}
	if parsedUrl.Scheme != "http" && parsedUrl.Scheme != "https" {
		return false
	}

	return parsedUrl.Hostname() != ""
}

func GetDomain(url string) (string, error) {
	parsedUrl, err := u.Parse(url)
	if err != nil {
		return "", err
	}
	if parsedUrl.Hostname() == "" {
		return "", errors.New("invalid url. Url should contain scheme and hostname")
	}

	return parsedUrl.Hostname(), nil
}

func GetBaseUrl(url string) (string, error) {
	parsedUrl, err := u.Parse(url)
	if err != nil {
		return "", err
	}
	if parsedUrl.Scheme == "" || parsedUrl.Hostname() == "" {
		return "", errors.New("invalid url. Url should contain scheme and hostname")
	}

	// Host keeps the port; robots.txt lives per network location, not
	// per hostname
	return parsedUrl.Scheme + "://" + parsedUrl.Host, nil
}
