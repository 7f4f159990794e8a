package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// binaryExtensions is the fixed denylist of link targets that are never
// worth fetching as pages.
var binaryExtensions = []string{".pdf", ".zip", ".png", ".jpg"}

// ExtractLinks derives candidate URLs from a parsed page: every anchor
// href resolved against baseUrl, kept only when it stays on the base
// page's domain, has not been visited, and does not point at a binary
// file. Document order is preserved and duplicates within one page are
// not filtered; the visited set catches them at fetch time.
func ExtractLinks(doc *goquery.Document, baseUrl string, visited map[string]struct{}) []string {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil
	}

	links := make([]string, 0)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		fullUrl := base.ResolveReference(ref)

		if fullUrl.Host != base.Host {
			return
		}
		if _, ok := visited[fullUrl.String()]; ok {
			return
		}
		if isBinaryPath(fullUrl.Path) {
			return
		}
		links = append(links, fullUrl.String())
	})

	return links
}

func isBinaryPath(path string) bool {
	lowercasePath := strings.ToLower(path)
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(lowercasePath, ext) {
			return true
		}
	}

	return false
}
