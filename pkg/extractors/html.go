// Package extractors pulls the fields a check reports on out of response bodies.
// This file implements HTML extraction for the frontend page using CSS selectors.
package extractors

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageTitle returns the trimmed text of the document's first <title>.
// An empty string with a nil error means the page has no title.
func PageTitle(htmlContent string) (string, error) {
	return FirstText(htmlContent, "title")
}

// FirstText returns the trimmed text of the first element matching selector.
func FirstText(htmlContent, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return strings.TrimSpace(doc.Find(selector).First().Text()), nil
}
