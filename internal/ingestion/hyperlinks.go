// Package ingestion prepares uploaded resume content for extraction. Rich
// formats carry hyperlinks whose anchor text ("demo", "live") is useless on
// its own; the real URLs are pulled out and appended as a marked section so
// the extraction prompt can resolve project links against them.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HyperlinkSectionMarker starts the appended URL section. The extraction
// prompt references this marker verbatim.
const HyperlinkSectionMarker = "--- Extracted Hyperlinks ---"

// PrepareResumeText returns text ready for the extraction prompt. HTML input
// is flattened to its text content with the hyperlink section appended; plain
// text passes through unchanged.
func PrepareResumeText(raw string) string {
	if !looksLikeHTML(raw) {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	links := collectLinks(doc)
	text := strings.TrimSpace(doc.Text())

	if len(links) == 0 {
		return text
	}

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n")
	sb.WriteString(HyperlinkSectionMarker)
	sb.WriteString("\n")
	for _, link := range links {
		sb.WriteString(link)
		sb.WriteString("\n")
	}
	return sb.String()
}

// collectLinks gathers absolute http(s) hrefs in document order, labeled with
// their anchor text when it has one, deduplicated by URL.
func collectLinks(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}

		anchor := strings.TrimSpace(sel.Text())
		if anchor != "" && anchor != href {
			links = append(links, fmt.Sprintf("%s: %s", anchor, href))
			return
		}
		links = append(links, href)
	})
	return links
}

func looksLikeHTML(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<a ") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "<p>")
}
