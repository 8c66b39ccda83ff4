// Package ingest holds helpers shared by the page scrapers.
package ingest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// EdgeUserAgent is sent by every fetcher; both sites serve reduced markup to unknown agents
const EdgeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/139.0.0.0 Safari/537.36 Edg/139.0.0.0"

// ParseHTML converts raw HTML to a goquery Document for parsing
func ParseHTML(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// SpacedText joins every trimmed, non-empty text node under the selection
// with single spaces, so "<td>Offense -<a>Team</a></td>" reads "Offense - Team"
func SpacedText(s *goquery.Selection) string {
	return joinText(s.Nodes, " ")
}

// Text joins the trimmed text nodes of the first matched element with no
// separator, or returns "" when nothing matched
func Text(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	return joinText(s.First().Nodes, "")
}

func joinText(nodes []*html.Node, sep string) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
