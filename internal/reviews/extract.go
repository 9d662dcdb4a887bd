// Package reviews extracts candidate review sentences from fetched HTML
// pages, producing raw material for a labeled dataset.
package reviews

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Paragraphs parses an HTML document and returns the text content of its
// paragraph elements, in document order. Script and style subtrees are
// skipped. Paragraphs shorter than minLen runes are dropped: very short
// fragments are navigation chrome, not review text.
func Paragraphs(r io.Reader, minLen int) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "p":
				text := collapseSpace(textContent(n))
				if len([]rune(text)) >= minLen {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return paragraphs, nil
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

// collapseSpace trims and squeezes runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
