package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// multiValuedAttrs lists attributes whose value is a whitespace-separated
// list of tokens.
var multiValuedAttrs = map[string]bool{
	"class":          true,
	"rel":            true,
	"rev":            true,
	"accept-charset": true,
	"headers":        true,
	"accesskey":      true,
	"dropzone":       true,
}

// attrValue returns a single string for an attribute of n.
// Multi-valued attributes yield their first token; other attributes yield
// their trimmed value. The second result is false when the attribute is
// absent.
func attrValue(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		if multiValuedAttrs[key] {
			tokens := strings.Fields(attr.Val)
			if len(tokens) == 0 {
				return "", true
			}
			return tokens[0], true
		}
		return strings.TrimSpace(attr.Val), true
	}
	return "", false
}

// selectionAttr is attrValue for the first node of a selection.
func selectionAttr(sel *goquery.Selection, key string) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return attrValue(sel.Nodes[0], key)
}

// strippedText concatenates the trimmed text nodes below the first node of
// sel, skipping the ones that are only whitespace.
func strippedText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel.Nodes[0])

	return sb.String()
}

// firstToken returns the first whitespace-delimited token of s, or "".
func firstToken(s string) string {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
