package goquery

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// lineAttr carries the source line of a start tag through parsing.
// It is stripped from the tree before the document is handed out.
const lineAttr = "data-ampconv-source-line"

// stampLines rewrites every start tag in src to carry its 1-based source
// line in lineAttr. Everything other than start tags is copied verbatim.
func stampLines(src string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	var b strings.Builder
	b.Grow(len(src) + len(src)/4)

	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return b.String(), nil
		}

		raw := z.Raw()
		start := line
		line += bytes.Count(raw, []byte{'\n'})

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			b.Write(raw)
			continue
		}

		tok := z.Token()
		attrs := tok.Attr[:0]
		for _, a := range tok.Attr {
			if a.Namespace == "" && a.Key == lineAttr {
				continue
			}
			attrs = append(attrs, a)
		}
		tok.Attr = append(attrs, html.Attribute{Key: lineAttr, Val: strconv.Itoa(start)})
		b.WriteString(tok.String())
	}
}

// collectLines moves the stamps left by stampLines from the tree into a
// node to line table.
func collectLines(root *html.Node) map[*html.Node]int {
	lines := make(map[*html.Node]int)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for i, a := range n.Attr {
				if a.Namespace != "" || a.Key != lineAttr {
					continue
				}
				if line, err := strconv.Atoi(a.Val); err == nil && line > 0 {
					lines[n] = line
				}
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
				break
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return lines
}
