// Package goquery implements the ampconv DOM on top of goquery and
// golang.org/x/net/html, and runs conversion passes over parsed documents.
package goquery

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/ampconv"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxContextLen bounds the length of ContextSnippet output in bytes.
const maxContextLen = 200

// Ensure Document implements ampconv.Document at compile time.
var _ ampconv.Document = (*Document)(nil)

// Document is a parsed HTML document that tracks the source line of every
// element present in the original markup.
type Document struct {
	doc       *goquery.Document
	source    map[*html.Node]int
	assoc     *ampconv.LineAssociations
	selectors map[string]cascadia.Selector
}

// NewDocument parses src into a Document.
func NewDocument(src string) (*Document, error) {
	stamped, err := stampLines(src)
	if err != nil {
		return nil, ampconv.Errorf(ampconv.EINVALID, "failed to tokenize HTML: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stamped))
	if err != nil {
		return nil, ampconv.Errorf(ampconv.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{
		doc:       doc,
		source:    collectLines(doc.Nodes[0]),
		assoc:     ampconv.NewLineAssociations(),
		selectors: make(map[string]cascadia.Selector),
	}, nil
}

// Associations returns the table of lines registered for nodes created
// after parsing. LineNumber falls back to it.
func (d *Document) Associations() *ampconv.LineAssociations {
	return d.assoc
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Query returns every element matching selector in document order.
func (d *Document) Query(selector string) ([]ampconv.Node, error) {
	m, ok := d.selectors[selector]
	if !ok {
		var err error
		m, err = cascadia.Compile(selector)
		if err != nil {
			return nil, ampconv.Errorf(ampconv.EINVALID, "invalid selector %q: %v", selector, err)
		}
		d.selectors[selector] = m
	}

	sel := d.doc.FindMatcher(m)
	nodes := make([]ampconv.Node, 0, sel.Length())
	for _, n := range sel.Nodes {
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Descendants yields the elements below n named tag in document order.
func (d *Document) Descendants(n ampconv.Node, tag string) iter.Seq[ampconv.Node] {
	tag = strings.ToLower(tag)
	return func(yield func(ampconv.Node) bool) {
		root := element(n)
		if root == nil {
			return
		}
		descend(root, tag, yield)
	}
}

func descend(n *html.Node, tag string, yield func(ampconv.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			if !yield(c) {
				return false
			}
		}
		if !descend(c, tag, yield) {
			return false
		}
	}
	return true
}

// NextSiblings yields the element siblings after n named tag, nearest first.
func (d *Document) NextSiblings(n ampconv.Node, tag string) iter.Seq[ampconv.Node] {
	tag = strings.ToLower(tag)
	return func(yield func(ampconv.Node) bool) {
		start := element(n)
		if start == nil {
			return
		}
		for s := start.NextSibling; s != nil; {
			next := s.NextSibling
			if s.Type == html.ElementNode && s.Data == tag {
				if !yield(s) {
					return
				}
			}
			s = next
		}
	}
}

// Attr returns the value of the named attribute of n.
func (d *Document) Attr(n ampconv.Node, name string) (string, bool) {
	el := element(n)
	if el == nil {
		return "", false
	}
	return goquery.NewDocumentFromNode(el).Attr(strings.ToLower(name))
}

// InsertAfter creates a tag element with attrs and inserts it right after n.
func (d *Document) InsertAfter(n ampconv.Node, tag string, attrs []ampconv.Attribute) ampconv.Node {
	tag = strings.ToLower(tag)
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}

	if target := element(n); target != nil && target.Parent != nil {
		target.Parent.InsertBefore(el, target.NextSibling)
	}
	return el
}

// RemoveChildren detaches every child of n.
func (d *Document) RemoveChildren(n ampconv.Node) {
	if el := element(n); el != nil {
		goquery.NewDocumentFromNode(el).Empty()
	}
}

// Remove detaches n and its subtree.
func (d *Document) Remove(n ampconv.Node) {
	if el := element(n); el != nil && el.Parent != nil {
		el.Parent.RemoveChild(el)
	}
}

// LineNumber returns the source line of n. Nodes created after parsing
// report the line associated with them, if any.
func (d *Document) LineNumber(n ampconv.Node) int {
	if el := element(n); el != nil {
		if line, ok := d.source[el]; ok {
			return line
		}
	}
	if line, ok := d.assoc.Line(n); ok {
		return line
	}
	return 0
}

// ContextSnippet returns the start tag of n, truncated to maxContextLen bytes.
func (d *Document) ContextSnippet(n ampconv.Node) string {
	el := element(n)
	if el == nil {
		return ""
	}
	tok := html.Token{Type: html.StartTagToken, Data: el.Data, Attr: el.Attr}
	return truncate(tok.String(), maxContextLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// element unwraps a node handle. Handles from other implementations yield nil.
func element(n ampconv.Node) *html.Node {
	el, ok := n.(*html.Node)
	if !ok || el == nil || el.Type != html.ElementNode {
		return nil
	}
	return el
}
