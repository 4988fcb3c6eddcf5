package mock

import (
	"iter"

	"github.com/fwojciec/ampconv"
)

var _ ampconv.Document = (*Document)(nil)

// Document is a mock implementation of ampconv.Document.
type Document struct {
	QueryFn          func(selector string) ([]ampconv.Node, error)
	DescendantsFn    func(n ampconv.Node, tag string) iter.Seq[ampconv.Node]
	NextSiblingsFn   func(n ampconv.Node, tag string) iter.Seq[ampconv.Node]
	AttrFn           func(n ampconv.Node, name string) (string, bool)
	InsertAfterFn    func(n ampconv.Node, tag string, attrs []ampconv.Attribute) ampconv.Node
	RemoveChildrenFn func(n ampconv.Node)
	RemoveFn         func(n ampconv.Node)
	LineNumberFn     func(n ampconv.Node) int
	ContextSnippetFn func(n ampconv.Node) string
}

func (d *Document) Query(selector string) ([]ampconv.Node, error) {
	return d.QueryFn(selector)
}

func (d *Document) Descendants(n ampconv.Node, tag string) iter.Seq[ampconv.Node] {
	return d.DescendantsFn(n, tag)
}

func (d *Document) NextSiblings(n ampconv.Node, tag string) iter.Seq[ampconv.Node] {
	return d.NextSiblingsFn(n, tag)
}

func (d *Document) Attr(n ampconv.Node, name string) (string, bool) {
	return d.AttrFn(n, name)
}

func (d *Document) InsertAfter(n ampconv.Node, tag string, attrs []ampconv.Attribute) ampconv.Node {
	return d.InsertAfterFn(n, tag, attrs)
}

func (d *Document) RemoveChildren(n ampconv.Node) {
	d.RemoveChildrenFn(n)
}

func (d *Document) Remove(n ampconv.Node) {
	d.RemoveFn(n)
}

func (d *Document) LineNumber(n ampconv.Node) int {
	return d.LineNumberFn(n)
}

func (d *Document) ContextSnippet(n ampconv.Node) string {
	return d.ContextSnippetFn(n)
}

var _ ampconv.LineAssociator = (*LineAssociator)(nil)

// LineAssociator is a mock implementation of ampconv.LineAssociator.
type LineAssociator struct {
	AssociateFn func(n ampconv.Node, line int)
}

func (a *LineAssociator) Associate(n ampconv.Node, line int) {
	a.AssociateFn(n, line)
}
