package ampconv

import "iter"

// Node is an opaque handle to an element in a Document.
// Handles are comparable and remain valid after the element is detached.
type Node any

// Attribute is a single element attribute.
type Attribute struct {
	Key string
	Val string
}

// Document is a mutable HTML tree that conversion passes rewrite in place.
// The caller owns the document; implementations are not safe for
// concurrent use.
type Document interface {
	// Query returns every element matching the CSS selector in document order.
	// The result is computed once and is not affected by later mutations.
	Query(selector string) ([]Node, error)

	// Descendants yields the elements below n with the given tag name,
	// in document order. The walk is lazy and stops when the caller stops.
	Descendants(n Node, tag string) iter.Seq[Node]

	// NextSiblings yields the element siblings following n with the given
	// tag name, nearest first.
	NextSiblings(n Node, tag string) iter.Seq[Node]

	// Attr returns the value of the named attribute and whether it is present.
	Attr(n Node, name string) (string, bool)

	// InsertAfter creates a new element and inserts it immediately after n.
	// If n is detached the new element is returned detached as well.
	InsertAfter(n Node, tag string, attrs []Attribute) Node

	// RemoveChildren detaches all children of n.
	RemoveChildren(n Node)

	// Remove detaches n and its subtree from the document.
	Remove(n Node)

	// LineNumber returns the 1-based source line of n, or 0 when unknown.
	LineNumber(n Node) int

	// ContextSnippet returns a short excerpt of n for use in reports.
	ContextSnippet(n Node) string
}

// LineAssociator records the source line a newly created node stands for,
// so later passes and diagnostics can map it back to the original markup.
type LineAssociator interface {
	Associate(n Node, line int)
}
