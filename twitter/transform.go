// Package twitter rewrites embedded Twitter status blockquotes into
// amp-twitter elements.
package twitter

import (
	"regexp"

	"github.com/fwojciec/ampconv"
)

// Selector matches the blockquotes produced by Twitter's embed code.
const Selector = "blockquote.twitter-tweet"

// Tag is the element that replaces each embedded tweet.
const Tag = "amp-twitter"

// Fixed dimensions of the replacement element.
const (
	Width  = "400"
	Height = "600"
	Layout = "responsive"
)

// Subjects reported for a converted blockquote.
const (
	SubjectBlockquote           = "blockquote.twitter-tweet"
	SubjectBlockquoteWithScript = "blockquote.twitter-tweet (with twitter script tag)"
)

var (
	statusURL  = regexp.MustCompile(`(?i)twitter\.com/.*/status/([^/]+)`)
	widgetsURL = regexp.MustCompile(`(?i)twitter\.com/widgets\.js`)
)

// presentationAttrs are copied from the blockquote when set.
// data-cards="hidden" hides photos, data-conversation="none" hides the thread.
var presentationAttrs = []string{"data-cards", "data-conversation"}

// Ensure Transformer implements ampconv.Pass at compile time.
var _ ampconv.Pass = (*Transformer)(nil)

// Transformer converts Twitter embeds. It holds no state between runs.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Name returns the pass name.
func (t *Transformer) Name() string {
	return "twitter"
}

// Run implements ampconv.Pass.
func (t *Transformer) Run(doc ampconv.Document, lines ampconv.LineAssociator) ([]ampconv.ActionTaken, error) {
	return t.Transform(doc, lines)
}

// Transform replaces every embedded tweet in doc with an amp-twitter element
// and removes the widget script paired with it. It returns one action per
// converted blockquote in document order and registers the source line of
// each blockquote for its replacement.
//
// The candidate blockquotes are selected once up front; removing nodes while
// converting does not change which blockquotes are visited. A tweet nested in
// another tweet is detached together with its parent, yet it is still
// converted: its amp-twitter element stays detached and never reaches the
// output, but it gets an action and a line association like any other.
//
// Attribute values and ids are kept whenever they are non-empty, "0"
// included.
func (t *Transformer) Transform(doc ampconv.Document, lines ampconv.LineAssociator) ([]ampconv.ActionTaken, error) {
	blocks, err := doc.Query(Selector)
	if err != nil {
		return nil, err
	}

	actions := make([]ampconv.ActionTaken, 0, len(blocks))
	for _, block := range blocks {
		line := doc.LineNumber(block)
		snippet := doc.ContextSnippet(block)

		attrs := tweetAttributes(doc, block)
		attrs = append(attrs,
			ampconv.Attribute{Key: "width", Val: Width},
			ampconv.Attribute{Key: "height", Val: Height},
			ampconv.Attribute{Key: "layout", Val: Layout},
			ampconv.Attribute{Key: "data-tweetid", Val: TweetID(doc, block)},
		)
		script, hasScript := widgetScript(doc, block)

		replacement := doc.InsertAfter(block, Tag, attrs)

		doc.RemoveChildren(block)
		doc.Remove(block)

		subject := SubjectBlockquote
		if hasScript {
			doc.Remove(script)
			subject = SubjectBlockquoteWithScript
		}

		actions = append(actions, ampconv.ActionTaken{
			Subject: subject,
			Kind:    ampconv.EmbedConverted,
			Line:    line,
			Context: snippet,
		})

		lines.Associate(replacement, line)
	}

	return actions, nil
}

// TweetID returns the status ID from the first link under block that points
// at a tweet, or "" if there is none.
func TweetID(doc ampconv.Document, block ampconv.Node) string {
	for a := range doc.Descendants(block, "a") {
		href, _ := doc.Attr(a, "href")
		if m := statusURL.FindStringSubmatch(href); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// tweetAttributes returns the presentation attributes set on block.
// Absent and empty attributes are left out.
func tweetAttributes(doc ampconv.Document, block ampconv.Node) []ampconv.Attribute {
	var attrs []ampconv.Attribute
	for _, name := range presentationAttrs {
		if val, _ := doc.Attr(block, name); val != "" {
			attrs = append(attrs, ampconv.Attribute{Key: name, Val: val})
		}
	}
	return attrs
}

// widgetScript returns the first script after block that loads Twitter's
// widgets.js.
func widgetScript(doc ampconv.Document, block ampconv.Node) (ampconv.Node, bool) {
	for s := range doc.NextSiblings(block, "script") {
		if src, _ := doc.Attr(s, "src"); widgetsURL.MatchString(src) {
			return s, true
		}
	}
	return nil, false
}
