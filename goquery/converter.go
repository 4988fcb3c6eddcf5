package goquery

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ampconv"
)

// Ensure Converter implements ampconv.Converter at compile time.
var _ ampconv.Converter = (*Converter)(nil)

// Converter parses HTML and runs a fixed sequence of passes over it.
type Converter struct {
	passes []ampconv.Pass
}

// NewConverter creates a Converter that runs passes in the given order.
func NewConverter(passes ...ampconv.Pass) *Converter {
	return &Converter{passes: passes}
}

// Convert parses src, runs every pass over the same document and renders it.
// Each pass sees the changes made by the passes before it.
func (c *Converter) Convert(src string) (*ampconv.Result, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ampconv.Errorf(ampconv.EINVALID, "empty HTML input")
	}

	doc, err := NewDocument(src)
	if err != nil {
		return nil, err
	}

	var actions []ampconv.ActionTaken
	for _, p := range c.passes {
		taken, err := p.Run(doc, doc.Associations())
		if err != nil {
			return nil, fmt.Errorf("%s pass: %w", p.Name(), err)
		}
		actions = append(actions, taken...)
	}

	out, err := doc.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	return &ampconv.Result{HTML: out, Actions: actions}, nil
}
