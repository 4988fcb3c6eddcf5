package mock

import "github.com/fwojciec/ampconv"

var _ ampconv.Pass = (*Pass)(nil)

// Pass is a mock implementation of ampconv.Pass.
type Pass struct {
	NameFn func() string
	RunFn  func(doc ampconv.Document, lines ampconv.LineAssociator) ([]ampconv.ActionTaken, error)
}

func (p *Pass) Name() string {
	return p.NameFn()
}

func (p *Pass) Run(doc ampconv.Document, lines ampconv.LineAssociator) ([]ampconv.ActionTaken, error) {
	return p.RunFn(doc, lines)
}
