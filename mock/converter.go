package mock

import "github.com/fwojciec/ampconv"

var _ ampconv.Converter = (*Converter)(nil)

// Converter is a mock implementation of ampconv.Converter.
type Converter struct {
	ConvertFn func(html string) (*ampconv.Result, error)
}

func (c *Converter) Convert(html string) (*ampconv.Result, error) {
	return c.ConvertFn(html)
}
