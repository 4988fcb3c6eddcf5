package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/ampconv"
	"golang.org/x/sync/errgroup"
)

// convertResult holds the outcome of converting one input.
type convertResult struct {
	input  string
	result *ampconv.Result
	path   string
	err    error
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if len(c.Inputs) > 1 && deps.Writer == nil {
		fmt.Fprintln(deps.Stderr, "error: converting several inputs requires --output")
		return ampconv.Errorf(ampconv.EINVALID, "several inputs require --output")
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]convertResult, len(c.Inputs))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, input := range c.Inputs {
		g.Go(func() error {
			results[i] = c.convert(gctx, deps, input)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			if len(results) == 1 {
				fmt.Fprintf(deps.Stderr, "error: %s\n", ampconv.ErrorMessage(r.err))
				return r.err
			}
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", r.input, ampconv.ErrorMessage(r.err))
			continue
		}

		if r.path == "" {
			fmt.Fprint(deps.Stdout, r.result.HTML)
		} else {
			fmt.Fprintf(deps.Stdout, "%s -> %s\n", r.input, r.path)
		}

		if !c.Quiet && len(r.result.Actions) > 0 {
			if len(results) > 1 {
				fmt.Fprintf(deps.Stderr, "%s:\n", r.input)
			}
			fmt.Fprint(deps.Stderr, ampconv.FormatActions(r.result.Actions))
		}

		if c.Record {
			conv := &ampconv.Conversion{
				Source:  r.input,
				HTML:    r.result.HTML,
				Actions: r.result.Actions,
			}
			if err := deps.Conversions.CreateConversion(deps.Ctx, conv); err != nil {
				fmt.Fprintf(deps.Stderr, "error recording %s: %s\n", r.input, ampconv.ErrorMessage(err))
				return err
			}
			if !c.Quiet {
				fmt.Fprintf(deps.Stderr, "Recorded %s as %s\n", r.input, conv.ID)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

// convert loads, converts and, when an output directory is set, writes a
// single input.
func (c *ConvertCmd) convert(ctx context.Context, deps *Dependencies, input string) convertResult {
	r := convertResult{input: input}

	src, err := deps.Loader.Load(ctx, input)
	if err != nil {
		r.err = err
		return r
	}

	if r.result, r.err = deps.Converter.Convert(src); r.err != nil {
		return r
	}

	if deps.Writer != nil {
		r.path, r.err = deps.Writer.Write(ctx, input, r.result.HTML)
	}
	return r
}
