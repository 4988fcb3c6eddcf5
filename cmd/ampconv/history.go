package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ampconv"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := ampconv.ConversionFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	convs, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampconv.ErrorMessage(err))
		return err
	}

	if len(convs) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions found. Use 'ampconv convert --record' to record one.")
		return nil
	}

	for _, conv := range convs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", conv.ID, conv.ConvertedAt.Local().Format(time.DateTime), conv.Source)
	}

	return nil
}
