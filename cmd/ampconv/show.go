package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ampconv"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	conv, err := deps.Conversions.FindConversionByID(deps.Ctx, c.ID)
	if ampconv.ErrorCode(err) == ampconv.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: conversion %q not found. Use 'ampconv history' to see recorded conversions.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampconv.ErrorMessage(err))
		return err
	}

	if c.HTML {
		fmt.Fprint(deps.Stdout, conv.HTML)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Source:    %s\n", conv.Source)
	fmt.Fprintf(deps.Stdout, "Converted: %s\n", conv.ConvertedAt.Local().Format(time.DateTime))
	fmt.Fprintf(deps.Stdout, "Hash:      %s\n", conv.ContentHash)
	fmt.Fprintf(deps.Stdout, "Actions:   %d\n", len(conv.Actions))
	if len(conv.Actions) > 0 {
		fmt.Fprintf(deps.Stdout, "\n%s", ampconv.FormatActions(conv.Actions))
	}

	return nil
}
