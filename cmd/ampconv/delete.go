package main

import (
	"fmt"

	"github.com/fwojciec/ampconv"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Conversions.DeleteConversion(deps.Ctx, c.ID); err != nil {
		if ampconv.ErrorCode(err) == ampconv.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: conversion %q not found. Use 'ampconv history' to see recorded conversions.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampconv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted conversion %s\n", c.ID)
	return nil
}
