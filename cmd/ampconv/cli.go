package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/ampconv"
	"github.com/fwojciec/ampconv/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Conversions ampconv.ConversionService
	Loader      ampconv.Loader
	Converter   ampconv.Converter
	Writer      ampconv.OutputWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert Twitter embeds in HTML files or URLs to amp-twitter"`
	History HistoryCmd `cmd:"" help:"List recorded conversions"`
	Show    ShowCmd    `cmd:"" help:"Show a recorded conversion"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a recorded conversion"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Inputs      []string      `arg:"" help:"HTML files, http(s) URLs, or - for stdin"`
	Output      string        `short:"o" type:"path" help:"Write converted HTML into this directory"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent conversion limit"`
	Record      bool          `short:"r" help:"Record conversions in the database"`
	Quiet       bool          `short:"q" help:"Do not print the action report"`
	Timeout     time.Duration `default:"30s" help:"Timeout for fetching URLs"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `short:"s" help:"Only show conversions of this input"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of conversions to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Conversion ID"`
	HTML bool   `name:"html" help:"Print the converted HTML instead of the report"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Conversion ID"`
}
