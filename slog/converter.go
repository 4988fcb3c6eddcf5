package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ampconv"
)

// Ensure LoggingConverter implements ampconv.Converter.
var _ ampconv.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   ampconv.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next ampconv.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs input and output sizes.
func (c *LoggingConverter) Convert(html string) (result *ampconv.Result, err error) {
	defer func(begin time.Time) {
		var out, actions int
		if result != nil {
			out = len(result.HTML)
			actions = len(result.Actions)
		}
		c.logger.Debug("convert",
			"bytes_in", len(html),
			"bytes_out", out,
			"actions", actions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}
