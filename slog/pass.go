// Package slog provides logging decorators for ampconv services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ampconv"
)

// Ensure LoggingPass implements ampconv.Pass.
var _ ampconv.Pass = (*LoggingPass)(nil)

// LoggingPass wraps a Pass with debug logging.
type LoggingPass struct {
	next   ampconv.Pass
	logger *slog.Logger
}

// NewLoggingPass creates a new LoggingPass.
func NewLoggingPass(next ampconv.Pass, logger *slog.Logger) *LoggingPass {
	return &LoggingPass{next: next, logger: logger}
}

// Name delegates to the wrapped pass.
func (p *LoggingPass) Name() string {
	return p.next.Name()
}

// Run delegates to the wrapped pass and logs the number of actions taken.
func (p *LoggingPass) Run(doc ampconv.Document, lines ampconv.LineAssociator) (actions []ampconv.ActionTaken, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("pass",
			"pass", p.next.Name(),
			"actions", len(actions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Run(doc, lines)
}
