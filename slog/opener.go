package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sensei"
)

// Ensure LoggingOpener implements sensei.Opener.
var _ sensei.Opener = (*LoggingOpener)(nil)

// LoggingOpener wraps an Opener with debug logging.
type LoggingOpener struct {
	next   sensei.Opener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next sensei.Opener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open logs the target being opened and delegates to the wrapped opener.
func (o *LoggingOpener) Open(ctx context.Context, target string) (err error) {
	defer func(begin time.Time) {
		o.logger.Info("open",
			"target", target,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Open(ctx, target)
}

// Ensure LoggingChecker implements sensei.URLChecker.
var _ sensei.URLChecker = (*LoggingChecker)(nil)

// LoggingChecker wraps a URLChecker with debug logging.
type LoggingChecker struct {
	next   sensei.URLChecker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next sensei.URLChecker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Check delegates to the wrapped checker and logs the result.
func (c *LoggingChecker) Check(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("check",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Check(ctx, url)
}
