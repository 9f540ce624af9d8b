// Package slog provides log/slog decorators for sensei services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sensei"
)

// Ensure LoggingBuilder implements sensei.Builder.
var _ sensei.Builder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps a Builder with logging of each build.
type LoggingBuilder struct {
	next   sensei.Builder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next sensei.Builder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build logs the start of the build, then its exit status and duration.
func (b *LoggingBuilder) Build(ctx context.Context) (outcome *sensei.BuildOutcome, err error) {
	b.logger.Info("build started")
	defer func(begin time.Time) {
		status := -1
		if outcome != nil {
			status = outcome.ExitStatus
		}
		b.logger.Info("build finished",
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Build(ctx)
}

// Ensure LoggingVersionReader implements sensei.VersionReader.
var _ sensei.VersionReader = (*LoggingVersionReader)(nil)

// LoggingVersionReader wraps a VersionReader with debug logging.
type LoggingVersionReader struct {
	next   sensei.VersionReader
	logger *slog.Logger
}

// NewLoggingVersionReader creates a new LoggingVersionReader.
func NewLoggingVersionReader(next sensei.VersionReader, logger *slog.Logger) *LoggingVersionReader {
	return &LoggingVersionReader{next: next, logger: logger}
}

// ReadVersion delegates to the wrapped reader and logs the version found.
func (r *LoggingVersionReader) ReadVersion(name string) (version string, err error) {
	defer func() {
		r.logger.Info("manifest version",
			"crate", name,
			"version", version,
			"err", err,
		)
	}()
	return r.next.ReadVersion(name)
}
