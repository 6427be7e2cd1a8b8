/*
Package xlog is this module's structured logger: a single sugared zap
logger, its level adjustable at runtime, written to stderr.

Grounded on _examples/JaneliaSciComp-repp/internal/repp/log.go (same
zap.NewAtomicLevelAt + zapcore.NewCore + console encoder construction),
adapted into its own small package rather than a package-level var inside
`assembly` so that `digest`/`mix`/`cycle` can log without importing the
orchestration package.
*/
package xlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Level is the logger's configurable level.
	Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	base = zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			Level,
		),
	)

	// Log is the package's default sugared logger.
	Log = base.Sugar()
)

// SetLevel adjusts the logger's level (e.g. zap.DebugLevel for verbose
// combinatorial-search tracing).
func SetLevel(level zapcore.Level) {
	Level.SetLevel(level)
}
