// Package telemetry holds process-wide counters and the structured logger
// shared by the discretization and placement stages. None of it feeds back
// into placement decisions; it exists so a caller can observe how much work
// the engine did.
package telemetry

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var overlapChecks atomic.Int64

// CountOverlapCheck records one interval overlap comparison performed during
// fit-shift resolution.
func CountOverlapCheck() {
	overlapChecks.Add(1)
}

// OverlapChecks returns the number of overlap comparisons performed so far.
func OverlapChecks() int64 {
	return overlapChecks.Load()
}

// ResetCounters zeroes the package's counters. Intended for tests that run
// multiple independent placements in one process.
func ResetCounters() {
	overlapChecks.Store(0)
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the package-wide logger, e.g. to raise verbosity or
// redirect output in cmd/sdrpack.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}
