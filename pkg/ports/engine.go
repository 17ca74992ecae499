// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
)

// LogLineFunc receives a single line of encoder log output.
type LogLineFunc func(line string)

// Engine abstracts the shared video encoding engine.
//
// The engine is a process-wide resource: Init performs the one-time
// bootstrap (binary discovery and verification), concurrent callers block
// on the same in-flight initialization, and after success Init is a no-op.
// A failed initialization may be retried by calling Init again.
type Engine interface {
	// Init prepares the engine for use.
	Init(ctx context.Context) error

	// Run executes one encode invocation with the given argument list.
	// All relative artifact names in args resolve inside dir. Each line of
	// the engine's log output is forwarded to onLog for the duration of
	// this call only; onLog may be nil.
	Run(ctx context.Context, dir string, args []string, onLog LogLineFunc) error
}
