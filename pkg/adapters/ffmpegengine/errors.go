package ffmpegengine

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineNotFound is returned when no ffmpeg binary can be located.
	ErrEngineNotFound = errors.New("ffmpegengine: ffmpeg not found")

	// ErrNotInitialized is returned when Run is called before a successful Init.
	ErrNotInitialized = errors.New("ffmpegengine: engine not initialized")
)

// RunError carries the invocation arguments and captured stderr of a
// failed ffmpeg run.
type RunError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("ffmpeg failed: %v (args: %v)\nstderr: %s", e.Err, e.Args, e.Stderr)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
