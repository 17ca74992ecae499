// Package encode implements the video encoding stage.
//
// Each job stages its artifacts in an isolated, uniquely named work
// directory, invokes the shared encoder engine with a deterministic
// argument list, reads back the output container, and always runs a
// cleanup phase that attempts each deletion exactly once.
package encode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/user/snapreel/pkg/pipeline"
	"github.com/user/snapreel/pkg/ports"
)

// ErrEncode is returned when staging, invocation, or output retrieval
// fails. The underlying cause is wrapped for diagnostics.
var ErrEncode = errors.New("encode: job failed")

// State is the encode job lifecycle.
type State int

const (
	StateIdle State = iota
	StatePreparing
	StateEncoding
	StateCompleted
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StateEncoding:
		return "encoding"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// validTransitions defines the legal job lifecycle.
var validTransitions = map[State][]State{
	StateIdle:      {StatePreparing},
	StatePreparing: {StateEncoding, StateFailed},
	StateEncoding:  {StateCompleted, StateFailed},
	StateCompleted: {StateIdle},
	StateFailed:    {StateIdle},
}

// canTransition checks if a transition from one state to another is allowed.
func canTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Stage encodes a composed frame (plus optional audio) into an MP4.
type Stage struct {
	engine   ports.Engine
	fs       ports.FileSystem
	prober   ports.Prober
	sink     ports.DebugSink
	logger   ports.Logger
	workRoot string
}

// NewStage creates a new encode stage. Job work directories are created
// under workRoot; an empty workRoot uses the system temp directory.
func NewStage(engine ports.Engine, fs ports.FileSystem, prober ports.Prober, sink ports.DebugSink, logger ports.Logger, workRoot string) *Stage {
	return &Stage{
		engine:   engine,
		fs:       fs,
		prober:   prober,
		sink:     sink,
		logger:   logger.WithComponent("encode"),
		workRoot: workRoot,
	}
}

// jobDir creates the isolated work directory for one job. With a work
// root configured, jobs get uuid-named directories beneath it; otherwise
// the filesystem picks a unique directory under the system temp root.
func (s *Stage) jobDir() (string, error) {
	if s.workRoot == "" {
		return s.fs.TempDir("snapreel-job-")
	}
	dir := filepath.Join(s.workRoot, "job-"+uuid.NewString())
	if err := s.fs.MkdirAll(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// job tracks the transient state of one encode invocation and the staged
// artifacts it owns.
type job struct {
	dir         string
	state       State
	stagedAudio bool
	fs          ports.FileSystem
	logger      ports.Logger
}

// transition moves the job to the next lifecycle state. An illegal
// transition indicates a bug in the stage and leaves the state unchanged.
func (j *job) transition(to State) {
	if !canTransition(j.state, to) {
		j.logger.Error("Illegal job state transition %s -> %s", j.state, to)
		return
	}
	j.state = to
}

// cleanup attempts deletion of each staged artifact exactly once: frame,
// then output, then audio if one was staged. Deletions are independent; a
// failure is logged and never alters the job outcome. The work directory
// itself is removed last.
func (j *job) cleanup() {
	artifacts := []string{frameArtifact, outputArtifact}
	if j.stagedAudio {
		artifacts = append(artifacts, audioArtifact)
	}
	for _, name := range artifacts {
		if err := j.fs.Remove(filepath.Join(j.dir, name)); err != nil && !os.IsNotExist(err) {
			j.logger.Warn("Failed to delete artifact %s: %s", name, err)
		}
	}
	if err := j.fs.RemoveAll(j.dir); err != nil {
		j.logger.Warn("Failed to remove job directory %s: %s", j.dir, err)
	}
	j.transition(StateIdle)
}

// Execute runs one encode job end to end. Cleanup runs on every exit
// path, including context cancellation.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if err := input.Validate(); err != nil {
		return result, fmt.Errorf("%w: invalid request: %w", ErrEncode, err)
	}
	if err := s.engine.Init(ctx); err != nil {
		return result, fmt.Errorf("initialize engine: %w", err)
	}

	dir, err := s.jobDir()
	if err != nil {
		return result, fmt.Errorf("%w: create work directory: %w", ErrEncode, err)
	}
	j := &job{
		dir:    dir,
		fs:     s.fs,
		logger: s.logger,
	}
	j.transition(StatePreparing)
	defer j.cleanup()

	if err := s.fs.WriteFile(filepath.Join(j.dir, frameArtifact), input.FrameData); err != nil {
		j.transition(StateFailed)
		return result, fmt.Errorf("%w: stage frame: %w", ErrEncode, err)
	}
	if input.HasAudio() {
		if err := s.fs.WriteFile(filepath.Join(j.dir, audioArtifact), input.AudioData); err != nil {
			j.transition(StateFailed)
			return result, fmt.Errorf("%w: stage audio: %w", ErrEncode, err)
		}
		j.stagedAudio = true
	}

	j.transition(StateEncoding)
	args := BuildArgs(input.DurationSec, j.stagedAudio)
	if s.sink.Enabled() {
		if err := s.sink.SaveEncodeArgs(args); err != nil {
			s.logger.Warn("Failed to save encoder args: %s", err)
		}
	}
	s.logger.Debug("Invoking engine for %ds (%d frames, audio=%v)", input.DurationSec, input.TotalFrames(), j.stagedAudio)

	progress := newProgressFilter(input.TotalFrames(), input.OnProgress)
	if err := s.engine.Run(ctx, j.dir, args, progress.HandleLine); err != nil {
		j.transition(StateFailed)
		return result, fmt.Errorf("%w: engine invocation: %w", ErrEncode, err)
	}

	data, err := s.fs.ReadFile(filepath.Join(j.dir, outputArtifact))
	if err != nil {
		j.transition(StateFailed)
		return result, fmt.Errorf("%w: read output: %w", ErrEncode, err)
	}
	if !sniffMP4(data) {
		// A non-MP4 payload here means the engine misbehaved, not that the
		// user supplied bad input.
		j.transition(StateFailed)
		return result, fmt.Errorf("%w: engine produced a non-MP4 payload (%d bytes)", ErrEncode, len(data))
	}
	j.transition(StateCompleted)

	result.VideoData = data
	result.FileSize = int64(len(data))
	result.HasAudio = j.stagedAudio
	result.DurationMs = input.DurationSec * 1000
	if info, err := s.prober.Probe(data); err != nil {
		s.logger.Warn("Output probe failed: %s", err)
	} else {
		result.DurationMs = info.DurationMs
		result.HasAudio = info.HasAudio
	}

	return result, nil
}

// sniffMP4 reports whether data starts with an MP4 ftyp box.
func sniffMP4(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp"))
}
