// Package ffmpegengine runs ffmpeg as an external process.
package ffmpegengine

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/user/snapreel/pkg/ports"
)

// stderrTailLines bounds how much ffmpeg output is retained for error reports.
const stderrTailLines = 50

// Engine implements ports.Engine by spawning the ffmpeg binary.
// Init resolves and verifies the binary once; a failed Init leaves the
// engine uninitialized so a later call can retry after the host is fixed.
type Engine struct {
	customPath string

	mu          sync.Mutex
	path        string
	initialized bool
}

// New creates an Engine. customPath, when non-empty, pins the ffmpeg
// binary instead of searching for one.
func New(customPath string) *Engine {
	return &Engine{customPath: customPath}
}

// Init locates the ffmpeg binary and verifies it responds to -version.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	path, err := findFFmpeg(e.customPath)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path, "-version")
	if out, err := cmd.Output(); err != nil {
		return fmt.Errorf("%w: %s did not respond to -version: %v", ErrEngineNotFound, path, err)
	} else if !bytes.HasPrefix(out, []byte("ffmpeg")) {
		return fmt.Errorf("%w: %s is not an ffmpeg binary", ErrEngineNotFound, path)
	}

	e.path = path
	e.initialized = true
	return nil
}

// Run executes ffmpeg with the given arguments in dir. Each stderr line
// is forwarded to onLog as it arrives.
func (e *Engine) Run(ctx context.Context, dir string, args []string, onLog ports.LogLineFunc) error {
	e.mu.Lock()
	path := e.path
	initialized := e.initialized
	e.mu.Unlock()

	if !initialized {
		return ErrNotInitialized
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	var tail []string
	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanProgressLines)
	for scanner.Scan() {
		line := scanner.Text()
		if onLog != nil {
			onLog(line)
		}
		tail = append(tail, line)
		if len(tail) > stderrTailLines {
			tail = tail[1:]
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &RunError{
			Args:   args,
			Stderr: strings.Join(tail, "\n"),
			Err:    err,
		}
	}
	return nil
}

// scanProgressLines splits on both \n and \r so ffmpeg's in-place
// progress updates arrive as individual lines.
func scanProgressLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// findFFmpeg searches for ffmpeg in PATH and common locations.
// Priority: 1) customPath, 2) FFMPEG_PATH env, 3) PATH, 4) common locations
func findFFmpeg(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrEngineNotFound, customPath)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrEngineNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	} else if runtime.GOOS == "darwin" {
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrEngineNotFound
}

// Ensure Engine implements ports.Engine
var _ ports.Engine = (*Engine)(nil)
