package ffmpegengine

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEngine_InitBadCustomPath(t *testing.T) {
	e := New("/nonexistent/ffmpeg")

	err := e.Init(context.Background())
	if !errors.Is(err, ErrEngineNotFound) {
		t.Errorf("expected ErrEngineNotFound, got %v", err)
	}
}

func TestEngine_InitRetriesAfterFailure(t *testing.T) {
	e := New("/nonexistent/ffmpeg")

	if err := e.Init(context.Background()); err == nil {
		t.Fatal("expected first init to fail")
	}
	// A failed init must not latch; the second attempt runs the full
	// resolution again instead of returning a cached success.
	if err := e.Init(context.Background()); err == nil {
		t.Fatal("expected second init to fail identically")
	}
	if e.initialized {
		t.Error("engine must stay uninitialized after failed init")
	}
}

func TestEngine_RunBeforeInit(t *testing.T) {
	e := New("")

	err := e.Run(context.Background(), "/tmp", []string{"-version"}, nil)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestRunError_Format(t *testing.T) {
	inner := errors.New("exit status 1")
	err := &RunError{
		Args:   []string{"-i", "frame.png", "output.mp4"},
		Stderr: "Unknown encoder 'libx264'",
		Err:    inner,
	}

	msg := err.Error()
	if !strings.Contains(msg, "frame.png") {
		t.Errorf("expected args in message: %s", msg)
	}
	if !strings.Contains(msg, "Unknown encoder") {
		t.Errorf("expected stderr in message: %s", msg)
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}

func TestScanProgressLines(t *testing.T) {
	input := "line one\nframe=  120 fps=30\rframe=  240 fps=30\rtail"

	var lines []string
	data := []byte(input)
	for {
		advance, token, _ := scanProgressLines(data, true)
		if advance == 0 && token == nil {
			break
		}
		lines = append(lines, string(token))
		data = data[advance:]
	}

	want := []string{"line one", "frame=  120 fps=30", "frame=  240 fps=30", "tail"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
