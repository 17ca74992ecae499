package mocks

import (
	"context"

	"github.com/user/snapreel/pkg/ports"
)

// RunCall records a call to Engine.Run.
type RunCall struct {
	Dir  string
	Args []string
}

// Engine is a mock implementation of ports.Engine.
type Engine struct {
	InitFunc func(ctx context.Context) error
	RunFunc  func(ctx context.Context, dir string, args []string, onLog ports.LogLineFunc) error

	// EmitLines are forwarded to onLog before RunFunc's result is returned.
	EmitLines []string

	InitCalls int
	RunCalls  []RunCall
}

func (m *Engine) Init(ctx context.Context) error {
	m.InitCalls++
	if m.InitFunc != nil {
		return m.InitFunc(ctx)
	}
	return nil
}

func (m *Engine) Run(ctx context.Context, dir string, args []string, onLog ports.LogLineFunc) error {
	m.RunCalls = append(m.RunCalls, RunCall{Dir: dir, Args: append([]string(nil), args...)})
	if onLog != nil {
		for _, line := range m.EmitLines {
			onLog(line)
		}
	}
	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, args, onLog)
	}
	return nil
}

var _ ports.Engine = (*Engine)(nil)
