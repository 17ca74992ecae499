package mocks

import (
	"github.com/user/snapreel/pkg/ports"
)

// Prober is a mock implementation of ports.Prober.
type Prober struct {
	ProbeFunc func(data []byte) (ports.VideoInfo, error)

	ProbeCalls int
}

func (m *Prober) Probe(data []byte) (ports.VideoInfo, error) {
	m.ProbeCalls++
	if m.ProbeFunc != nil {
		return m.ProbeFunc(data)
	}
	return ports.VideoInfo{DurationMs: 8000, TrackCount: 1}, nil
}

var _ ports.Prober = (*Prober)(nil)
