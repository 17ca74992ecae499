// Package mp4probe inspects MP4 containers produced by the encode stage.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/snapreel/pkg/ports"
)

// ErrInvalidContainer is returned when the data is not a usable MP4 file.
var ErrInvalidContainer = errors.New("mp4probe: invalid container")

// Prober implements ports.Prober using mp4ff box parsing.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe parses the container and reports duration and track layout.
func (p *Prober) Probe(data []byte) (ports.VideoInfo, error) {
	f, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	if f.Moov == nil || f.Moov.Mvhd == nil {
		return ports.VideoInfo{}, fmt.Errorf("%w: missing moov box", ErrInvalidContainer)
	}

	mvhd := f.Moov.Mvhd
	info := ports.VideoInfo{
		TrackCount: len(f.Moov.Traks),
	}
	if mvhd.Timescale > 0 {
		info.DurationMs = int(mvhd.Duration * 1000 / uint64(mvhd.Timescale))
	}

	for _, trak := range f.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
			continue
		}
		if trak.Mdia.Hdlr.HandlerType == "soun" {
			info.HasAudio = true
		}
	}

	return info, nil
}

// Ensure Prober implements ports.Prober
var _ ports.Prober = (*Prober)(nil)
