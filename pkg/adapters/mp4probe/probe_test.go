package mp4probe

import (
	"errors"
	"testing"
)

func TestProber_RejectsGarbage(t *testing.T) {
	p := New()

	_, err := p.Probe([]byte("this is not an mp4 file at all"))
	if !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("expected ErrInvalidContainer, got %v", err)
	}
}

func TestProber_RejectsEmpty(t *testing.T) {
	p := New()

	_, err := p.Probe(nil)
	if !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("expected ErrInvalidContainer, got %v", err)
	}
}

func TestProber_RejectsHeaderOnly(t *testing.T) {
	p := New()

	// A lone ftyp box with no moov must be rejected
	header := []byte{
		0x00, 0x00, 0x00, 0x14, 'f', 't', 'y', 'p',
		'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00,
		'i', 's', 'o', 'm',
	}
	_, err := p.Probe(header)
	if !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("expected ErrInvalidContainer, got %v", err)
	}
}
