package ports

// VideoInfo describes a produced video container.
type VideoInfo struct {
	DurationMs int
	TrackCount int
	HasAudio   bool
}

// Prober inspects encoded video bytes and reports container metadata.
type Prober interface {
	Probe(data []byte) (VideoInfo, error)
}
