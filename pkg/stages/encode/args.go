package encode

import (
	"fmt"
	"strconv"

	"github.com/user/snapreel/pkg/pipeline"
)

// Staged artifact names inside a job's work directory.
const (
	frameArtifact  = "frame.png"
	audioArtifact  = "audio.bin"
	outputArtifact = "output.mp4"
)

// BuildArgs constructs the deterministic encoder argument list for one job.
// The pan/zoom filter animates a slow zoom over durationSec*FrameRate
// frames; with audio, the output is bound to the shorter stream and the
// audio is re-encoded as fixed-bitrate AAC.
func BuildArgs(durationSec int, hasAudio bool) []string {
	filter := fmt.Sprintf(
		"zoompan=z='min(zoom+0.0015,1.3)':x='(iw-iw/zoom)/2':y='(ih-ih/zoom)/2':d=%d:s=%dx%d,format=yuv420p",
		durationSec*pipeline.FrameRate, pipeline.FrameWidth, pipeline.FrameHeight,
	)

	args := []string{
		"-loop", "1",
		"-framerate", strconv.Itoa(pipeline.FrameRate),
		"-i", frameArtifact,
	}
	if hasAudio {
		args = append(args, "-i", audioArtifact)
	}
	args = append(args,
		"-t", strconv.Itoa(durationSec),
		"-vf", filter,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-pix_fmt", "yuv420p",
	)
	if hasAudio {
		args = append(args,
			"-shortest",
			"-c:a", "aac",
			"-b:a", "192k",
		)
	}
	return append(args, outputArtifact)
}
