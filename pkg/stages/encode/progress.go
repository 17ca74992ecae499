package encode

import (
	"strconv"
	"strings"

	"github.com/user/snapreel/pkg/pipeline"
)

// progressMarker prefixes the encoder's frame-progress log lines,
// e.g. "frame=  120 fps= 30 q=28.0 size=...".
const progressMarker = "frame="

// progressFilter forwards encoder progress lines to the caller's callback.
// Its lifetime is exactly one engine invocation; it is handed to Run as a
// parameter, so no listener survives the call.
type progressFilter struct {
	totalFrames int
	onProgress  pipeline.ProgressFunc
}

func newProgressFilter(totalFrames int, onProgress pipeline.ProgressFunc) *progressFilter {
	return &progressFilter{totalFrames: totalFrames, onProgress: onProgress}
}

// HandleLine parses one engine log line and reports it if it is a
// progress line. All other lines are ignored.
func (p *progressFilter) HandleLine(line string) {
	if p.onProgress == nil || !strings.HasPrefix(line, progressMarker) {
		return
	}
	rest := strings.TrimLeft(strings.TrimPrefix(line, progressMarker), " ")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return
	}
	frame, err := strconv.Atoi(rest[:end])
	if err != nil {
		return
	}
	p.onProgress(frame, p.totalFrames)
}
