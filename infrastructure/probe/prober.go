//go:build probe

package probe

import (
	"context"
	"fmt"

	"vidtrim/domain/video"

	"gocv.io/x/gocv"
)

// Prober implements video.Prober using GoCV container inspection
type Prober struct{}

// NewProber creates a new GoCV-backed prober
func NewProber() *Prober {
	return &Prober{}
}

// Duration returns the playback duration of the video in seconds, computed
// from the container's frame count and frame rate.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	defer capture.Close()

	fps := capture.Get(gocv.VideoCaptureFPS)
	frames := capture.Get(gocv.VideoCaptureFrameCount)
	if fps <= 0 || frames <= 0 {
		return 0, fmt.Errorf("video %s reports no frame rate or frame count", path)
	}

	return frames / fps, nil
}

// Available reports that probing is compiled in.
func Available() bool { return true }

// Ensure Prober implements video.Prober
var _ video.Prober = (*Prober)(nil)
