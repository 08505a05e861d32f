//go:build !probe

package probe

import (
	"context"
	"fmt"

	"vidtrim/domain/video"
)

// Prober is a stub when GoCV/OpenCV is not available
type Prober struct{}

// NewProber creates a stub prober (requires building with -tags=probe)
func NewProber() *Prober {
	return &Prober{}
}

// Duration returns an error indicating probing is not available
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	return 0, fmt.Errorf("probing not available: build with '-tags=probe' and install OpenCV/GoCV")
}

// Available reports that probing is not compiled in.
func Available() bool { return false }

// Ensure Prober implements video.Prober
var _ video.Prober = (*Prober)(nil)
