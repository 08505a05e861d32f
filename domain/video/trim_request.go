package video

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxDurationSeconds caps a trim at one hour.
const MaxDurationSeconds = 3600.0

// TrimRequest represents a request to extract the first Duration seconds
// of the input file into the output file. The cut always starts at 0.
type TrimRequest struct {
	InputPath  string
	OutputPath string
	Duration   float64
}

// Validate checks that the trim request is valid. It must pass before any
// external process is started.
func (r *TrimRequest) Validate() error {
	if r.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if r.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if r.Duration <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidDuration, r.Duration)
	}
	if r.Duration > MaxDurationSeconds {
		return fmt.Errorf("%w: %g exceeds maximum of %g seconds", ErrInvalidDuration, r.Duration, MaxDurationSeconds)
	}
	return nil
}

// videoExtensions are the container extensions ffmpeg demuxes reliably
// from the filename alone.
var videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".flv", ".wmv", ".webm", ".m4v"}

// HasVideoExtension reports whether path ends in a recognized video
// container extension.
func HasVideoExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range videoExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimmedFileName derives the output filename for a trimmed video from the
// materialized input file name. Shared by every destination kind so the
// same input always yields the same name.
func TrimmedFileName(inputPath string) string {
	return "trimmed_" + filepath.Base(inputPath)
}
