package video

import "context"

// TrimResult contains the outcome of a successful trim.
type TrimResult struct {
	OutputPath         string
	UsedFallbackEncode bool
}

// Trimmer defines the interface for video trimming operations
// This is a port that can be implemented by different infrastructure adapters
type Trimmer interface {
	// Trim extracts the first req.Duration seconds of req.InputPath into
	// req.OutputPath, preferring a stream-copy and falling back to a
	// re-encode when the copy fails.
	Trim(ctx context.Context, req *TrimRequest) (*TrimResult, error)
}

// FileChecker defines the interface for checking file existence
// This is used to validate that source files exist before trimming
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}

// Prober reports container-level metadata about a video file.
type Prober interface {
	// Duration returns the playback duration of the video in seconds.
	Duration(ctx context.Context, path string) (float64, error)
}
