package video

import "errors"

var (
	// ErrInputNotFound is returned when a path-based source does not exist
	ErrInputNotFound = errors.New("input video file not found")

	// ErrUnsupportedInput is returned when a source cannot be reduced to a file
	ErrUnsupportedInput = errors.New("unsupported input video format")

	// ErrInvalidDuration is returned when the requested duration is out of range
	ErrInvalidDuration = errors.New("duration must be greater than 0")

	// ErrTrimFailed is returned when both the stream-copy and re-encode attempts fail
	ErrTrimFailed = errors.New("ffmpeg trim failed")

	// ErrOutputMissing is returned when ffmpeg reported success but produced no file
	ErrOutputMissing = errors.New("trimmed video file was not created")
)
