package trim

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vidtrim/domain/video"
)

// inputFileName is the name given to inputs written into the working
// directory. Path sources keep their own name.
const inputFileName = "input_video.mp4"

// Materialize reduces a video source to a readable file. Sources that are
// not already on disk are written inside workDir; path sources are used in
// place. Files without a recognized video extension are renamed with .mp4
// appended so ffmpeg can pick a demuxer from the name.
func Materialize(ctx context.Context, src video.Source, workDir string) (string, error) {
	var path string

	switch s := src.(type) {
	case video.ExportSource:
		path = filepath.Join(workDir, inputFileName)
		if err := s.Exporter.Export(ctx, path); err != nil {
			return "", fmt.Errorf("failed to export video to %s: %w", path, err)
		}
	case video.PathSource:
		if _, err := os.Stat(s.Path); err != nil {
			return "", fmt.Errorf("%w: %s", video.ErrInputNotFound, s.Path)
		}
		path = s.Path
	case video.ReaderSource:
		data, err := io.ReadAll(s.Reader)
		if err != nil {
			return "", fmt.Errorf("failed to read video stream: %w", err)
		}
		path = filepath.Join(workDir, inputFileName)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write video stream to %s: %w", path, err)
		}
	case video.BytesSource:
		path = filepath.Join(workDir, inputFileName)
		if err := os.WriteFile(path, s.Data, 0644); err != nil {
			return "", fmt.Errorf("failed to write video bytes to %s: %w", path, err)
		}
	default:
		return "", fmt.Errorf("%w: %T (expected a path, bytes, reader, or exporter source)", video.ErrUnsupportedInput, src)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("materialized input file is missing: %w", err)
	}

	return normalizeExtension(path)
}

// normalizeExtension renames path by appending .mp4 when it does not carry
// a recognized video extension. Naming only; the contents are untouched.
func normalizeExtension(path string) (string, error) {
	if video.HasVideoExtension(path) {
		return path, nil
	}
	renamed := path + ".mp4"
	if err := os.Rename(path, renamed); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", path, err)
	}
	return renamed, nil
}
