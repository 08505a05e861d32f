package video

import (
	"context"
	"io"
)

// Exporter is implemented by video values that can write themselves to a path.
// Callers holding host-specific video objects adapt them to this interface
// before entering the trim pipeline.
type Exporter interface {
	Export(ctx context.Context, path string) error
}

// Source is a closed set of input video representations. Each variant is
// reduced to a readable file on disk by the materializer; the variant
// determines how.
type Source interface {
	isSource()
}

// PathSource is a video already on disk, referenced by path.
type PathSource struct {
	Path string
}

// BytesSource is a video held fully in memory.
type BytesSource struct {
	Data []byte
}

// ReaderSource is a video streamed from a reader. The reader is consumed
// exactly once during materialization.
type ReaderSource struct {
	Reader io.Reader
}

// ExportSource wraps a video object that knows how to save itself.
type ExportSource struct {
	Exporter Exporter
}

func (PathSource) isSource()   {}
func (BytesSource) isSource()  {}
func (ReaderSource) isSource() {}
func (ExportSource) isSource() {}
