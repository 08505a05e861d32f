package video

import (
	"fmt"
	"io"
	"os"
)

// ResultHandle is the representation of a trimmed video handed back to the
// caller. Which concrete variant is produced depends on the first handle
// factory that succeeds; callers type-switch on the variant they support.
type ResultHandle interface {
	isResultHandle()
}

// FileHandle is the preferred result variant: a lazily-opened, file-backed
// video.
type FileHandle struct {
	path string
}

// Path returns the location of the trimmed artifact.
func (h *FileHandle) Path() string { return h.path }

// Open opens the artifact for reading. The caller owns the returned reader.
func (h *FileHandle) Open() (io.ReadCloser, error) {
	return os.Open(h.path)
}

// BufferedHandle is a file-backed video held fully in memory, for callers
// that consume the artifact after the file is gone.
type BufferedHandle struct {
	path string
	data []byte
}

// Path returns the location the artifact was read from.
func (h *BufferedHandle) Path() string { return h.path }

// Bytes returns the artifact contents.
func (h *BufferedHandle) Bytes() []byte { return h.data }

// RawBytesHandle is the plain byte contents of the trimmed artifact.
type RawBytesHandle []byte

// PathHandle is the bare path of the trimmed artifact. It is the last-resort
// variant and its construction never fails.
type PathHandle string

func (*FileHandle) isResultHandle()     {}
func (*BufferedHandle) isResultHandle() {}
func (RawBytesHandle) isResultHandle()  {}
func (PathHandle) isResultHandle()      {}

// HandleFactory constructs a ResultHandle from an output path. Factories are
// tried in priority order; returning an error means this representation is
// unavailable and the next factory should be tried.
type HandleFactory func(path string) (ResultHandle, error)

// NewFileHandle builds the preferred file-backed handle, verifying the
// artifact is readable.
func NewFileHandle(path string) (ResultHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open trimmed video: %w", err)
	}
	f.Close()
	return &FileHandle{path: path}, nil
}

// NewBufferedHandle builds the in-memory file-backed handle.
func NewBufferedHandle(path string) (ResultHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot buffer trimmed video: %w", err)
	}
	return &BufferedHandle{path: path, data: data}, nil
}

// NewRawBytesHandle builds the raw-bytes handle.
func NewRawBytesHandle(path string) (ResultHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read trimmed video: %w", err)
	}
	return RawBytesHandle(data), nil
}

// NewPathHandle builds the path-string handle. It never fails.
func NewPathHandle(path string) (ResultHandle, error) {
	return PathHandle(path), nil
}

// DefaultHandleFactories returns the standard wrapping priority.
func DefaultHandleFactories() []HandleFactory {
	return []HandleFactory{NewFileHandle, NewBufferedHandle, NewRawBytesHandle, NewPathHandle}
}

// Wrapper converts an output file into a ResultHandle using the first
// factory that succeeds.
type Wrapper struct {
	factories []HandleFactory
}

// NewWrapper creates a Wrapper. With no factories given, the default
// priority order is used.
func NewWrapper(factories ...HandleFactory) *Wrapper {
	if len(factories) == 0 {
		factories = DefaultHandleFactories()
	}
	return &Wrapper{factories: factories}
}

// Wrap tries each factory in order and returns the first handle produced.
func (w *Wrapper) Wrap(path string) (ResultHandle, error) {
	var lastErr error
	for _, factory := range w.factories {
		handle, err := factory(path)
		if err == nil {
			return handle, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no result representation available for %s: %w", path, lastErr)
}
