package trim

import (
	"context"
	"fmt"
	"io"

	"vidtrim/domain/storage"
	"vidtrim/domain/video"
	"vidtrim/infrastructure/filesystem"
)

// Input is the per-invocation configuration surface for a trim.
type Input struct {
	Source        video.Source
	Duration      float64 // seconds, strictly positive
	OutputPath    string  // optional explicit target; "output" targets the managed directory
	SaveToManaged bool    // place the artifact under the managed output directory
}

// Result contains the outcome of a successful trim.
type Result struct {
	Handle             video.ResultHandle
	OutputPath         string
	Destination        video.DestinationKind
	UsedFallbackEncode bool
}

// Service coordinates the trim pipeline: materialize the input, resolve
// the output location, run the trim, wrap the result, and dispose of the
// working directory.
type Service struct {
	trimmer  video.Trimmer
	wrapper  *video.Wrapper
	provider storage.Provider // nil when no managed storage exists
	prober   video.Prober     // nil when probing is unavailable
	output   io.Writer
}

// ServiceOption is a functional option for configuring Service
type ServiceOption func(*Service)

// WithStorageProvider supplies the managed-storage collaborator.
func WithStorageProvider(p storage.Provider) ServiceOption {
	return func(s *Service) {
		s.provider = p
	}
}

// WithProber supplies a duration prober used for informational reporting.
func WithProber(p video.Prober) ServiceOption {
	return func(s *Service) {
		s.prober = p
	}
}

// WithWrapper sets a custom result wrapper (for testing)
func WithWrapper(w *video.Wrapper) ServiceOption {
	return func(s *Service) {
		s.wrapper = w
	}
}

// WithOutput sets the writer progress and warnings are printed to.
func WithOutput(w io.Writer) ServiceOption {
	return func(s *Service) {
		s.output = w
	}
}

// NewService creates a new trim service
func NewService(trimmer video.Trimmer, opts ...ServiceOption) *Service {
	s := &Service{
		trimmer: trimmer,
		wrapper: video.NewWrapper(),
		output:  io.Discard,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Trim extracts the first input.Duration seconds of the source video and
// returns a handle to the trimmed artifact.
func (s *Service) Trim(ctx context.Context, input Input) (*Result, error) {
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: got %g", video.ErrInvalidDuration, input.Duration)
	}
	if input.Duration > video.MaxDurationSeconds {
		return nil, fmt.Errorf("%w: %g exceeds maximum of %g seconds", video.ErrInvalidDuration, input.Duration, video.MaxDurationSeconds)
	}

	workdir, err := filesystem.NewWorkdir(s.tempBase())
	if err != nil {
		return nil, err
	}

	// The working directory is removed only when the artifact landed at a
	// requested destination outside of it; otherwise it is retained,
	// either because it holds the artifact or because the hosting
	// environment cleans its temp area itself. Removal failures must not
	// mask the trim result.
	dest := video.Destination{Kind: video.DestinationEphemeral}
	defer func() {
		if dest.Kind == video.DestinationEphemeral || workdir.Contains(dest.Path) {
			return
		}
		if err := workdir.Remove(); err != nil {
			fmt.Fprintf(s.output, "Warning: failed to clean up working directory %s: %v\n", workdir.Path(), err)
		}
	}()

	inputPath, err := Materialize(ctx, input.Source, workdir.Path())
	if err != nil {
		return nil, err
	}

	dest, err = ResolveDestination(s.provider, input.SaveToManaged, input.OutputPath, inputPath, workdir.Path())
	if err != nil {
		return nil, err
	}

	if s.prober != nil {
		if total, err := s.prober.Duration(ctx, inputPath); err == nil && input.Duration > total {
			fmt.Fprintf(s.output, "Requested %.1fs exceeds source duration %.1fs; output will span the full source\n", input.Duration, total)
		}
	}

	req := &video.TrimRequest{
		InputPath:  inputPath,
		OutputPath: dest.Path,
		Duration:   input.Duration,
	}

	trimResult, err := s.trimmer.Trim(ctx, req)
	if err != nil {
		return nil, err
	}

	if trimResult.UsedFallbackEncode {
		fmt.Fprintf(s.output, "Stream copy was not possible at this cut point; re-encoded instead\n")
	}

	handle, err := s.wrapper.Wrap(dest.Path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Handle:             handle,
		OutputPath:         dest.Path,
		Destination:        dest.Kind,
		UsedFallbackEncode: trimResult.UsedFallbackEncode,
	}, nil
}

// tempBase returns the base directory for working directories, empty when
// the process default should be used.
func (s *Service) tempBase() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.TempDir()
}
