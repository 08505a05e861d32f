package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"vidtrim/domain/video"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	// CombinedOutput runs a command to completion, returning its combined
	// stdout and stderr.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// CombinedOutput executes a command and returns its combined stdout/stderr
func (r *ExecCommandRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Trimmer implements video.Trimmer using ffmpeg. It first attempts a
// stream-copy, which is fast but constrained by keyframe placement, then
// falls back to a re-encode that works on any well-formed input.
type Trimmer struct {
	ffmpegPath string
	videoCodec string
	audioCodec string
	runner     CommandRunner
}

// TrimmerOption is a functional option for configuring Trimmer
type TrimmerOption func(*Trimmer)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) TrimmerOption {
	return func(t *Trimmer) {
		t.ffmpegPath = path
	}
}

// WithCodecs sets the codecs used by the re-encode fallback
func WithCodecs(videoCodec, audioCodec string) TrimmerOption {
	return func(t *Trimmer) {
		if videoCodec != "" {
			t.videoCodec = videoCodec
		}
		if audioCodec != "" {
			t.audioCodec = audioCodec
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) TrimmerOption {
	return func(t *Trimmer) {
		t.runner = runner
	}
}

// NewTrimmer creates a new FFmpeg-based trimmer
func NewTrimmer(opts ...TrimmerOption) *Trimmer {
	t := &Trimmer{
		ffmpegPath: "ffmpeg",
		videoCodec: "libx264",
		audioCodec: "aac",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Trim implements video.Trimmer
func (t *Trimmer) Trim(ctx context.Context, req *video.TrimRequest) (*video.TrimResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	usedFallback := false
	if _, err := t.runner.CombinedOutput(ctx, t.ffmpegPath, t.copyArgs(req)...); err != nil {
		// Stream copy cannot cut at arbitrary boundaries; re-encode instead.
		usedFallback = true
		out, err := t.runner.CombinedOutput(ctx, t.ffmpegPath, t.encodeArgs(req)...)
		if err != nil {
			t.removePartialOutput(req.OutputPath)
			return nil, fmt.Errorf("%w: %s", video.ErrTrimFailed, diagnostic(out, err))
		}
	}

	if _, err := os.Stat(req.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: expected %s", video.ErrOutputMissing, req.OutputPath)
	}

	return &video.TrimResult{
		OutputPath:         req.OutputPath,
		UsedFallbackEncode: usedFallback,
	}, nil
}

// copyArgs builds the stream-copy invocation: both streams are remuxed
// verbatim.
func (t *Trimmer) copyArgs(req *video.TrimRequest) []string {
	return []string{
		"-y",
		"-i", req.InputPath,
		"-ss", "0",
		"-t", formatDuration(req.Duration),
		"-c", "copy",
		req.OutputPath,
	}
}

// encodeArgs builds the re-encode invocation used when the copy fails.
func (t *Trimmer) encodeArgs(req *video.TrimRequest) []string {
	return []string{
		"-y",
		"-i", req.InputPath,
		"-ss", "0",
		"-t", formatDuration(req.Duration),
		"-c:v", t.videoCodec,
		"-c:a", t.audioCodec,
		req.OutputPath,
	}
}

// removePartialOutput discards whatever a failed ffmpeg run left behind so
// no output file remains at the resolved destination.
func (t *Trimmer) removePartialOutput(path string) {
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
}

// VerifyInstalled checks that ffmpeg is available
func (t *Trimmer) VerifyInstalled(ctx context.Context) error {
	_, err := t.runner.Output(ctx, t.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// diagnostic returns the tool's captured output, or the exec error when the
// tool produced none.
func diagnostic(out []byte, err error) string {
	if len(out) > 0 {
		return string(out)
	}
	return err.Error()
}

func formatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// Ensure Trimmer implements video.Trimmer
var _ video.Trimmer = (*Trimmer)(nil)
