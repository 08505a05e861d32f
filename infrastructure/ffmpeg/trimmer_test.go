package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidtrim/domain/video"
)

// mockRunner simulates ffmpeg: configurable failures per mode, and a
// successful run creates the output file (last argument).
type mockRunner struct {
	calls      [][]string
	failCopy   bool
	failEncode bool
	copyStderr string
	encStderr  string
	skipOutput bool
}

func (m *mockRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, args)

	isCopy := hasArgPair(args, "-c", "copy")
	if isCopy && m.failCopy {
		return []byte(m.copyStderr), errors.New("exit status 1")
	}
	if !isCopy && m.failEncode {
		return []byte(m.encStderr), errors.New("exit status 1")
	}

	if !m.skipOutput {
		outputPath := args[len(args)-1]
		if err := os.WriteFile(outputPath, []byte("trimmed"), 0644); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return []byte("ffmpeg version 6.0"), nil
}

func hasArgPair(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func newRequest(t *testing.T) *video.TrimRequest {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "input_video.mp4")
	if err := os.WriteFile(input, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	return &video.TrimRequest{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "trimmed_input_video.mp4"),
		Duration:   12.5,
	}
}

func TestTrimmer_StreamCopySucceeds(t *testing.T) {
	runner := &mockRunner{}
	trimmer := NewTrimmer(WithCommandRunner(runner))
	req := newRequest(t)

	result, err := trimmer.Trim(context.Background(), req)
	if err != nil {
		t.Fatalf("Trim() unexpected error: %v", err)
	}

	if result.UsedFallbackEncode {
		t.Error("UsedFallbackEncode = true, want false for a successful stream copy")
	}
	if len(runner.calls) != 1 {
		t.Fatalf("ffmpeg invoked %d times, want 1", len(runner.calls))
	}

	args := runner.calls[0]
	for _, want := range []string{"-y", "-ss", "0", "-t", "12.5"} {
		if !containsArg(args, want) {
			t.Errorf("copy args %v missing %q", args, want)
		}
	}
	if !hasArgPair(args, "-c", "copy") {
		t.Errorf("copy args %v missing -c copy", args)
	}
}

func TestTrimmer_FallsBackToReencode(t *testing.T) {
	runner := &mockRunner{failCopy: true, copyStderr: "cannot cut without keyframe"}
	trimmer := NewTrimmer(WithCommandRunner(runner))
	req := newRequest(t)

	result, err := trimmer.Trim(context.Background(), req)
	if err != nil {
		t.Fatalf("Trim() unexpected error: %v", err)
	}

	if !result.UsedFallbackEncode {
		t.Error("UsedFallbackEncode = false, want true after copy failure")
	}
	if len(runner.calls) != 2 {
		t.Fatalf("ffmpeg invoked %d times, want 2", len(runner.calls))
	}

	encodeArgs := runner.calls[1]
	if !hasArgPair(encodeArgs, "-c:v", "libx264") {
		t.Errorf("encode args %v missing -c:v libx264", encodeArgs)
	}
	if !hasArgPair(encodeArgs, "-c:a", "aac") {
		t.Errorf("encode args %v missing -c:a aac", encodeArgs)
	}
}

func TestTrimmer_CustomCodecs(t *testing.T) {
	runner := &mockRunner{failCopy: true}
	trimmer := NewTrimmer(WithCommandRunner(runner), WithCodecs("libx265", "libopus"))
	req := newRequest(t)

	if _, err := trimmer.Trim(context.Background(), req); err != nil {
		t.Fatalf("Trim() unexpected error: %v", err)
	}

	encodeArgs := runner.calls[1]
	if !hasArgPair(encodeArgs, "-c:v", "libx265") || !hasArgPair(encodeArgs, "-c:a", "libopus") {
		t.Errorf("encode args %v should use the configured codecs", encodeArgs)
	}
}

func TestTrimmer_BothAttemptsFail(t *testing.T) {
	runner := &mockRunner{
		failCopy:   true,
		failEncode: true,
		copyStderr: "copy diagnostics",
		encStderr:  "encoder not found",
	}
	trimmer := NewTrimmer(WithCommandRunner(runner))
	req := newRequest(t)

	_, err := trimmer.Trim(context.Background(), req)

	if !errors.Is(err, video.ErrTrimFailed) {
		t.Fatalf("Trim() error = %v, want ErrTrimFailed", err)
	}
	if !strings.Contains(err.Error(), "encoder not found") {
		t.Errorf("error %v should carry the second attempt's diagnostics", err)
	}
	if strings.Contains(err.Error(), "copy diagnostics") {
		t.Errorf("error %v should not carry the first attempt's diagnostics", err)
	}
	if _, statErr := os.Stat(req.OutputPath); !os.IsNotExist(statErr) {
		t.Errorf("no output file should remain at %s", req.OutputPath)
	}
}

func TestTrimmer_OutputMissing(t *testing.T) {
	runner := &mockRunner{skipOutput: true}
	trimmer := NewTrimmer(WithCommandRunner(runner))
	req := newRequest(t)

	_, err := trimmer.Trim(context.Background(), req)

	if !errors.Is(err, video.ErrOutputMissing) {
		t.Errorf("Trim() error = %v, want ErrOutputMissing", err)
	}
}

func TestTrimmer_InvalidDurationSpawnsNothing(t *testing.T) {
	runner := &mockRunner{}
	trimmer := NewTrimmer(WithCommandRunner(runner))
	req := newRequest(t)
	req.Duration = 0

	_, err := trimmer.Trim(context.Background(), req)

	if !errors.Is(err, video.ErrInvalidDuration) {
		t.Errorf("Trim() error = %v, want ErrInvalidDuration", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("ffmpeg invoked %d times for an invalid duration, want 0", len(runner.calls))
	}
}

func TestTrimmer_VerifyInstalled(t *testing.T) {
	trimmer := NewTrimmer(WithCommandRunner(&mockRunner{}))
	if err := trimmer.VerifyInstalled(context.Background()); err != nil {
		t.Errorf("VerifyInstalled() unexpected error: %v", err)
	}
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
