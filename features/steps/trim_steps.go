//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apptrim "vidtrim/application/trim"
	"vidtrim/cmd"
	"vidtrim/domain/video"
	"vidtrim/infrastructure/filesystem"
	"vidtrim/infrastructure/probe"

	"github.com/cucumber/godog"
)

// mockTrimmer stands in for ffmpeg: it records requests and writes the
// output file like the real tool would.
type mockTrimmer struct {
	calls    []video.TrimRequest
	fallback bool
	failAll  bool
}

func (m *mockTrimmer) Trim(ctx context.Context, req *video.TrimRequest) (*video.TrimResult, error) {
	m.calls = append(m.calls, *req)
	if m.failAll {
		return nil, fmt.Errorf("%w: Invalid data found when processing input", video.ErrTrimFailed)
	}
	if err := os.WriteFile(req.OutputPath, []byte("trimmed"), 0644); err != nil {
		return nil, err
	}
	return &video.TrimResult{OutputPath: req.OutputPath, UsedFallbackEncode: m.fallback}, nil
}

// trimContext holds test state for trim scenarios
type trimContext struct {
	sandbox    string // scenario-local directory for sources and outputs
	tempBase   string // base directory working directories are created in
	sourcePath string
	trimmer    *mockTrimmer
	output     bytes.Buffer
	err        error
}

// SharedTrimContext is reset before each scenario via Before hook
var SharedTrimContext *trimContext

func getTrimContext() *trimContext {
	return SharedTrimContext
}

func InitializeTrimScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		sandbox, err := os.MkdirTemp("", "vidtrim_feature_")
		if err != nil {
			return c, err
		}
		tempBase := filepath.Join(sandbox, "tmp")
		if err := os.MkdirAll(tempBase, 0755); err != nil {
			return c, err
		}
		SharedTrimContext = &trimContext{
			sandbox:  sandbox,
			tempBase: tempBase,
			trimmer:  &mockTrimmer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedTrimContext != nil {
			os.RemoveAll(SharedTrimContext.sandbox)
		}
		return c, nil
	})

	ctx.Step(`^a source video "([^"]*)" exists$`, aSourceVideoExists)
	ctx.Step(`^stream copy is not possible at the cut point$`, streamCopyNotPossible)
	ctx.Step(`^the external tool cannot process the video$`, externalToolCannotProcess)
	ctx.Step(`^I trim the first (\d+(?:\.\d+)?) seconds$`, iTrimTheFirstSeconds)
	ctx.Step(`^I trim the first (\d+(?:\.\d+)?) seconds to "([^"]*)"$`, iTrimTheFirstSecondsTo)
	ctx.Step(`^the trim succeeds$`, theTrimSucceeds)
	ctx.Step(`^the trim fails with an invalid duration error$`, theTrimFailsWithInvalidDuration)
	ctx.Step(`^the trim fails with a trim error$`, theTrimFailsWithTrimError)
	ctx.Step(`^the output file "([^"]*)" exists$`, theOutputFileExists)
	ctx.Step(`^the output file "([^"]*)" does not exist$`, theOutputFileDoesNotExist)
	ctx.Step(`^the output file is inside the working directory$`, theOutputFileIsInsideTheWorkingDirectory)
	ctx.Step(`^the working directory is removed$`, theWorkingDirectoryIsRemoved)
	ctx.Step(`^the working directory is retained$`, theWorkingDirectoryIsRetained)
	ctx.Step(`^the result was re-encoded$`, theResultWasReencoded)
	ctx.Step(`^no external process was started$`, noExternalProcessWasStarted)
}

func aSourceVideoExists(name string) error {
	tc := getTrimContext()
	tc.sourcePath = filepath.Join(tc.sandbox, name)
	return os.WriteFile(tc.sourcePath, []byte("source-video"), 0644)
}

func streamCopyNotPossible() error {
	getTrimContext().trimmer.fallback = true
	return nil
}

func externalToolCannotProcess() error {
	getTrimContext().trimmer.failAll = true
	return nil
}

func runTrim(duration, outputPath string) error {
	tc := getTrimContext()
	seconds, err := strconv.ParseFloat(duration, 64)
	if err != nil {
		return err
	}

	input := apptrim.Input{
		Source:     video.PathSource{Path: tc.sourcePath},
		Duration:   seconds,
		OutputPath: outputPath,
	}

	tc.err = cmd.RunTrimWithDependencies(
		context.Background(),
		tc.trimmer,
		&filesystem.DirProvider{Temp: tc.tempBase},
		probe.NewProber(),
		input,
		&tc.output,
	)
	return nil
}

func iTrimTheFirstSeconds(duration string) error {
	return runTrim(duration, "")
}

func iTrimTheFirstSecondsTo(duration, output string) error {
	tc := getTrimContext()
	return runTrim(duration, filepath.Join(tc.sandbox, output))
}

func theTrimSucceeds() error {
	tc := getTrimContext()
	if tc.err != nil {
		return fmt.Errorf("expected success, got error: %v\noutput:\n%s", tc.err, tc.output.String())
	}
	return nil
}

func theTrimFailsWithInvalidDuration() error {
	tc := getTrimContext()
	if !errors.Is(tc.err, video.ErrInvalidDuration) {
		return fmt.Errorf("expected invalid duration error, got: %v", tc.err)
	}
	return nil
}

func theTrimFailsWithTrimError() error {
	tc := getTrimContext()
	if !errors.Is(tc.err, video.ErrTrimFailed) {
		return fmt.Errorf("expected trim failure, got: %v", tc.err)
	}
	return nil
}

func theOutputFileExists(path string) error {
	tc := getTrimContext()
	full := filepath.Join(tc.sandbox, path)
	if _, err := os.Stat(full); err != nil {
		return fmt.Errorf("output file %s missing: %v", full, err)
	}
	return nil
}

func theOutputFileDoesNotExist(path string) error {
	tc := getTrimContext()
	full := filepath.Join(tc.sandbox, path)
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		return fmt.Errorf("output file %s should not exist", full)
	}
	return nil
}

func workingDirectories() ([]string, error) {
	tc := getTrimContext()
	entries, err := os.ReadDir(tc.tempBase)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "vidtrim_") {
			dirs = append(dirs, filepath.Join(tc.tempBase, e.Name()))
		}
	}
	return dirs, nil
}

func theOutputFileIsInsideTheWorkingDirectory() error {
	dirs, err := workingDirectories()
	if err != nil {
		return err
	}
	if len(dirs) != 1 {
		return fmt.Errorf("expected one working directory, found %d", len(dirs))
	}
	entries, err := os.ReadDir(dirs[0])
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "trimmed_") {
			return nil
		}
	}
	return fmt.Errorf("no trimmed output inside working directory %s", dirs[0])
}

func theWorkingDirectoryIsRemoved() error {
	dirs, err := workingDirectories()
	if err != nil {
		return err
	}
	if len(dirs) != 0 {
		return fmt.Errorf("expected working directories to be removed, found %v", dirs)
	}
	return nil
}

func theWorkingDirectoryIsRetained() error {
	dirs, err := workingDirectories()
	if err != nil {
		return err
	}
	if len(dirs) != 1 {
		return fmt.Errorf("expected one retained working directory, found %d", len(dirs))
	}
	return nil
}

func theResultWasReencoded() error {
	tc := getTrimContext()
	if !strings.Contains(tc.output.String(), "re-encoded") {
		return fmt.Errorf("output should mention the re-encode:\n%s", tc.output.String())
	}
	return nil
}

func noExternalProcessWasStarted() error {
	tc := getTrimContext()
	if len(tc.trimmer.calls) != 0 {
		return fmt.Errorf("trimmer was invoked %d times", len(tc.trimmer.calls))
	}
	return nil
}
