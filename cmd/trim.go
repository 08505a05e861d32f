package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	apptrim "vidtrim/application/trim"
	"vidtrim/domain/storage"
	"vidtrim/domain/video"
	"vidtrim/infrastructure/config"
	"vidtrim/infrastructure/ffmpeg"
	"vidtrim/infrastructure/filesystem"
	"vidtrim/infrastructure/probe"

	"github.com/spf13/cobra"
)

var (
	trimInputPath  string
	trimDuration   float64
	trimOutputPath string
	trimSaveOutput bool
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Extract the first N seconds of a video",
	Long: `Extract the first N seconds of a video file.

The cut starts at 0 and spans exactly the requested duration. A lossless
stream-copy is attempted first; when the container cannot be cut at the
requested boundary, the segment is re-encoded instead.

With no --output, the result stays in a temporary working directory.
--output takes a file path, a directory, or the keyword "output" for the
configured output directory. --save-to-output files the result under
<output_directory>/video_trim/ instead. Use --input - to read the video
from stdin.

Example:
  vidtrim trim --input "recording.mp4" --duration 30 --output clips/`,
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)
	trimCmd.Flags().StringVar(&trimInputPath, "input", "", "Path to source video file, or - for stdin (required)")
	trimCmd.Flags().Float64Var(&trimDuration, "duration", 0, "Seconds to keep, from the start of the video (required)")
	trimCmd.Flags().StringVar(&trimOutputPath, "output", "", "Output file, directory, or the keyword \"output\"")
	trimCmd.Flags().BoolVar(&trimSaveOutput, "save-to-output", false, "Place the result under the configured output directory")
	trimCmd.MarkFlagRequired("input")
	trimCmd.MarkFlagRequired("duration")
}

func runTrim(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	var source video.Source
	if trimInputPath == "-" {
		source = video.ReaderSource{Reader: os.Stdin}
	} else {
		source = video.PathSource{Path: trimInputPath}
	}

	input := apptrim.Input{
		Source:        source,
		Duration:      trimDuration,
		OutputPath:    trimOutputPath,
		SaveToManaged: trimSaveOutput,
	}

	return RunTrimWithDependencies(
		cmd.Context(),
		newTrimmer(cfg),
		newStorageProvider(cfg),
		probe.NewProber(),
		input,
		os.Stdout,
	)
}

// newTrimmer builds the production trimmer from configuration
func newTrimmer(cfg *config.Config) *ffmpeg.Trimmer {
	var opts []ffmpeg.TrimmerOption
	if cfg != nil {
		if cfg.FFmpeg.Path != "" {
			opts = append(opts, ffmpeg.WithFFmpegPath(cfg.FFmpeg.Path))
		}
		opts = append(opts, ffmpeg.WithCodecs(cfg.FFmpeg.VideoCodec, cfg.FFmpeg.AudioCodec))
	}
	return ffmpeg.NewTrimmer(opts...)
}

// newStorageProvider builds the managed storage provider, nil when no
// configuration exists
func newStorageProvider(cfg *config.Config) storage.Provider {
	if cfg == nil {
		return nil
	}
	if cfg.Paths.TempDirectory == "" && cfg.Paths.OutputDirectory == "" {
		return nil
	}
	return &filesystem.DirProvider{
		Temp:   cfg.Paths.TempDirectory,
		Output: cfg.Paths.OutputDirectory,
	}
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// RunTrimWithDependencies runs the trim command with injected dependencies (for testing)
func RunTrimWithDependencies(
	ctx context.Context,
	trimmer video.Trimmer,
	provider storage.Provider,
	prober video.Prober,
	input apptrim.Input,
	output OutputWriter,
) error {
	// Verify ffmpeg is available if trimmer supports it
	if verifiable, ok := trimmer.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("ffmpeg verification failed: %w", err)
		}
	}

	service := apptrim.NewService(trimmer,
		apptrim.WithStorageProvider(provider),
		apptrim.WithProber(prober),
		apptrim.WithOutput(output),
	)

	fmt.Fprintf(output, "Trimming first %.1f seconds...\n", input.Duration)

	result, err := service.Trim(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Successfully created: %s (%s destination)\n", result.OutputPath, result.Destination)
	return nil
}
