package cmd

import (
	"context"
	"fmt"

	"vidtrim/domain/video"
	"vidtrim/infrastructure/filesystem"
	"vidtrim/infrastructure/probe"

	"github.com/spf13/cobra"
)

var inspectInputPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report the container duration of a video",
	Long: `Report the playback duration of a video file.

Requires a build with '-tags=probe' and OpenCV/GoCV installed.

Example:
  vidtrim inspect --input recording.mp4`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectInputPath, "input", "", "Path to video file (required)")
	inspectCmd.MarkFlagRequired("input")
}

func runInspect(cmd *cobra.Command, args []string) error {
	return RunInspectWithDependencies(cmd.Context(), probe.NewProber(), filesystem.NewChecker(), inspectInputPath, cmd.OutOrStdout())
}

// RunInspectWithDependencies runs the inspect command with injected dependencies (for testing)
func RunInspectWithDependencies(ctx context.Context, prober video.Prober, checker video.FileChecker, path string, output OutputWriter) error {
	if !checker.Exists(path) {
		return fmt.Errorf("%w: %s", video.ErrInputNotFound, path)
	}

	duration, err := prober.Duration(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %.2f seconds\n", path, duration)
	return nil
}
