package cmd

import (
	"fmt"

	"vidtrim/infrastructure/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the loaded configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded; run 'vidtrim setup' or pass --config")
	}
	return RunConfigShow(cfg, cmd.OutOrStdout())
}

// RunConfigShow prints the configuration (for testing via injected writer)
func RunConfigShow(cfg *config.Config, output OutputWriter) error {
	fmt.Fprintf(output, "ffmpeg:\n")
	fmt.Fprintf(output, "  path:        %s\n", valueOrDefault(cfg.FFmpeg.Path, "ffmpeg"))
	fmt.Fprintf(output, "  video codec: %s\n", valueOrDefault(cfg.FFmpeg.VideoCodec, "libx264"))
	fmt.Fprintf(output, "  audio codec: %s\n", valueOrDefault(cfg.FFmpeg.AudioCodec, "aac"))
	fmt.Fprintf(output, "paths:\n")
	fmt.Fprintf(output, "  temp directory:   %s\n", valueOrDefault(cfg.Paths.TempDirectory, "(system default)"))
	fmt.Fprintf(output, "  output directory: %s\n", valueOrDefault(cfg.Paths.OutputDirectory, "(not configured)"))
	fmt.Fprintf(output, "google:\n")
	fmt.Fprintf(output, "  credentials file: %s\n", valueOrDefault(cfg.Google.CredentialsFile, "(not configured)"))
	fmt.Fprintf(output, "  token file:       %s\n", valueOrDefault(cfg.Google.TokenFile, "(service account)"))
	fmt.Fprintf(output, "  folder id:        %s\n", valueOrDefault(cfg.Google.FolderID, "(not configured)"))
	return nil
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
