package cmd

import (
	"fmt"
	"os"

	"vidtrim/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vidtrim",
	Short: "Extract the first seconds of a video with ffmpeg",
	Long: `vidtrim extracts the opening segment of a video file:

  - Trim the first N seconds of a video (stream-copy, re-encode fallback)
  - Inspect a video's container duration
  - Publish a trimmed video to Google Drive with a shareable link

Example:
  vidtrim trim --input recording.mp4 --duration 30 --output clips/`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional: trimming works with process defaults,
		// managed destinations degrade to ephemeral behavior.
		cfg = nil
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
