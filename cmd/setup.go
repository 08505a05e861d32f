package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"vidtrim/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through setting up the ffmpeg tool, the managed
storage directories, and optional Google Drive publishing.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to vidtrim setup!")
	fmt.Println()

	cfg := &config.Config{}

	if err := promptFFmpeg(prompter, cfg); err != nil {
		return err
	}

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptGoogle(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptFFmpeg(prompter Prompter, cfg *config.Config) error {
	path, err := prompter.Input("Path to the ffmpeg executable:", "ffmpeg")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.FFmpeg.Path = path

	videoCodec, err := prompter.Input("Fallback video codec:", "libx264")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.FFmpeg.VideoCodec = videoCodec

	audioCodec, err := prompter.Input("Fallback audio codec:", "aac")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.FFmpeg.AudioCodec = audioCodec

	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	tempDir, err := prompter.Input("Temp directory for working files (empty for system default):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.TempDirectory = tempDir

	outputDir, err := prompter.Input("Output directory for finished trims (empty to disable):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.OutputDirectory = outputDir

	return nil
}

func promptGoogle(prompter Prompter, cfg *config.Config) error {
	enable, err := prompter.Confirm("Configure Google Drive publishing?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if !enable {
		return nil
	}

	credentials, err := prompter.Input("Path to Google credentials JSON:", "config/credentials.json")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.CredentialsFile = credentials

	tokenFile, err := prompter.Input("Path to cache the OAuth token (empty for service account):", "config/token.json")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.TokenFile = tokenFile

	folderID, err := prompter.Input("Drive folder ID for uploads:", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.FolderID = folderID

	return nil
}
