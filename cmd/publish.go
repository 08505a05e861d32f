package cmd

import (
	"context"
	"fmt"
	"os"

	appdist "vidtrim/application/distribution"
	"vidtrim/domain/distribution"
	"vidtrim/infrastructure/drive"

	"github.com/spf13/cobra"
)

var publishInputPath string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a trimmed video to Google Drive",
	Long: `Upload a trimmed video to the configured Google Drive folder,
replacing any file with the same name, and print a shareable link.

Requires Google credentials in the configuration (see 'vidtrim setup').

Example:
  vidtrim publish --input trimmed_recording.mp4`,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&publishInputPath, "input", "", "Path to the video to upload (required)")
	publishCmd.MarkFlagRequired("input")
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded; ensure config/config.yaml exists")
	}
	if cfg.Google.CredentialsFile == "" || cfg.Google.FolderID == "" {
		return fmt.Errorf("google credentials_file and folder_id must be configured; run 'vidtrim setup'")
	}

	client, err := drive.NewClient(cmd.Context(), drive.OAuthConfig{
		CredentialsFile: cfg.Google.CredentialsFile,
		TokenFile:       cfg.Google.TokenFile,
	})
	if err != nil {
		return err
	}

	return RunPublishWithDependencies(cmd.Context(), client, cfg.Google.FolderID, publishInputPath, os.Stdout)
}

// RunPublishWithDependencies runs the publish command with injected dependencies (for testing)
func RunPublishWithDependencies(
	ctx context.Context,
	client distribution.DriveClient,
	folderID string,
	videoPath string,
	output OutputWriter,
) error {
	service := appdist.NewUploadService(client, folderID, output)

	fmt.Fprintf(output, "Uploading %s...\n", videoPath)

	result, err := service.Publish(ctx, videoPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Uploaded %s (%.1f MB)\n", result.FileName, float64(result.Size)/1024/1024)
	fmt.Fprintf(output, "Shareable link: %s\n", result.ShareableURL)
	return nil
}
