package distribution

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vidtrim/domain/distribution"
)

// UploadService publishes trimmed video artifacts to Google Drive
type UploadService struct {
	driveClient distribution.DriveClient
	folderID    string
	output      io.Writer
}

// NewUploadService creates a new upload service
func NewUploadService(client distribution.DriveClient, folderID string, output io.Writer) *UploadService {
	if output == nil {
		output = io.Discard
	}
	return &UploadService{
		driveClient: client,
		folderID:    folderID,
		output:      output,
	}
}

// Publish uploads a trimmed video to Google Drive and sets public sharing.
// An existing file with the same name is replaced.
func (s *UploadService) Publish(ctx context.Context, videoPath string) (*distribution.UploadResult, error) {
	info, err := os.Stat(videoPath)
	if err != nil {
		return nil, fmt.Errorf("file does not exist: %s", videoPath)
	}

	quota, err := s.driveClient.GetStorageQuota(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check storage quota: %w", err)
	}
	if !quota.HasSpaceFor(info.Size()) {
		return nil, fmt.Errorf("insufficient Drive storage: need %d bytes but only %d available",
			info.Size(), quota.AvailableBytes)
	}

	fileName := filepath.Base(videoPath)

	// Check for existing file with same name and delete if found
	existing, err := s.driveClient.FindFileByName(ctx, s.folderID, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing file: %w", err)
	}
	if existing != nil {
		fmt.Fprintf(s.output, "Replacing existing %s (%.1f MB)\n", existing.Name, float64(existing.Size)/1024/1024)
		if err := s.driveClient.DeletePermanently(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete existing file %s: %w", existing.Name, err)
		}
	}

	req := distribution.UploadRequest{
		LocalPath: videoPath,
		FileName:  fileName,
		FolderID:  s.folderID,
		MimeType:  distribution.MimeTypeMP4,
	}

	result, err := s.driveClient.UploadAndShare(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload and share %s: %w", fileName, err)
	}

	return result, nil
}
