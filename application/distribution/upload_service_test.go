package distribution

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidtrim/domain/distribution"
)

// mockDriveClient records calls for verification
type mockDriveClient struct {
	quota       *distribution.StorageInfo
	existing    *distribution.FileInfo
	deleted     []string
	uploaded    []distribution.UploadRequest
	uploadError error
}

func (m *mockDriveClient) FindFileByName(ctx context.Context, folderID, name string) (*distribution.FileInfo, error) {
	return m.existing, nil
}

func (m *mockDriveClient) UploadAndShare(ctx context.Context, req distribution.UploadRequest) (*distribution.UploadResult, error) {
	if m.uploadError != nil {
		return nil, m.uploadError
	}
	m.uploaded = append(m.uploaded, req)
	return &distribution.UploadResult{
		FileID:       "file-1",
		FileName:     req.FileName,
		ShareableURL: "https://drive.google.com/file/d/file-1/view?usp=sharing",
		Size:         100,
	}, nil
}

func (m *mockDriveClient) GetStorageQuota(ctx context.Context) (*distribution.StorageInfo, error) {
	return m.quota, nil
}

func (m *mockDriveClient) DeletePermanently(ctx context.Context, fileID string) error {
	m.deleted = append(m.deleted, fileID)
	return nil
}

func writeVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trimmed_recording.mp4")
	if err := os.WriteFile(path, []byte("video-bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPublish_Success(t *testing.T) {
	client := &mockDriveClient{quota: &distribution.StorageInfo{AvailableBytes: 1 << 30}}
	service := NewUploadService(client, "folder-1", nil)
	path := writeVideo(t)

	result, err := service.Publish(context.Background(), path)
	if err != nil {
		t.Fatalf("Publish() unexpected error: %v", err)
	}

	if result.ShareableURL == "" {
		t.Error("Publish() returned no shareable URL")
	}
	if len(client.uploaded) != 1 {
		t.Fatalf("uploaded %d files, want 1", len(client.uploaded))
	}
	req := client.uploaded[0]
	if req.FileName != "trimmed_recording.mp4" {
		t.Errorf("uploaded FileName = %q", req.FileName)
	}
	if req.MimeType != distribution.MimeTypeMP4 {
		t.Errorf("uploaded MimeType = %q", req.MimeType)
	}
	if req.FolderID != "folder-1" {
		t.Errorf("uploaded FolderID = %q", req.FolderID)
	}
}

func TestPublish_ReplacesExistingFile(t *testing.T) {
	client := &mockDriveClient{
		quota:    &distribution.StorageInfo{AvailableBytes: 1 << 30},
		existing: &distribution.FileInfo{ID: "old-1", Name: "trimmed_recording.mp4", Size: 5 << 20},
	}
	var out bytes.Buffer
	service := NewUploadService(client, "folder-1", &out)

	if _, err := service.Publish(context.Background(), writeVideo(t)); err != nil {
		t.Fatalf("Publish() unexpected error: %v", err)
	}

	if len(client.deleted) != 1 || client.deleted[0] != "old-1" {
		t.Errorf("deleted = %v, want the existing file old-1", client.deleted)
	}
	if !strings.Contains(out.String(), "Replacing existing") {
		t.Errorf("output %q should mention the replacement", out.String())
	}
}

func TestPublish_InsufficientQuota(t *testing.T) {
	client := &mockDriveClient{quota: &distribution.StorageInfo{AvailableBytes: 1}}
	service := NewUploadService(client, "folder-1", nil)

	_, err := service.Publish(context.Background(), writeVideo(t))
	if err == nil || !strings.Contains(err.Error(), "insufficient Drive storage") {
		t.Errorf("Publish() error = %v, want insufficient storage failure", err)
	}
	if len(client.uploaded) != 0 {
		t.Errorf("uploaded %d files despite insufficient quota", len(client.uploaded))
	}
}

func TestPublish_MissingFile(t *testing.T) {
	client := &mockDriveClient{quota: &distribution.StorageInfo{AvailableBytes: 1 << 30}}
	service := NewUploadService(client, "folder-1", nil)

	_, err := service.Publish(context.Background(), "/nonexistent/clip.mp4")
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Publish() error = %v, want missing-file failure", err)
	}
}
