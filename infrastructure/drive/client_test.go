package drive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"vidtrim/domain/distribution"

	"google.golang.org/api/drive/v3"
)

// mockDriveService simulates the Google Drive API
type mockDriveService struct {
	files       []*drive.File
	created     *drive.File
	permissions map[string]*drive.Permission
	deleted     []string
	about       *drive.About
}

func (m *mockDriveService) ListFiles(ctx context.Context, query, fields, orderBy string) ([]*drive.File, error) {
	return m.files, nil
}

func (m *mockDriveService) CreateFile(ctx context.Context, file *drive.File, content io.Reader) (*drive.File, error) {
	io.Copy(io.Discard, content)
	m.created = file
	return &drive.File{Id: "new-1", Name: file.Name, Size: 11}, nil
}

func (m *mockDriveService) CreatePermission(ctx context.Context, fileID string, permission *drive.Permission) error {
	if m.permissions == nil {
		m.permissions = make(map[string]*drive.Permission)
	}
	m.permissions[fileID] = permission
	return nil
}

func (m *mockDriveService) DeleteFile(ctx context.Context, fileID string) error {
	m.deleted = append(m.deleted, fileID)
	return nil
}

func (m *mockDriveService) About(ctx context.Context) (*drive.About, error) {
	return m.about, nil
}

func newTestClient(t *testing.T, svc DriveService) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), OAuthConfig{}, WithDriveService(svc))
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	return client
}

func TestFindFileByName(t *testing.T) {
	svc := &mockDriveService{files: []*drive.File{
		{Id: "f-1", Name: "trimmed_recording.mp4", Size: 42, CreatedTime: "2026-08-01T10:00:00Z"},
	}}
	client := newTestClient(t, svc)

	info, err := client.FindFileByName(context.Background(), "folder-1", "trimmed_recording.mp4")
	if err != nil {
		t.Fatalf("FindFileByName() unexpected error: %v", err)
	}
	if info == nil || info.ID != "f-1" {
		t.Errorf("FindFileByName() = %+v, want file f-1", info)
	}
	if info.CreatedTime.IsZero() {
		t.Error("FindFileByName() did not parse the created time")
	}
}

func TestFindFileByName_NoMatch(t *testing.T) {
	client := newTestClient(t, &mockDriveService{})

	info, err := client.FindFileByName(context.Background(), "folder-1", "missing.mp4")
	if err != nil {
		t.Fatalf("FindFileByName() unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("FindFileByName() = %+v, want nil for no match", info)
	}
}

func TestUploadAndShare(t *testing.T) {
	svc := &mockDriveService{}
	client := newTestClient(t, svc)

	local := filepath.Join(t.TempDir(), "trimmed_recording.mp4")
	if err := os.WriteFile(local, []byte("video-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := client.UploadAndShare(context.Background(), uploadRequest(local))
	if err != nil {
		t.Fatalf("UploadAndShare() unexpected error: %v", err)
	}

	if svc.created == nil || svc.created.Parents[0] != "folder-1" {
		t.Errorf("uploaded metadata = %+v, want parent folder-1", svc.created)
	}
	perm := svc.permissions["new-1"]
	if perm == nil || perm.Type != "anyone" || perm.Role != "reader" {
		t.Errorf("permission = %+v, want anyone/reader", perm)
	}
	if result.ShareableURL != "https://drive.google.com/file/d/new-1/view?usp=sharing" {
		t.Errorf("ShareableURL = %q", result.ShareableURL)
	}
}

func TestUploadAndShare_MissingLocalFile(t *testing.T) {
	client := newTestClient(t, &mockDriveService{})

	_, err := client.UploadAndShare(context.Background(), uploadRequest("/nonexistent/clip.mp4"))
	if err == nil {
		t.Fatal("UploadAndShare() expected error for a missing local file, got nil")
	}
}

func TestGetStorageQuota(t *testing.T) {
	svc := &mockDriveService{about: &drive.About{
		StorageQuota: &drive.AboutStorageQuota{Limit: 100, Usage: 30},
	}}
	client := newTestClient(t, svc)

	info, err := client.GetStorageQuota(context.Background())
	if err != nil {
		t.Fatalf("GetStorageQuota() unexpected error: %v", err)
	}
	if info.AvailableBytes != 70 {
		t.Errorf("AvailableBytes = %d, want 70", info.AvailableBytes)
	}
	if !info.HasSpaceFor(70) || info.HasSpaceFor(71) {
		t.Errorf("HasSpaceFor boundary incorrect: %+v", info)
	}
}

func TestDeletePermanently(t *testing.T) {
	svc := &mockDriveService{}
	client := newTestClient(t, svc)

	if err := client.DeletePermanently(context.Background(), "f-9"); err != nil {
		t.Fatalf("DeletePermanently() unexpected error: %v", err)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "f-9" {
		t.Errorf("deleted = %v, want [f-9]", svc.deleted)
	}
}

func uploadRequest(local string) distribution.UploadRequest {
	return distribution.UploadRequest{
		LocalPath: local,
		FileName:  filepath.Base(local),
		FolderID:  "folder-1",
		MimeType:  distribution.MimeTypeMP4,
	}
}
