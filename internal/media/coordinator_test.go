package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkpress/backend/internal/blob"
	"github.com/inkpress/backend/internal/model"
)

type fakeStore struct {
	uploadErr error
	deleteErr error

	uploads []string
	deletes []string
}

func (s *fakeStore) Upload(ctx context.Context, localPath, contentType string) (blob.Ref, error) {
	if s.uploadErr != nil {
		return blob.Ref{}, s.uploadErr
	}
	s.uploads = append(s.uploads, localPath)
	return blob.Ref{ID: "key-1", URL: "https://cdn.example.com/key-1"}, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, id)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stagedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staged.png")
	if err := os.WriteFile(path, []byte("png bytes"), 0o644); err != nil {
		t.Fatalf("staging file: %v", err)
	}
	return path
}

func TestAttachNewRemovesLocalOnSuccess(t *testing.T) {
	store := &fakeStore{}
	coord := NewCoordinator(store, discardLogger())
	path := stagedFile(t)

	ref, err := coord.AttachNew(context.Background(), path, "image/png")
	if err != nil {
		t.Fatalf("AttachNew: %v", err)
	}
	if ref.ID != "key-1" || ref.URL == "" {
		t.Fatalf("unexpected ref %+v", ref)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("temp file should be removed after upload")
	}
}

func TestAttachNewRemovesLocalOnFailure(t *testing.T) {
	store := &fakeStore{uploadErr: errors.New("boom")}
	coord := NewCoordinator(store, discardLogger())
	path := stagedFile(t)

	_, err := coord.AttachNew(context.Background(), path, "image/png")
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("temp file should be removed after failed upload")
	}
}

func TestReleaseDeletesBlob(t *testing.T) {
	store := &fakeStore{}
	coord := NewCoordinator(store, discardLogger())

	err := coord.Release(context.Background(), model.MediaRef{ID: "key-1"})
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if len(store.deletes) != 1 || store.deletes[0] != "key-1" {
		t.Fatalf("expected one delete of key-1, got %v", store.deletes)
	}
}

func TestReleaseEmptyRefIsNoop(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("must not be called")}
	coord := NewCoordinator(store, discardLogger())

	if err := coord.Release(context.Background(), model.MediaRef{}); err != nil {
		t.Fatalf("Release of empty ref: %v", err)
	}
}

func TestReleaseReportsDeleteFailure(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("boom")}
	coord := NewCoordinator(store, discardLogger())

	if err := coord.Release(context.Background(), model.MediaRef{ID: "key-1"}); err == nil {
		t.Fatalf("expected delete failure to be reported")
	}
}

func TestCleanupLocalMissingFile(t *testing.T) {
	coord := NewCoordinator(&fakeStore{}, discardLogger())

	// Must not panic or escalate.
	coord.CleanupLocal("")
	coord.CleanupLocal(filepath.Join(t.TempDir(), "never-existed"))
}
