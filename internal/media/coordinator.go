// Package media keeps record media references consistent with blob-store
// content. The three steps involved in a change (local staging, blob
// upload, record commit) cannot share a transaction, so the coordinator
// fixes their order instead: a reference is only ever made to point at a
// blob that already exists, and compensation deletes run before the new
// reference becomes visible.
package media

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/backend/internal/blob"
	"github.com/inkpress/backend/internal/model"
	"github.com/inkpress/backend/internal/upload"
)

var ErrUploadFailed = errors.New("media upload failed")

type Coordinator struct {
	store  blob.Store
	logger *slog.Logger
}

func NewCoordinator(store blob.Store, logger *slog.Logger) *Coordinator {
	return &Coordinator{store: store, logger: logger}
}

// AttachNew uploads a staged file and returns the resulting reference.
// The local temp file is removed best-effort on both outcomes: after a
// successful upload the blob store owns the authoritative copy, and
// after a failed one there is nothing left to keep.
func (c *Coordinator) AttachNew(ctx context.Context, localPath, contentType string) (model.MediaRef, error) {
	ref, err := c.store.Upload(ctx, localPath, contentType)
	upload.SafeRemove(c.logger, localPath)
	if err != nil {
		c.logger.ErrorContext(ctx, "blob upload failed", "path", localPath, "error", err)
		return model.MediaRef{}, ErrUploadFailed
	}
	return model.MediaRef{ID: ref.ID, URL: ref.URL}, nil
}

// Replace uploads the successor blob for an existing reference. The
// caller must commit the record with the returned reference before
// releasing the superseded blob; if the commit fails, the caller
// releases the returned reference instead, leaving the old blob intact
// and still referenced.
func (c *Coordinator) Replace(ctx context.Context, localPath, contentType string) (model.MediaRef, error) {
	return c.AttachNew(ctx, localPath, contentType)
}

// Release deletes a blob unconditionally. A failure is reported to the
// caller but never rolls back record state; the rare orphaned blob is an
// out-of-band cleanup concern.
func (c *Coordinator) Release(ctx context.Context, ref model.MediaRef) error {
	if ref.ID == "" {
		return nil
	}
	if err := c.store.Delete(ctx, ref.ID); err != nil {
		c.logger.ErrorContext(ctx, "blob delete failed", "blobId", ref.ID, "error", err)
		return err
	}
	return nil
}

// CleanupLocal discards a staged file on failure paths that never
// reached the blob store.
func (c *Coordinator) CleanupLocal(path string) {
	upload.SafeRemove(c.logger, path)
}
