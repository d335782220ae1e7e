// Package blob abstracts the external store that owns uploaded images.
package blob

import "context"

// Ref identifies a stored object and the public URL it resolves to.
type Ref struct {
	ID  string
	URL string
}

// Store is implemented by the S3 client and by test fakes.
type Store interface {
	// Upload pushes a local file and returns its reference.
	Upload(ctx context.Context, localPath, contentType string) (Ref, error)
	// Delete removes a stored object by id.
	Delete(ctx context.Context, id string) error
}
