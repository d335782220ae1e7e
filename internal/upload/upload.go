// Package upload stages multipart files on the local filesystem before
// they are pushed to the blob store. Path construction and type filtering
// are pure functions so the rules hold regardless of which framework
// receives the request.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// MaxFileSize caps a single uploaded image at 5 MiB.
const MaxFileSize = 5 << 20

var acceptedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// Accepted reports whether the given MIME type may be uploaded.
func Accepted(mimeType string) bool {
	_, ok := acceptedTypes[mimeType]
	return ok
}

// DestinationPath builds a collision-resistant temp path for an incoming
// file, keeping the original name as a suffix.
func DestinationPath(dir, originalName string) string {
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
	return filepath.Join(dir, suffix+"-"+filepath.Base(originalName))
}

// SafeRemove deletes a staged temp file, logging and swallowing any
// failure. Every error path that staged a file goes through here before
// the error propagates.
func SafeRemove(logger *slog.Logger, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.WarnContext(context.Background(), "failed to remove staged upload",
			"path", path, "error", err)
	}
}

// EnsureDir creates the staging directory if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
