package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// StoredObject describes a persisted workspace photo.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}

// Storage persists workspace photos.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// AllowedImageType reports whether the mime type is an accepted photo format.
func AllowedImageType(mimeType string) bool {
	_, ok := imageExtensions[strings.ToLower(strings.TrimSpace(mimeType))]
	return ok
}

// NewObjectKey builds a per-user storage key for an uploaded photo.
func NewObjectKey(userID, mimeType string) string {
	ext := imageExtensions[strings.ToLower(strings.TrimSpace(mimeType))]
	if ext == "" {
		ext = ".bin"
	}
	return path.Join("workspaces", userID, uuid.NewString()+ext)
}

// ErrNotFound is returned when a key has no stored object.
var ErrNotFound = fmt.Errorf("object not found")
