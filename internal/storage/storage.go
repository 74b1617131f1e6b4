// Package storage uploads admin images to object storage and resolves the
// public URLs that get persisted on the owning records.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Storage interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// NewKey builds a unique object key from the original filename:
// unix-millis timestamp, a random suffix and the original extension.
func NewKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
