package storage

import (
	"context"
	"io"
)

// Uploader archives generated export files. Implementations return the
// stored object path.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}
