package fsx

import (
	"context"
	"io"
	"strings"
)

// FileSystem abstracts blob storage for uploaded files (resumes)
type FileSystem interface {
	// WriteFile stores data at the given path, overwriting any existing object
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFileStream opens the object at path for reading
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object at path
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from segments
	Join(segments ...string) string

	// PublicURL returns the externally reachable URL for a stored object
	PublicURL(path string) string
}

// JoinPath is the default separator-joining used by adapters
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}
