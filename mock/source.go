package mock

import (
	"context"

	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.FileSource = (*FileSource)(nil)

// FileSource is a mock implementation of diffnav.FileSource.
type FileSource struct {
	ReadFileFn func(ctx context.Context, root string, target diffnav.Target, path string) ([]byte, error)
}

func (s *FileSource) ReadFile(ctx context.Context, root string, target diffnav.Target, path string) ([]byte, error) {
	return s.ReadFileFn(ctx, root, target, path)
}
