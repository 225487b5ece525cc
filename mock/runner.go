package mock

import (
	"context"

	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.DiffRunner = (*DiffRunner)(nil)

// DiffRunner is a mock implementation of diffnav.DiffRunner.
type DiffRunner struct {
	DiffFn func(ctx context.Context, root, revision string, flags []string, path string) (string, error)
}

func (r *DiffRunner) Diff(ctx context.Context, root, revision string, flags []string, path string) (string, error) {
	return r.DiffFn(ctx, root, revision, flags, path)
}
