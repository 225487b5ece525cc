package mock

import (
	"context"

	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.Editor = (*Editor)(nil)

// Editor is a mock implementation of diffnav.Editor.
type Editor struct {
	OpenVirtualFn func(ctx context.Context, name string) error
	OpenFileFn    func(ctx context.Context, path string, line int) error
	OpenScratchFn func(ctx context.Context, name string, content []byte, line int) error
}

func (e *Editor) OpenVirtual(ctx context.Context, name string) error {
	return e.OpenVirtualFn(ctx, name)
}

func (e *Editor) OpenFile(ctx context.Context, path string, line int) error {
	return e.OpenFileFn(ctx, path, line)
}

func (e *Editor) OpenScratch(ctx context.Context, name string, content []byte, line int) error {
	return e.OpenScratchFn(ctx, name, content, line)
}
