// Package gogit implements file content access using go-git, without
// shelling out to the git executable.
package gogit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/diffnav"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Compile-time interface verification.
var _ diffnav.FileSource = (*Source)(nil)

// Source reads file content at comparison targets via go-git.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// ReadFile returns the content of path in the repository at root as seen
// by the given comparison target.
func (s *Source) ReadFile(_ context.Context, root string, target diffnav.Target, path string) ([]byte, error) {
	if target.Kind == diffnav.TargetWorktree {
		return os.ReadFile(filepath.Join(root, path))
	}

	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", root, err)
	}

	if target.Kind == diffnav.TargetIndex {
		return readIndex(repo, path)
	}
	return readCommit(repo, target.Ref, path)
}

// readIndex returns the staged content of path.
func readIndex(repo *gogit.Repository, path string) ([]byte, error) {
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	entry, err := idx.Entry(path)
	if err != nil {
		return nil, fmt.Errorf("looking up %s in index: %w", path, err)
	}
	blob, err := repo.BlobObject(entry.Hash)
	if err != nil {
		return nil, fmt.Errorf("reading staged blob for %s: %w", path, err)
	}
	r, err := blob.Reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// readCommit returns the content of path as of ref, defaulting an empty
// ref to HEAD.
func readCommit(repo *gogit.Repository, ref, path string) ([]byte, error) {
	if ref == "" {
		ref = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", ref, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	file, err := commit.File(path)
	if err != nil {
		return nil, fmt.Errorf("looking up %s at %s: %w", path, ref, err)
	}
	content, err := file.Contents()
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}
