// Package diffnav provides domain types for presenting git diffs as
// navigable buffers.
package diffnav

import (
	"context"
	"io"
)

// TargetKind identifies which version of a file a diff side refers to.
type TargetKind int

// Comparison target kinds.
const (
	// TargetWorktree is the file as currently present on disk.
	TargetWorktree TargetKind = iota
	// TargetIndex is the file as staged, independent of disk or history.
	TargetIndex
	// TargetCommit is the file as recorded by a specific revision.
	TargetCommit
)

// Target is one side of a diff comparison. Ref is set only for
// TargetCommit; an empty Ref on a commit target means HEAD.
type Target struct {
	Kind TargetKind
	Ref  string
}

// Worktree returns a working-tree target.
func Worktree() Target { return Target{Kind: TargetWorktree} }

// Index returns a staging-area target.
func Index() Target { return Target{Kind: TargetIndex} }

// Commit returns a target for the given revision reference.
func Commit(ref string) Target { return Target{Kind: TargetCommit, Ref: ref} }

// Side selects the old or new version of a diffed file.
type Side int

// Diff sides.
const (
	SideOld Side = iota
	SideNew
)

// Location addresses a line in a source file on one side of a diff.
// Line is 1-based.
type Location struct {
	Path string
	Line int
}

// Diff represents a parsed diff containing one or more file changes.
type Diff struct {
	Files []FileDiff
}

// Stats returns the total number of added and deleted lines in the diff.
func (d *Diff) Stats() (added, deleted int) {
	for _, f := range d.Files {
		a, del := f.Stats()
		added += a
		deleted += del
	}
	return added, deleted
}

// FileDiff represents changes to a single file.
type FileDiff struct {
	OldPath   string // empty for new files
	NewPath   string // empty for deleted files
	Operation FileOp
	IsBinary  bool // binary files have no hunks
	Hunks     []Hunk
}

// Stats returns the number of added and deleted lines in the file.
func (f FileDiff) Stats() (added, deleted int) {
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case LineAdded:
				added++
			case LineDeleted:
				deleted++
			}
		}
	}
	return added, deleted
}

// FileOp represents the type of operation performed on a file.
type FileOp int

// File operation types.
const (
	FileModified FileOp = iota
	FileAdded
	FileDeleted
	FileRenamed
	FileCopied
)

// Hunk represents a contiguous block of changes within a file.
type Hunk struct {
	OldStart int    // From @@ -X,...
	OldCount int    // From @@ -X,Y ...
	NewStart int    // From @@ ...,+X
	NewCount int    // From @@ ...,+X,Y
	Section  string // Optional function name after @@ ... @@
	Lines    []Line
}

// Line represents a single line within a hunk.
type Line struct {
	Type       LineType
	Content    string
	OldLineNum int // 0 if line is Added
	NewLineNum int // 0 if line is Deleted
}

// LineType represents the type of a diff line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// DiffRunner produces raw diff text by invoking the version-control system.
type DiffRunner interface {
	// Diff returns the unified diff for path in the repository at root,
	// comparing according to revision (possibly empty) and flags.
	Diff(ctx context.Context, root, revision string, flags []string, path string) (string, error)
}

// FileSource reads the content of a file as seen by a comparison target.
type FileSource interface {
	// ReadFile returns the content of path in the repository at root for
	// the given target: disk content for a worktree target, staged content
	// for an index target, committed content for a commit target.
	ReadFile(ctx context.Context, root string, target Target, path string) ([]byte, error)
}

// Parser parses unified diff content into structured form.
type Parser interface {
	Parse(r io.Reader) (*Diff, error)
}

// Editor abstracts the buffer operations this package asks of its host.
type Editor interface {
	// OpenVirtual creates (or focuses) a virtual buffer identified by name.
	// The host is expected to call back into View.Render to populate it.
	OpenVirtual(ctx context.Context, name string) error
	// OpenFile opens the on-disk file at path in an editable buffer and
	// places the cursor on the given 1-based line.
	OpenFile(ctx context.Context, path string, line int) error
	// OpenScratch opens a read-only buffer named name with the given
	// content and places the cursor on the given 1-based line.
	OpenScratch(ctx context.Context, name string, content []byte, line int) error
}
