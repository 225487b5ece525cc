// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.Parser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns the parsed result.
func (p *Parser) Parse(r io.Reader) (*diffnav.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &diffnav.Diff{
		Files: make([]diffnav.FileDiff, 0, len(files)),
	}
	for _, f := range files {
		result.Files = append(result.Files, convertFile(f))
	}
	return result, nil
}

func convertFile(f *gitdiff.File) diffnav.FileDiff {
	fd := diffnav.FileDiff{
		// go-gitdiff strips the a/ and b/ prefixes.
		OldPath:  f.OldName,
		NewPath:  f.NewName,
		IsBinary: f.IsBinary,
	}

	switch {
	case f.IsNew:
		fd.Operation = diffnav.FileAdded
	case f.IsDelete:
		fd.Operation = diffnav.FileDeleted
	case f.IsRename:
		fd.Operation = diffnav.FileRenamed
	case f.IsCopy:
		fd.Operation = diffnav.FileCopied
	default:
		fd.Operation = diffnav.FileModified
	}

	fd.Hunks = make([]diffnav.Hunk, 0, len(f.TextFragments))
	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, convertFragment(frag))
	}
	return fd
}

func convertFragment(frag *gitdiff.TextFragment) diffnav.Hunk {
	hunk := diffnav.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
	}

	// Line numbering mirrors the locator's forward scan: context advances
	// both counters, a removal only the old one, an addition only the new.
	oldLineNum := int(frag.OldPosition)
	newLineNum := int(frag.NewPosition)

	for _, l := range frag.Lines {
		line := diffnav.Line{Content: l.Line}

		switch l.Op {
		case gitdiff.OpContext:
			line.Type = diffnav.LineContext
			line.OldLineNum = oldLineNum
			line.NewLineNum = newLineNum
			oldLineNum++
			newLineNum++
		case gitdiff.OpAdd:
			line.Type = diffnav.LineAdded
			line.NewLineNum = newLineNum
			newLineNum++
		case gitdiff.OpDelete:
			line.Type = diffnav.LineDeleted
			line.OldLineNum = oldLineNum
			oldLineNum++
		}

		hunk.Lines = append(hunk.Lines, line)
	}
	return hunk
}
