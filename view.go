package diffnav

import (
	"context"
	"path/filepath"
	"strings"
)

// View glues the pure core (resolver, codec, locator) to the host's
// collaborators. All methods are stateless; every call re-derives what it
// needs from its arguments.
type View struct {
	Runner DiffRunner
	Source FileSource
	Parser Parser
	Editor Editor
}

// Open builds a buffer identifier for a diff of path under root, asks the
// editor to open a virtual buffer under that name, and returns the
// identifier. The revision expression is validated up front so that a
// malformed expression aborts before any buffer is touched; resolution
// into concrete targets is otherwise deferred to jump time.
func (v *View) Open(ctx context.Context, root, revision string, staged bool, flags []string, path string) (string, error) {
	if _, _, err := ResolveTargets(revision, staged); err != nil {
		return "", err
	}

	name := BufferName{Root: root, Fragment: path}
	if revision != "" {
		name.Params = append(name.Params, Param{Key: "commitish", Value: revision})
	}
	if staged {
		name.Params = append(name.Params, Param{Key: "cached", Flag: true})
	}
	name.Params = append(name.Params, paramsFromFlags(flags)...)

	id := name.String()
	if err := v.Editor.OpenVirtual(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

// Render resolves a buffer identifier back into a diff request, runs it,
// and returns the raw diff text for buffer population along with its
// parsed form. Rendering the same identifier twice issues the same
// request; nothing is cached between calls.
func (v *View) Render(ctx context.Context, id string) (string, *Diff, error) {
	name, err := ParseBufferName(id)
	if err != nil {
		return "", nil, err
	}

	flags := name.Flags()
	if name.Staged() {
		flags = append([]string{"--cached"}, flags...)
	}
	text, err := v.Runner.Diff(ctx, name.Root, name.Revision(), flags, name.Fragment)
	if err != nil {
		return "", nil, err
	}

	diff, err := v.Parser.Parse(strings.NewReader(text))
	if err != nil {
		return "", nil, err
	}
	return text, diff, nil
}

// JumpOld opens the old-side version of the file under the cursor.
func (v *View) JumpOld(ctx context.Context, id, text string, cursorLine int) error {
	return v.jump(ctx, id, text, cursorLine, SideOld)
}

// JumpNew opens the new-side version of the file under the cursor.
func (v *View) JumpNew(ctx context.Context, id, text string, cursorLine int) error {
	return v.jump(ctx, id, text, cursorLine, SideNew)
}

func (v *View) jump(ctx context.Context, id, text string, cursorLine int, side Side) error {
	name, err := ParseBufferName(id)
	if err != nil {
		return err
	}

	loc, ok := Locate(text, cursorLine, side)
	if !ok {
		// The cursor is not on a content line for this side. Not an error.
		return nil
	}

	oldTarget, newTarget, err := ResolveTargets(name.Revision(), name.Staged())
	if err != nil {
		return err
	}
	target := oldTarget
	if side == SideNew {
		target = newTarget
	}

	if target.Kind == TargetWorktree {
		return v.Editor.OpenFile(ctx, filepath.Join(name.Root, loc.Path), loc.Line)
	}
	if target.Kind == TargetCommit && target.Ref == "" {
		target.Ref = "HEAD"
	}
	content, err := v.Source.ReadFile(ctx, name.Root, target, loc.Path)
	if err != nil {
		return err
	}
	return v.Editor.OpenScratch(ctx, ScratchName(target, loc.Path), content, loc.Line)
}

// ScratchName names a read-only file view using git's object syntax:
// ref:path for a commit, :path for the index.
func ScratchName(t Target, path string) string {
	switch t.Kind {
	case TargetIndex:
		return ":" + path
	case TargetCommit:
		ref := t.Ref
		if ref == "" {
			ref = "HEAD"
		}
		return ref + ":" + path
	default:
		return path
	}
}

// paramsFromFlags converts git-style diff arguments into buffer-name
// params, inverting BufferName.Flags.
func paramsFromFlags(flags []string) []Param {
	var params []Param
	for _, f := range flags {
		f = strings.TrimLeft(f, "-")
		if f == "" {
			continue
		}
		if key, value, ok := strings.Cut(f, "="); ok {
			params = append(params, Param{Key: key, Value: value})
			continue
		}
		params = append(params, Param{Key: f, Flag: true})
	}
	return params
}
