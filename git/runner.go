// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var (
	_ diffnav.DiffRunner = (*Runner)(nil)
	_ diffnav.FileSource = (*Runner)(nil)
)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Diff returns the unified diff for path in the repository at root. An
// empty revision diffs against the default base; flags are passed through
// to git diff verbatim.
func (r *Runner) Diff(ctx context.Context, root, revision string, flags []string, path string) (string, error) {
	args := []string{"-C", root, "diff", "--no-color", "--no-ext-diff"}
	args = append(args, flags...)
	if revision != "" {
		args = append(args, strings.Fields(revision)...)
	}
	args = append(args, "--", path)
	return run(ctx, "git diff", args)
}

// ReadFile returns the content of path for the given comparison target:
// the on-disk file for a worktree target, git show :path for the index,
// git show ref:path for a commit.
func (r *Runner) ReadFile(ctx context.Context, root string, target diffnav.Target, path string) ([]byte, error) {
	switch target.Kind {
	case diffnav.TargetWorktree:
		return os.ReadFile(filepath.Join(root, path))
	case diffnav.TargetIndex:
		out, err := run(ctx, "git show", []string{"-C", root, "show", ":" + path})
		return []byte(out), err
	default:
		ref := target.Ref
		if ref == "" {
			ref = "HEAD"
		}
		out, err := run(ctx, "git show", []string{"-C", root, "show", ref + ":" + path})
		return []byte(out), err
	}
}

// CurrentBranch returns the name of the branch checked out at root.
func (r *Runner) CurrentBranch(ctx context.Context, root string) (string, error) {
	out, err := run(ctx, "git rev-parse", []string{"-C", root, "rev-parse", "--abbrev-ref", "HEAD"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Root returns the repository root containing dir.
func (r *Runner) Root(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, "git rev-parse", []string{"-C", dir, "rev-parse", "--show-toplevel"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// run executes git with the given arguments, surfacing stderr on failure.
func run(ctx context.Context, what string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s failed: %s", what, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s failed: %w", what, err)
	}
	return string(output), nil
}
