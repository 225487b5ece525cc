package diffnav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRevision indicates a revision expression that names more than
// two revisions or uses an unsupported range form.
var ErrInvalidRevision = errors.New("invalid revision expression")

// ResolveTargets maps a revision expression and a staged flag to the two
// comparison targets of a diff. An empty expression means the default
// comparison implied by staged: index vs worktree for unstaged changes,
// HEAD vs index for staged ones. A single revision is always the old side,
// compared against the index or worktree depending on staged. A two-sided
// expression (r1..r2 or two whitespace-separated revisions) overrides the
// staged flag entirely.
func ResolveTargets(expr string, staged bool) (old, new Target, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		if staged {
			return Commit("HEAD"), Index(), nil
		}
		return Index(), Worktree(), nil
	}

	tokens := strings.Fields(expr)
	if len(tokens) > 2 {
		return Target{}, Target{}, fmt.Errorf("%w: %q names more than two revisions", ErrInvalidRevision, expr)
	}
	if len(tokens) == 2 {
		if strings.Contains(tokens[0], "..") || strings.Contains(tokens[1], "..") {
			return Target{}, Target{}, fmt.Errorf("%w: %q mixes range and pair forms", ErrInvalidRevision, expr)
		}
		return Commit(tokens[0]), Commit(tokens[1]), nil
	}

	token := tokens[0]
	if strings.Contains(token, "...") {
		// Merge-base ranges are not supported; fail rather than guess.
		return Target{}, Target{}, fmt.Errorf("%w: %q uses the unsupported three-dot form", ErrInvalidRevision, expr)
	}
	if r1, r2, ok := strings.Cut(token, ".."); ok {
		if strings.Contains(r2, "..") {
			return Target{}, Target{}, fmt.Errorf("%w: %q names more than two revisions", ErrInvalidRevision, expr)
		}
		// Empty range sides are legal; the controller defaults them to HEAD.
		return Commit(r1), Commit(r2), nil
	}

	if staged {
		return Commit(token), Index(), nil
	}
	return Commit(token), Worktree(), nil
}
