package gogit_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/diffnav"
	"github.com/fwojciec/diffnav/gogit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository with one committed file.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "notes.txt", "committed\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
	return string(output)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestSource_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("worktree target reads disk content", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		writeFile(t, dir, "notes.txt", "dirty\n")

		src := gogit.NewSource()
		content, err := src.ReadFile(context.Background(), dir, diffnav.Worktree(), "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "dirty\n", string(content))
	})

	t.Run("index target reads staged content", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		writeFile(t, dir, "notes.txt", "staged\n")
		runGit(t, dir, "add", "notes.txt")
		writeFile(t, dir, "notes.txt", "dirty\n")

		src := gogit.NewSource()
		content, err := src.ReadFile(context.Background(), dir, diffnav.Index(), "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "staged\n", string(content))
	})

	t.Run("commit target reads committed content", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		writeFile(t, dir, "notes.txt", "second\n")
		runGit(t, dir, "add", ".")
		runGit(t, dir, "commit", "-m", "Second commit")

		src := gogit.NewSource()
		content, err := src.ReadFile(context.Background(), dir, diffnav.Commit("HEAD~1"), "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "committed\n", string(content))
	})

	t.Run("empty commit ref defaults to HEAD", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		src := gogit.NewSource()
		content, err := src.ReadFile(context.Background(), dir, diffnav.Commit(""), "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "committed\n", string(content))
	})

	t.Run("resolves from a subdirectory via DetectDotGit", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.MkdirAll(sub, 0755))

		src := gogit.NewSource()
		content, err := src.ReadFile(context.Background(), sub, diffnav.Commit("HEAD"), "notes.txt")

		require.NoError(t, err)
		assert.Equal(t, "committed\n", string(content))
	})

	t.Run("unknown revision fails", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		src := gogit.NewSource()
		_, err := src.ReadFile(context.Background(), dir, diffnav.Commit("no-such-rev"), "notes.txt")

		assert.Error(t, err)
	})

	t.Run("file missing from commit fails", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		src := gogit.NewSource()
		_, err := src.ReadFile(context.Background(), dir, diffnav.Commit("HEAD"), "absent.txt")

		assert.Error(t, err)
	})
}
