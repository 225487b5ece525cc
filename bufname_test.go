package diffnav_test

import (
	"testing"

	"github.com/fwojciec/diffnav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferName_String(t *testing.T) {
	t.Parallel()

	name := diffnav.BufferName{
		Root: "/home/user/project",
		Params: []diffnav.Param{
			{Key: "commitish", Value: "v1..v2"},
			{Key: "cached", Flag: true},
			{Key: "R", Flag: true},
		},
		Fragment: "internal/server/handler.go",
	}

	assert.Equal(t,
		"diffnav:///home/user/project?commitish=v1..v2&cached&R#internal/server/handler.go",
		name.String())
}

func TestParseBufferName(t *testing.T) {
	t.Parallel()

	name, err := diffnav.ParseBufferName(
		"diffnav:///home/user/project?commitish=HEAD~3&cached#main.go")

	require.NoError(t, err)
	assert.Equal(t, "/home/user/project", name.Root)
	assert.Equal(t, "main.go", name.Fragment)
	assert.Equal(t, "HEAD~3", name.Revision())
	assert.True(t, name.Staged())
}

func TestBufferName_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   diffnav.BufferName
	}{
		{
			name: "minimal",
			in:   diffnav.BufferName{Root: "/repo", Fragment: "a.txt"},
		},
		{
			name: "revision and flags",
			in: diffnav.BufferName{
				Root: "/repo",
				Params: []diffnav.Param{
					{Key: "commitish", Value: "main..feature"},
					{Key: "b", Flag: true},
					{Key: "unified", Value: "5"},
				},
				Fragment: "pkg/sub/file.go",
			},
		},
		{
			name: "delimiters in paths",
			in: diffnav.BufferName{
				Root:     "/repo/with#hash?and=delims",
				Params:   []diffnav.Param{{Key: "commitish", Value: "topic#1"}},
				Fragment: "dir/100%/notes & ideas.txt",
			},
		},
		{
			name: "empty param value is distinct from a flag",
			in: diffnav.BufferName{
				Root:     "/repo",
				Params:   []diffnav.Param{{Key: "src-prefix", Value: ""}},
				Fragment: "a.txt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := diffnav.ParseBufferName(tt.in.String())

			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestParseBufferName_Errors(t *testing.T) {
	t.Parallel()

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		_, err := diffnav.ParseBufferName("fugitive:///repo#a.txt")

		assert.ErrorIs(t, err, diffnav.ErrUnrecognizedScheme)
	})

	t.Run("not a URI at all", func(t *testing.T) {
		t.Parallel()

		_, err := diffnav.ParseBufferName("/repo/a.txt")

		assert.ErrorIs(t, err, diffnav.ErrUnrecognizedScheme)
	})

	t.Run("missing fragment", func(t *testing.T) {
		t.Parallel()

		_, err := diffnav.ParseBufferName("diffnav:///repo?cached")

		assert.ErrorIs(t, err, diffnav.ErrMissingFragment)
	})

	t.Run("empty fragment", func(t *testing.T) {
		t.Parallel()

		_, err := diffnav.ParseBufferName("diffnav:///repo?cached#")

		assert.ErrorIs(t, err, diffnav.ErrMissingFragment)
	})
}

func TestBufferName_Flags(t *testing.T) {
	t.Parallel()

	name := diffnav.BufferName{
		Root: "/repo",
		Params: []diffnav.Param{
			{Key: "commitish", Value: "v1"},
			{Key: "cached", Flag: true},
			{Key: "R", Flag: true},
			{Key: "ignore-all-space", Flag: true},
			{Key: "unified", Value: "5"},
		},
		Fragment: "a.txt",
	}

	assert.Equal(t, []string{"-R", "--ignore-all-space", "--unified=5"}, name.Flags())
}
