package chroma_test

import (
	"testing"

	"github.com/fwojciec/diffnav"
	"github.com/fwojciec/diffnav/chroma"
	"github.com/fwojciec/diffnav/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenizer(t *testing.T) *chroma.Tokenizer {
	t.Helper()
	tok, err := chroma.NewTokenizer(chroma.StyleFromPalette(lipgloss.DarkTheme().Palette()))
	require.NoError(t, err)
	return tok
}

func TestNewTokenizer_NilStyleFunc(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)

	assert.Error(t, err)
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	t.Run("splits tokens per source line", func(t *testing.T) {
		t.Parallel()

		tok := testTokenizer(t)
		lines := tok.TokenizeLines("Go", "package main\n\nfunc main() {}\n")

		require.NotEmpty(t, lines)

		var first string
		for _, tk := range lines[0] {
			first += tk.Text
		}
		assert.Equal(t, "package main", first)
	})

	t.Run("keywords carry a palette color", func(t *testing.T) {
		t.Parallel()

		tok := testTokenizer(t)
		lines := tok.TokenizeLines("Go", "package main\n")

		require.NotEmpty(t, lines)
		var found bool
		for _, tk := range lines[0] {
			if tk.Text == "package" {
				found = true
				assert.NotEmpty(t, tk.Style.Foreground)
				assert.True(t, tk.Style.Bold)
			}
		}
		assert.True(t, found, "should find the 'package' keyword token")
	})

	t.Run("multi-line comments stay highlighted across lines", func(t *testing.T) {
		t.Parallel()

		tok := testTokenizer(t)
		lines := tok.TokenizeLines("Go", "/* one\ntwo */\npackage main\n")

		require.GreaterOrEqual(t, len(lines), 2)
		require.NotEmpty(t, lines[0])
		require.NotEmpty(t, lines[1])
		assert.Equal(t, lines[0][0].Style, lines[1][0].Style)
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		tok := testTokenizer(t)

		assert.Nil(t, tok.TokenizeLines("nonexistent-language-xyz", "some code"))
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		tok := testTokenizer(t)

		assert.Empty(t, tok.TokenizeLines("Go", ""))
	})
}

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	d := chroma.NewDetector()

	assert.Equal(t, "Go", d.DetectFromPath("internal/server/main.go"))
	assert.Equal(t, "Python", d.DetectFromPath("scripts/run.py"))
	assert.Empty(t, d.DetectFromPath("no-extension-here"))
}

func TestStyleFromPalette_DefaultIsUnstyled(t *testing.T) {
	t.Parallel()

	fn := chroma.StyleFromPalette(diffnav.Palette{Keyword: "#ff0000"})

	assert.Equal(t, diffnav.Style{}, fn(0))
}
