package bubbletea_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/diffnav"
	"github.com/fwojciec/diffnav/bubbletea"
	lipglossx "github.com/fwojciec/diffnav/lipgloss"
	"github.com/fwojciec/diffnav/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// Compile-time check that Editor satisfies the domain interface.
var _ diffnav.Editor = (*bubbletea.Editor)(nil)

const modelDiffText = `diff --git a/foo.txt b/foo.txt
index 0000000..1111111 100644
--- a/foo.txt
+++ b/foo.txt
@@ -1,2 +1,3 @@
 one
+two
 three
`

func testController(editor diffnav.Editor) *diffnav.View {
	return &diffnav.View{
		Runner: &mock.DiffRunner{
			DiffFn: func(_ context.Context, _, _ string, _ []string, _ string) (string, error) {
				return modelDiffText, nil
			},
		},
		Source: &mock.FileSource{
			ReadFileFn: func(_ context.Context, _ string, _ diffnav.Target, _ string) ([]byte, error) {
				return []byte("one\nthree\n"), nil
			},
		},
		Parser: &mock.Parser{
			ParseFn: func(_ io.Reader) (*diffnav.Diff, error) {
				return &diffnav.Diff{}, nil
			},
		},
		Editor: editor,
	}
}

func newTestModel(ctrl *diffnav.View) bubbletea.Model {
	return bubbletea.NewModel(ctrl, lipglossx.DefaultTheme(), nil, nil, trueColorRenderer())
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := newTestModel(testController(&mock.Editor{}))

	assert.Contains(t, m.View(), "Loading")
}

func TestModel_DisplaysDiff(t *testing.T) {
	t.Parallel()

	m := newTestModel(testController(&mock.Editor{}))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	id := diffnav.BufferName{Root: "/repo", Fragment: "foo.txt"}.String()
	tm.Send(bubbletea.OpenDiffMsg{Name: id})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("+two"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_JumpReachesEditor(t *testing.T) {
	t.Parallel()

	type openCall struct {
		path string
		line int
	}
	opened := make(chan openCall, 1)
	editor := &mock.Editor{
		OpenFileFn: func(_ context.Context, path string, line int) error {
			opened <- openCall{path: path, line: line}
			return nil
		},
	}

	m := newTestModel(testController(editor))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	id := diffnav.BufferName{Root: "/repo", Fragment: "foo.txt"}.String()
	tm.Send(bubbletea.OpenDiffMsg{Name: id})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("+two"))
	})

	// The added line is the seventh line of the buffer.
	for i := 0; i < 6; i++ {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case call := <-opened:
		assert.Equal(t, "/repo/foo.txt", call.path)
		assert.Equal(t, 2, call.line)
	case <-time.After(2 * time.Second):
		t.Fatal("jump never reached the editor")
	}

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_PagerOpensAndCloses(t *testing.T) {
	t.Parallel()

	m := newTestModel(testController(&mock.Editor{}))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(bubbletea.OpenFileMsg{
		Title:   ":foo.txt",
		Content: []byte("one\ntwo\nthree\n"),
		Line:    2,
	})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte(":foo.txt"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_ShowsRunnerError(t *testing.T) {
	t.Parallel()

	ctrl := testController(&mock.Editor{})
	ctrl.Runner = &mock.DiffRunner{
		DiffFn: func(_ context.Context, _, _ string, _ []string, _ string) (string, error) {
			return "", errors.New("git exploded")
		},
	}

	m := newTestModel(ctrl)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	id := diffnav.BufferName{Root: "/repo", Fragment: "foo.txt"}.String()
	tm.Send(bubbletea.OpenDiffMsg{Name: id})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("git exploded"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestEditor_OpenFileMissing(t *testing.T) {
	t.Parallel()

	editor := bubbletea.NewEditor()
	err := editor.OpenFile(context.Background(), "/does/not/exist", 1)

	require.Error(t, err)
}
