// Package bubbletea provides a terminal UI for navigable diff buffers
// using the Bubble Tea framework.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffnav"
)

// Viewer runs the terminal UI. The embedded Editor implements
// diffnav.Editor, so the controller built on top of this viewer routes
// buffer operations back into the running program.
type Viewer struct {
	editor    *Editor
	theme     diffnav.Theme
	detector  diffnav.LanguageDetector
	tokenizer diffnav.Tokenizer
	ctrl      *diffnav.View
}

// NewViewer creates a viewer. SetController must be called before Run.
func NewViewer(theme diffnav.Theme, detector diffnav.LanguageDetector, tokenizer diffnav.Tokenizer) *Viewer {
	return &Viewer{
		editor:    NewEditor(),
		theme:     theme,
		detector:  detector,
		tokenizer: tokenizer,
	}
}

// Editor returns the diffnav.Editor backed by this viewer.
func (v *Viewer) Editor() *Editor {
	return v.editor
}

// SetController binds the diff view controller used for rendering and
// jumps.
func (v *Viewer) SetController(ctrl *diffnav.View) {
	v.ctrl = ctrl
}

// Run starts the program and blocks until the user quits or the context
// is canceled.
func (v *Viewer) Run(ctx context.Context) error {
	m := NewModel(v.ctrl, v.theme, v.detector, v.tokenizer, nil)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	v.editor.Attach(p)
	_, err := p.Run()
	return err
}
