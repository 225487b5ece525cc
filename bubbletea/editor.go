package bubbletea

import (
	"context"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.Editor = (*Editor)(nil)

// OpenDiffMsg asks the model to load and display a diff buffer.
type OpenDiffMsg struct {
	Name string
}

// OpenFileMsg asks the model to display file content in a pager, with the
// cursor on the given 1-based line.
type OpenFileMsg struct {
	Title   string
	Content []byte
	Line    int
}

// Editor implements diffnav.Editor by sending messages into a running
// Bubble Tea program. Messages arriving before the program is attached
// are queued and delivered once it starts.
type Editor struct {
	mu      sync.Mutex
	program *tea.Program
	pending []tea.Msg
}

// NewEditor creates a new Editor. Attach must be called before the
// program runs for queued messages to be delivered.
func NewEditor() *Editor {
	return &Editor{}
}

// Attach binds the editor to a program and flushes queued messages.
func (e *Editor) Attach(p *tea.Program) {
	e.mu.Lock()
	e.program = p
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	// Delivery happens on its own goroutine: Send blocks until the
	// program's event loop is consuming.
	go func() {
		for _, msg := range pending {
			p.Send(msg)
		}
	}()
}

// OpenVirtual displays the diff buffer identified by name.
func (e *Editor) OpenVirtual(_ context.Context, name string) error {
	e.send(OpenDiffMsg{Name: name})
	return nil
}

// OpenFile reads the on-disk file at path and displays it with the
// cursor on the given line.
func (e *Editor) OpenFile(_ context.Context, path string, line int) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.send(OpenFileMsg{Title: path, Content: content, Line: line})
	return nil
}

// OpenScratch displays read-only content under the given name with the
// cursor on the given line.
func (e *Editor) OpenScratch(_ context.Context, name string, content []byte, line int) error {
	e.send(OpenFileMsg{Title: name, Content: content, Line: line})
	return nil
}

func (e *Editor) send(msg tea.Msg) {
	e.mu.Lock()
	p := e.program
	if p == nil {
		e.pending = append(e.pending, msg)
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	go p.Send(msg)
}
