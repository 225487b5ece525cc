package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffnav"
)

// diffLoadedMsg carries the result of rendering a diff buffer.
type diffLoadedMsg struct {
	id   string
	text string
	diff *diffnav.Diff
}

// errMsg carries an error to display in the status area.
type errMsg struct {
	err error
}

// Model is the Bubble Tea model for the diff buffer and its file views.
type Model struct {
	ctrl      *diffnav.View
	styles    diffnav.Styles
	detector  diffnav.LanguageDetector
	tokenizer diffnav.Tokenizer
	keys      KeyMap
	renderer  *lipgloss.Renderer

	id     string
	text   string
	lines  []string
	diff   *diffnav.Diff
	cursor int
	err    error

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	pager *pagerModel
}

// NewModel creates a model wired to the given controller.
func NewModel(ctrl *diffnav.View, theme diffnav.Theme, detector diffnav.LanguageDetector, tokenizer diffnav.Tokenizer, renderer *lipgloss.Renderer) Model {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Model{
		ctrl:      ctrl,
		styles:    theme.Styles(),
		detector:  detector,
		tokenizer: tokenizer,
		keys:      DefaultKeyMap(),
		renderer:  renderer,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenDiffMsg:
		return m, m.loadDiffCmd(msg.Name)

	case OpenFileMsg:
		pager := newPagerModel(msg, m.detector, m.tokenizer, m.styles, m.renderer)
		pager.setSize(m.width, m.height)
		m.pager = &pager
		return m, nil

	case diffLoadedMsg:
		m.id = msg.id
		m.text = msg.text
		m.lines = strings.Split(strings.TrimSuffix(msg.text, "\n"), "\n")
		m.diff = msg.diff
		m.cursor = 0
		m.err = nil
		if m.ready {
			m.refreshContent()
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.refreshContent()
		if m.pager != nil {
			m.pager.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if m.pager != nil {
			if key.Matches(msg, m.keys.Close) {
				m.pager = nil
				return m, nil
			}
			var cmd tea.Cmd
			*m.pager, cmd = m.pager.Update(msg)
			return m, cmd
		}
		return m.updateDiffKeys(msg)
	}

	return m, nil
}

func (m Model) updateDiffKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveCursor(-m.viewport.Height / 2)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveCursor(m.viewport.Height / 2)
	case key.Matches(msg, m.keys.GotoTop):
		m.moveCursor(-len(m.lines))
	case key.Matches(msg, m.keys.GotoBottom):
		m.moveCursor(len(m.lines))
	case key.Matches(msg, m.keys.JumpOld):
		return m, m.jumpCmd(diffnav.SideOld)
	case key.Matches(msg, m.keys.JumpNew):
		return m, m.jumpCmd(diffnav.SideNew)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.lines) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.lines)-1 {
		m.cursor = len(m.lines) - 1
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderDiffLines(m.lines, m.cursor, m.styles, m.renderer))
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) loadDiffCmd(id string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		text, diff, err := ctrl.Render(context.Background(), id)
		if err != nil {
			return errMsg{err: err}
		}
		return diffLoadedMsg{id: id, text: text, diff: diff}
	}
}

func (m Model) jumpCmd(side diffnav.Side) tea.Cmd {
	ctrl, id, text, cursor := m.ctrl, m.id, m.text, m.cursor
	return func() tea.Msg {
		var err error
		if side == diffnav.SideOld {
			err = ctrl.JumpOld(context.Background(), id, text, cursor)
		} else {
			err = ctrl.JumpNew(context.Background(), id, text, cursor)
		}
		if err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.pager != nil {
		return m.pager.View()
	}
	if !m.ready {
		return "Loading..."
	}
	return m.titleBar() + "\n" + m.viewport.View()
}

func (m Model) titleBar() string {
	style := styleFromColorPair(m.styles.FileHeader, m.renderer).Width(m.width)
	if m.err != nil {
		return style.Render("error: " + m.err.Error())
	}
	if m.id == "" {
		return style.Render("diffnav")
	}

	name, err := diffnav.ParseBufferName(m.id)
	if err != nil {
		return style.Render(m.id)
	}
	title := name.Fragment
	if title == "" {
		title = name.Root
	}
	if rev := name.Revision(); rev != "" {
		title += " (" + rev + ")"
	}
	if name.Staged() {
		title += " [staged]"
	}
	if m.diff != nil {
		added, deleted := m.diff.Stats()
		title += fmt.Sprintf("  +%d -%d", added, deleted)
	}
	return style.Render(title)
}
