package bubbletea

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffnav"
)

// pagerModel displays file content read-only with the target line
// highlighted and centered.
type pagerModel struct {
	title    string
	content  string
	line     int
	width    int
	renderer *lipgloss.Renderer
	styles   diffnav.Styles
	viewport viewport.Model
	ready    bool
}

func newPagerModel(msg OpenFileMsg, detector diffnav.LanguageDetector, tokenizer diffnav.Tokenizer, styles diffnav.Styles, renderer *lipgloss.Renderer) pagerModel {
	var language string
	if detector != nil {
		language = detector.DetectFromPath(msg.Title)
	}
	return pagerModel{
		title:    msg.Title,
		content:  renderFileLines(string(msg.Content), language, tokenizer, styles, msg.Line-1, renderer),
		line:     msg.Line,
		renderer: renderer,
		styles:   styles,
	}
}

func (p *pagerModel) setSize(width, height int) {
	p.width = width
	if !p.ready {
		p.viewport = viewport.New(width, height-1)
		p.ready = true
	} else {
		p.viewport.Width = width
		p.viewport.Height = height - 1
	}
	p.viewport.SetContent(p.content)

	// Center the target line.
	offset := p.line - 1 - p.viewport.Height/2
	if offset < 0 {
		offset = 0
	}
	p.viewport.SetYOffset(offset)
}

func (p pagerModel) Update(msg tea.Msg) (pagerModel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "Loading..."
	}
	titleStyle := styleFromColorPair(p.styles.FileHeader, p.renderer).Width(p.width)
	return titleStyle.Render(p.title) + "\n" + p.viewport.View()
}
