package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffnav"
)

// tabWidth is the number of columns per tab stop.
const tabWidth = 8

// gutterWidth is the width of the line number column in file views.
const gutterWidth = 5

// expandTabs replaces tabs in s with spaces against tabWidth-column stops.
// startCol is the screen column where s begins; the gutter and any
// preceding tokens shift where the first stop lands.
func expandTabs(s string, startCol int) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + tabWidth)
	col := startCol
	for _, r := range s {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		sb.WriteRune(r)
		col += lipgloss.Width(string(r))
	}
	return sb.String()
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// Empty color strings are skipped (terminal default).
func styleFromColorPair(pair diffnav.ColorPair, r *lipgloss.Renderer) lipgloss.Style {
	style := r.NewStyle()
	if pair.Foreground != "" {
		style = style.Foreground(lipgloss.Color(pair.Foreground))
	}
	if pair.Background != "" {
		style = style.Background(lipgloss.Color(pair.Background))
	}
	return style
}

// renderDiffLines styles raw diff lines for display, highlighting the
// cursor line. The text itself is left verbatim so that line positions
// stay aligned with the locator's view of the buffer.
func renderDiffLines(lines []string, cursor int, styles diffnav.Styles, r *lipgloss.Renderer) string {
	fileHeaderStyle := styleFromColorPair(styles.FileHeader, r)
	hunkHeaderStyle := styleFromColorPair(styles.HunkHeader, r)
	addedStyle := styleFromColorPair(styles.Added, r)
	deletedStyle := styleFromColorPair(styles.Deleted, r)
	contextStyle := styleFromColorPair(styles.Context, r)

	var sb strings.Builder
	for i, line := range lines {
		var style lipgloss.Style
		switch {
		case strings.HasPrefix(line, "diff --git"),
			strings.HasPrefix(line, "index "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "),
			strings.HasPrefix(line, "new file"),
			strings.HasPrefix(line, "deleted file"),
			strings.HasPrefix(line, "similarity "),
			strings.HasPrefix(line, "rename "),
			strings.HasPrefix(line, "copy "):
			style = fileHeaderStyle
		case strings.HasPrefix(line, "@@"):
			style = hunkHeaderStyle
		case strings.HasPrefix(line, "+"):
			style = addedStyle
		case strings.HasPrefix(line, "-"):
			style = deletedStyle
		default:
			style = contextStyle
		}
		if i == cursor && styles.Cursor.Background != "" {
			style = style.Background(lipgloss.Color(styles.Cursor.Background))
		}
		sb.WriteString(style.Render(expandTabs(line, 0)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderFileLines styles file content for a pager view with a line number
// gutter, syntax highlighting when available, and the cursor line
// highlighted.
func renderFileLines(content, language string, tokenizer diffnav.Tokenizer, styles diffnav.Styles, cursor int, r *lipgloss.Renderer) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	var tokenLines [][]diffnav.Token
	if tokenizer != nil && language != "" {
		tokenLines = tokenizer.TokenizeLines(language, content)
	}

	lineNumStyle := styleFromColorPair(styles.LineNumber, r)
	plainStyle := styleFromColorPair(styles.Context, r)
	cursorStyle := styleFromColorPair(styles.Cursor, r)

	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(lineNumStyle.Render(fmt.Sprintf("%*d ", gutterWidth-1, i+1)))

		switch {
		case tokenLines != nil && i < len(tokenLines):
			col := gutterWidth
			for _, tok := range tokenLines[i] {
				style := r.NewStyle()
				if tok.Style.Foreground != "" {
					style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
				}
				if tok.Style.Bold {
					style = style.Bold(true)
				}
				if i == cursor {
					style = style.Background(lipgloss.Color(styles.Cursor.Background))
				}
				text := expandTabs(tok.Text, col)
				col += lipgloss.Width(text)
				sb.WriteString(style.Render(text))
			}
		case i == cursor:
			sb.WriteString(cursorStyle.Render(expandTabs(line, gutterWidth)))
		default:
			sb.WriteString(plainStyle.Render(expandTabs(line, gutterWidth)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
