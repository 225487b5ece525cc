// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/diffnav"

// Compile-time interface verification.
var _ diffnav.Theme = (*Theme)(nil)

// Theme implements diffnav.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  diffnav.Styles
	palette diffnav.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffnav.Styles {
	return t.styles
}

// Palette returns the syntax highlighting palette for this theme.
func (t *Theme) Palette() diffnav.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds
// (Catppuccin Mocha).
func DarkTheme() *Theme {
	return &Theme{
		styles: diffnav.Styles{
			Added: diffnav.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Deleted: diffnav.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			Context: diffnav.ColorPair{
				Foreground: "#cdd6f4",
			},
			HunkHeader: diffnav.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			FileHeader: diffnav.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			LineNumber: diffnav.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Cursor: diffnav.ColorPair{
				Background: "#45475a", // Surface overlay
			},
		},
		palette: diffnav.Palette{
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds
// (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		styles: diffnav.Styles{
			Added: diffnav.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Deleted: diffnav.ColorPair{
				Foreground: "#d20f39", // Red
			},
			Context: diffnav.ColorPair{
				Foreground: "#4c4f69",
			},
			HunkHeader: diffnav.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			FileHeader: diffnav.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			LineNumber: diffnav.ColorPair{
				Foreground: "#9ca0b0", // Muted gray for light theme
			},
			Cursor: diffnav.ColorPair{
				Background: "#bcc0cc",
			},
		},
		palette: diffnav.Palette{
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}
