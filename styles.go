package diffnav

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the visual elements of a diff buffer.
type Styles struct {
	Added      ColorPair // Added lines (+)
	Deleted    ColorPair // Deleted lines (-)
	Context    ColorPair // Unchanged lines
	HunkHeader ColorPair // Hunk headers (@@ ... @@)
	FileHeader ColorPair // File headers (diff --git, ---, +++)
	LineNumber ColorPair // Line numbers in the gutter
	Cursor     ColorPair // The line the cursor is on
}

// Palette holds the semantic colors used for syntax highlighting in file
// views opened by a jump.
type Palette struct {
	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string
}

// Theme provides styles and a syntax palette for rendering.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}

// Style describes how a syntax token is rendered.
type Style struct {
	Foreground string
	Bold       bool
}

// Token is a run of text with a single style.
type Token struct {
	Text  string
	Style Style
}

// LanguageDetector detects programming languages from file paths.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path, or an
	// empty string if the language cannot be determined.
	DetectFromPath(path string) string
}

// Tokenizer splits source code into per-line syntax-highlighted tokens.
type Tokenizer interface {
	// TokenizeLines returns one token slice per source line, or nil if
	// the language is not supported.
	TokenizeLines(language, source string) [][]Token
}
