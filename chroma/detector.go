package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.LanguageDetector = (*Detector)(nil)

// Detector names languages from file paths using chroma's lexer registry.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the file at path, or an
// empty string when no lexer claims it. Matching is by base name, so
// ref:path scratch names still hit the extension globs.
func (d *Detector) DetectFromPath(path string) string {
	base := filepath.Base(path)
	if lexer := lexers.Match(base); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
