// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to diffnav styles.
type StyleFunc func(chromalib.TokenType) diffnav.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style
// function. Use StyleFromPalette to create one from a diffnav.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines tokenizes source code with full context, then splits
// tokens by line. Tokenizing the whole file first keeps multi-line
// constructs like block comments highlighted correctly. Returns nil if
// the language is not supported; an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]diffnav.Token {
	if source == "" {
		return [][]diffnav.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var allTokens []diffnav.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		allTokens = append(allTokens, diffnav.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return splitTokensByLine(allTokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token
// slices, splitting tokens that span multiple lines at newline boundaries.
func splitTokensByLine(tokens []diffnav.Token) [][]diffnav.Token {
	if len(tokens) == 0 {
		return [][]diffnav.Token{}
	}

	var result [][]diffnav.Token
	var currentLine []diffnav.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, diffnav.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
