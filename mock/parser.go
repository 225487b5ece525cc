// Package mock provides test doubles for diffnav interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/diffnav"
)

// Compile-time interface verification.
var _ diffnav.Parser = (*Parser)(nil)

// Parser is a mock implementation of diffnav.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*diffnav.Diff, error)
}

func (p *Parser) Parse(r io.Reader) (*diffnav.Diff, error) {
	return p.ParseFn(r)
}
