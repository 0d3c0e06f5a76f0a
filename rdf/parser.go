package rdf

import (
	"io"
	"strings"
)

// Parser turns a Turtle 1.1 document into a stream of triples.
// Construction never reads from r; Parse does all of the I/O.
type Parser struct {
	r    io.Reader
	opts ParserOptions
}

// NewParser returns a Parser reading Turtle from r with the given
// options. Passing the zero ParserOptions is valid but unlikely to be
// useful — prefer DefaultParserOptions and override what you need.
func NewParser(r io.Reader, opts ParserOptions) *Parser {
	return &Parser{r: r, opts: normalizeParserOptions(opts)}
}

// Parse reads the entire document and calls sink.Emit once per triple,
// in the order the grammar derives them. A non-nil error from sink.Emit
// aborts the parse immediately and is returned, wrapped in a
// *ParseError, from Parse.
func (p *Parser) Parse(sink Sink) error {
	src, err := readAllDecoded(p.r, p.opts.MaxDocumentBytes)
	if err != nil {
		return err
	}
	drv, err := newDriver(src, p.opts, sink.Emit)
	if err != nil {
		return err
	}
	return drv.parseDocument()
}

// ParseString is a convenience wrapper for callers with the whole
// document already in memory.
func ParseString(doc string, opts ParserOptions) ([]Triple, error) {
	var sink CollectingSink
	p := NewParser(strings.NewReader(doc), opts)
	if err := p.Parse(&sink); err != nil {
		return nil, err
	}
	return sink.Triples, nil
}
