package rdf

import "context"

const (
	// DefaultMaxTokenBytes bounds a single token's lexeme, grounded on
	// the teacher's DefaultMaxLineBytes pattern (errors.go/parse_utils.go)
	// but measured per-token rather than per-line since this lexer is a
	// true streaming tokenizer.
	DefaultMaxTokenBytes = 1 << 20 // 1 MiB

	// DefaultMaxDocumentBytes bounds total input consumed across a
	// single parse; zero in ParserOptions means unlimited.
	DefaultMaxDocumentBytes = 0
)

// ParserOptions configures a Parser. NewParser fills in a nil Prefixes
// map, a zero MaxTokenBytes and a nil Context, so the zero value is
// usable; DefaultParserOptions returns those defaults explicitly.
type ParserOptions struct {
	// BaseIRI seeds the base IRI in scope before any @base/BASE
	// directive is seen. Empty means relative IRIs are an error until
	// a directive establishes one.
	BaseIRI string

	// Prefixes seeds the prefix-to-namespace map before any @prefix/
	// PREFIX directive is seen. A later directive for the same prefix
	// rebinds it for the remainder of the document (prefix bindings
	// are document-global in Turtle, not block-scoped).
	Prefixes map[string]string

	// Validate turns on extra structural checks (language tag shape,
	// numeric literal range) beyond what the grammar alone enforces.
	Validate bool

	// Canonicalize rewrites INTEGER/DECIMAL/DOUBLE/BooleanLiteral
	// lexical forms to their XSD canonical form (canon.go) before
	// emitting the Literal.
	Canonicalize bool

	// MaxTokenBytes caps the size of a single IRI or string-literal
	// token; 0 uses DefaultMaxTokenBytes. Negative disables the limit.
	// Other token kinds are not checked against it.
	MaxTokenBytes int64

	// MaxDocumentBytes caps total bytes read from the input; 0 means
	// unlimited.
	MaxDocumentBytes int64

	// Context, if non-nil, is checked between statements so a caller
	// can cancel a long parse cooperatively (§5: the core stays
	// single-threaded, cancellation is polled, not preemptive).
	Context context.Context
}

// DefaultParserOptions returns the options a bare NewParser call uses.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		Prefixes:      map[string]string{},
		MaxTokenBytes: DefaultMaxTokenBytes,
		Context:       context.Background(),
	}
}

func normalizeParserOptions(o ParserOptions) ParserOptions {
	if o.Prefixes == nil {
		o.Prefixes = map[string]string{}
	}
	if o.MaxTokenBytes == 0 {
		o.MaxTokenBytes = DefaultMaxTokenBytes
	}
	if o.MaxTokenBytes < 0 {
		o.MaxTokenBytes = 0
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}
