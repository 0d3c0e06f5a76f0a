package rdf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// ErrorCode is a closed, programmatic error classification. Callers
// should branch on Code(err), never on err.Error() substrings.
type ErrorCode string

const (
	ErrCodeLex             ErrorCode = "LEX_ERROR"
	ErrCodeEscape          ErrorCode = "ESCAPE_ERROR"
	ErrCodeParse           ErrorCode = "PARSE_ERROR"
	ErrCodeUndefinedPrefix ErrorCode = "UNDEFINED_PREFIX"
	ErrCodeIRIResolution   ErrorCode = "IRI_RESOLUTION_ERROR"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeTokenTooLong    ErrorCode = "TOKEN_TOO_LONG"
	ErrCodeDocumentTooLong ErrorCode = "DOCUMENT_TOO_LONG"
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
)

var (
	// errTokenTooLongBase and errDocumentTooLongBase are wrapped with the
	// configured limit rendered by go-humanize, e.g. "token exceeds
	// configured limit (1.0 MiB)".
	errTokenTooLongBase    = errors.New("token exceeds configured limit")
	errDocumentTooLongBase = errors.New("document exceeds configured limit")
)

func newTokenTooLongError(limit int64) error {
	return fmt.Errorf("%w (%s)", errTokenTooLongBase, humanize.IBytes(uint64(limit)))
}

func newDocumentTooLongError(limit int64) error {
	return fmt.Errorf("%w (%s)", errDocumentTooLongBase, humanize.IBytes(uint64(limit)))
}

// LexError reports a lexical scanner failure: an input byte sequence
// that matches none of the lexer's recognition rules.
type LexError struct {
	Line   int
	Column int
	Input  string // the offending lexeme prefix
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: unrecognized input %q", e.Line, e.Column, e.Input)
}

// EscapeError reports a malformed or out-of-range escape sequence,
// from either the numeric-codepoint pass or the short-escape pass.
type EscapeError struct {
	Line     int
	Sequence string
	Reason   string
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("invalid escape %q at line %d: %s", e.Sequence, e.Line, e.Reason)
}

// UndefinedPrefixError reports use of a PNAME whose namespace prefix
// was never bound by a preceding @prefix/PREFIX directive.
type UndefinedPrefixError struct {
	Line   int
	Prefix string
}

func (e *UndefinedPrefixError) Error() string {
	return fmt.Sprintf("undefined prefix %q at line %d", e.Prefix, e.Line)
}

// IRIResolutionError reports a relative IRI that could not be resolved
// against the active base (RFC 3986 §5.3).
type IRIResolutionError struct {
	Line     int
	Relative string
	Base     string
	Reason   string
}

func (e *IRIResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve IRI %q against base %q at line %d: %s", e.Relative, e.Base, e.Line, e.Reason)
}

// InternalError reports a parser invariant violation — a state the
// driver or semantic actions should never reach on well-formed input.
// Seeing one is a bug in this package, not in the document.
type InternalError struct {
	Where string
	Note  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Where, e.Note)
}

// ParseError is the error type Parser.Parse returns for failures once
// lexing has begun. It wraps the underlying Lex/Escape/Undefined.../IRI/
// Internal error (or a raw table-miss condition) with position context
// and a per-parse CorrelationID. Errors from reading the input and from
// the whole-document numeric-escape pass (an *EscapeError, the
// document-size error) are returned unwrapped.
type ParseError struct {
	CorrelationID uuid.UUID
	Line          int
	Column        int
	Offset        int64

	// ExpectedKinds and ActualToken are populated for a raw LL(1)
	// table-miss (no production for (nonterminal, lookahead)); both
	// are zero-valued when Err already describes the failure.
	ExpectedKinds []TokenKind
	ActualToken   TokenKind

	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turtle:%d:%d: ", e.Line, e.Column)
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		fmt.Fprintf(&b, "unexpected %s, expected one of %v", e.ActualToken, e.ExpectedKinds)
	}
	fmt.Fprintf(&b, " [correlation_id=%s]", e.CorrelationID)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Code maps any error this package returns to its ErrorCode via
// errors.As chains, never via string matching.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, errTokenTooLongBase):
		return ErrCodeTokenTooLong
	case errors.Is(err, errDocumentTooLongBase):
		return ErrCodeDocumentTooLong
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}

	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return ErrCodeLex
	}
	var escErr *EscapeError
	if errors.As(err, &escErr) {
		return ErrCodeEscape
	}
	var prefixErr *UndefinedPrefixError
	if errors.As(err, &prefixErr) {
		return ErrCodeUndefinedPrefix
	}
	var iriErr *IRIResolutionError
	if errors.As(err, &iriErr) {
		return ErrCodeIRIResolution
	}
	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		return ErrCodeInternal
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Err != nil {
			if inner := Code(parseErr.Err); inner != "" {
				return inner
			}
		}
		return ErrCodeParse
	}
	return ErrCodeParse
}
