package rdf

import "testing"

func validatingOptions() ParserOptions {
	opts := DefaultParserOptions()
	opts.Validate = true
	return opts
}

func TestValidateAcceptsWellFormedLangTag(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p "hello"@en-US .`
	if _, err := ParseString(doc, validatingOptions()); err != nil {
		t.Fatalf("unexpected error for well-formed lang tag: %v", err)
	}
}

func TestValidateRejectsMalformedLangTag(t *testing.T) {
	// Lexically a valid LANGTAG (letters and hyphens only), but its
	// primary subtag exceeds RFC 5646's 8-character limit.
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p "hello"@abcdefghijklmnop .`
	if _, err := ParseString(doc, validatingOptions()); err == nil {
		t.Fatal("expected malformed language tag to be rejected under Validate")
	}
}

func TestValidateAcceptsWellFormedPrefixName(t *testing.T) {
	doc := `@prefix ex-1: <http://example.org/> .
ex-1:s ex-1:p ex-1:o .`
	if _, err := ParseString(doc, validatingOptions()); err != nil {
		t.Fatalf("unexpected error for well-formed prefix name: %v", err)
	}
}

func TestValidateDoesNotAffectDefaultOptions(t *testing.T) {
	// Without Validate set, an over-long primary subtag still parses:
	// the grammar's LANGTAG production alone accepts it.
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p "hello"@abcdefghijklmnop .`
	if _, err := ParseString(doc, DefaultParserOptions()); err != nil {
		t.Fatalf("expected non-validating parse to accept the document, got: %v", err)
	}
}
