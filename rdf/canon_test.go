package rdf

import "testing"

func TestCanonicalizeInteger(t *testing.T) {
	cases := map[string]string{
		"007":  "7",
		"+42":  "42",
		"-007": "-7",
		"0":    "0",
		"-0":   "0",
	}
	for in, want := range cases {
		if got := canonicalizeInteger(in); got != want {
			t.Errorf("canonicalizeInteger(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalizeDecimal(t *testing.T) {
	cases := map[string]string{
		"1.500": "1.5",
		"01.50": "1.5",
		".5":    "0.5",
		"-1.0":  "-1.0",
		"3.":    "3.0",
	}
	for in, want := range cases {
		if got := canonicalizeDecimal(in); got != want {
			t.Errorf("canonicalizeDecimal(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalizeBoolean(t *testing.T) {
	cases := map[string]string{
		"1":     "true",
		"0":     "false",
		"true":  "true",
		"false": "false",
	}
	for in, want := range cases {
		if got := canonicalizeBoolean(in); got != want {
			t.Errorf("canonicalizeBoolean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalizeLexicalDispatchesOnDatatype(t *testing.T) {
	if got := canonicalizeLexical(xsdInteger, "007"); got != "7" {
		t.Fatalf("expected dispatch to canonicalizeInteger, got %q", got)
	}
	if got := canonicalizeLexical(xsdString, "007"); got != "007" {
		t.Fatalf("expected non-numeric datatype to pass through unchanged, got %q", got)
	}
}
