package rdf

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, doc string, opts ParserOptions) []Triple {
	t.Helper()
	triples, err := ParseString(doc, opts)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", doc, err)
	}
	return triples
}

func TestParseSimpleTriple(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p ex:o .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d: %v", len(triples), triples)
	}
	tr := triples[0]
	if tr.Subject.(IRI).Value != "http://example.org/s" {
		t.Fatalf("unexpected subject %v", tr.Subject)
	}
	if tr.Predicate.Value != "http://example.org/p" {
		t.Fatalf("unexpected predicate %v", tr.Predicate)
	}
	if tr.Object.(IRI).Value != "http://example.org/o" {
		t.Fatalf("unexpected object %v", tr.Object)
	}
}

func TestParsePredicateObjectListAndObjectList(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p1 ex:o1 , ex:o2 ; ex:p2 ex:o3 .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if len(triples) != 3 {
		t.Fatalf("expected 3 triples, got %d: %v", len(triples), triples)
	}
}

func TestParseACollapsesToRDFType(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s a ex:Thing .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(triples))
	}
	if triples[0].Predicate.Value != rdfType {
		t.Fatalf("expected predicate rdf:type, got %s", triples[0].Predicate.Value)
	}
}

func TestParseCollectionExpandsToRDFList(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p ( ex:a ex:b ) .`
	triples := mustParse(t, doc, DefaultParserOptions())
	// One triple for ex:s ex:p _:head, plus 2*2 rdf:first/rdf:rest triples.
	if len(triples) != 5 {
		t.Fatalf("expected 5 triples, got %d: %v", len(triples), triples)
	}
}

func TestParseEmptyCollectionIsRDFNil(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p ( ) .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(triples))
	}
	obj, ok := triples[0].Object.(IRI)
	if !ok || obj.Value != rdfNil {
		t.Fatalf("expected object rdf:nil, got %v", triples[0].Object)
	}
}

func TestParseBlankNodePropertyList(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p [ ex:q ex:r ] .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if len(triples) != 2 {
		t.Fatalf("expected 2 triples, got %d: %v", len(triples), triples)
	}
	// The nested list's triple is emitted before the outer triple that
	// names its blank node, so the outer triple comes second.
	bn, ok := triples[1].Object.(BlankNode)
	if !ok {
		t.Fatalf("expected blank node object, got %T", triples[1].Object)
	}
	if triples[0].Subject.(BlankNode).ID != bn.ID {
		t.Fatalf("blank node property list subject must match the object of the outer triple")
	}
}

func TestParseSameBlankNodeLabelSameNode(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
_:b1 ex:p ex:o1 .
_:b1 ex:p ex:o2 .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if len(triples) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(triples))
	}
	if triples[0].Subject.(BlankNode).ID != triples[1].Subject.(BlankNode).ID {
		t.Fatal("same blank node label must resolve to the same blank node within one parse")
	}
}

func TestParseUndefinedPrefixErrors(t *testing.T) {
	doc := `ex:s ex:p ex:o .`
	_, err := ParseString(doc, DefaultParserOptions())
	if err == nil {
		t.Fatal("expected undefined prefix error")
	}
	if Code(err) != ErrCodeUndefinedPrefix {
		t.Fatalf("expected ErrCodeUndefinedPrefix, got %v", Code(err))
	}
}

func TestParseRelativeIRIResolvesAgainstBase(t *testing.T) {
	doc := `@base <http://example.org/> .
<s> <p> <o> .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if triples[0].Subject.(IRI).Value != "http://example.org/s" {
		t.Fatalf("unexpected resolved subject %v", triples[0].Subject)
	}
}

func TestParseLanguageTaggedLiteral(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p "hello"@en .`
	triples := mustParse(t, doc, DefaultParserOptions())
	lit := triples[0].Object.(Literal)
	if lit.Lang != "en" || lit.Lexical != "hello" {
		t.Fatalf("unexpected literal %+v", lit)
	}
}

func TestParseTypedLiteral(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
ex:s ex:p "42"^^xsd:integer .`
	triples := mustParse(t, doc, DefaultParserOptions())
	lit := triples[0].Object.(Literal)
	if lit.Datatype.Value != xsdInteger || lit.Lexical != "42" {
		t.Fatalf("unexpected literal %+v", lit)
	}
}

func TestParseSPARQLStyleDirectivesHaveNoTrailingDot(t *testing.T) {
	doc := `PREFIX ex: <http://example.org/>
BASE <http://example.org/>
ex:s ex:p <o> .`
	triples := mustParse(t, doc, DefaultParserOptions())
	if triples[0].Object.(IRI).Value != "http://example.org/o" {
		t.Fatalf("unexpected object %v", triples[0].Object)
	}
}

func TestParserStopsOnSinkError(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p ex:o1 , ex:o2 .`
	p := NewParser(strings.NewReader(doc), DefaultParserOptions())
	calls := 0
	err := p.Parse(SinkFunc(func(Triple) error {
		calls++
		return errStop
	}))
	if err == nil {
		t.Fatal("expected sink error to abort the parse")
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 call before abort, got %d", calls)
	}
}

var errStop = errStopType{}

type errStopType struct{}

func (errStopType) Error() string { return "stop" }
