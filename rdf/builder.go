package rdf

import (
	"errors"
	"strconv"
)

// builder is the term/collection façade (spec.md §4.6): every Term the
// actions produce goes through one of these methods, so blank-node
// minting and literal construction happen in exactly one place.
// Grounded on the teacher's model.go (Term/IRI/BlankNode/Literal) and
// common_utils.go's blankNodeGenerator, generalized to also own
// collection expansion.
type builder struct {
	bnodes *blankNodeGenerator
	// labeled maps a document's _:label to the BlankNode minted for it
	// the first time that label was seen — Data Model Invariant:
	// same label within one parse always yields the same blank node.
	labeled map[string]BlankNode
	opts    ParserOptions
}

func newBuilder(opts ParserOptions) *builder {
	return &builder{
		bnodes:  newBlankNodeGenerator(),
		labeled: map[string]BlankNode{},
		opts:    opts,
	}
}

func (b *builder) iri(value string) IRI {
	return IRI{Value: value}
}

// blankNodeByLabel returns the blank node for a _:label, minting one
// the first time the label is seen in this parse.
func (b *builder) blankNodeByLabel(label string) BlankNode {
	if bn, ok := b.labeled[label]; ok {
		return bn
	}
	bn := b.bnodes.next()
	b.labeled[label] = bn
	return bn
}

// freshBlankNode mints an anonymous blank node for `[]`, `[ pol ]`, and
// collection cells — never visible to blankNodeByLabel.
func (b *builder) freshBlankNode() BlankNode {
	return b.bnodes.next()
}

func (b *builder) plainLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: IRI{Value: xsdString}}
}

func (b *builder) langLiteral(lexical, lang string, line int) (Literal, error) {
	if b.opts.Validate && !isValidLangTag(lang) {
		return Literal{}, &ParseError{Line: line, Err: errors.New("malformed language tag " + strconv.Quote(lang))}
	}
	return Literal{Lexical: lexical, Lang: lang}, nil
}

func (b *builder) typedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// numericLiteral builds the Literal for an INTEGER/DECIMAL/DOUBLE
// shorthand token, canonicalizing the lexical form when requested.
func (b *builder) numericLiteral(kind TokenKind, lexeme string, line int) (Literal, error) {
	var dt string
	switch kind {
	case TokInteger:
		dt = xsdInteger
	case TokDecimal:
		dt = xsdDecimal
	case TokDouble:
		dt = xsdDouble
	}
	if b.opts.Validate {
		if err := validateNumericLexeme(kind, lexeme); err != nil {
			return Literal{}, &ParseError{Line: line, Err: err}
		}
	}
	if b.opts.Canonicalize {
		lexeme = canonicalizeLexical(dt, lexeme)
	}
	return Literal{Lexical: lexeme, Datatype: IRI{Value: dt}}, nil
}

// validateNumericLexeme re-parses an INTEGER/DOUBLE lexeme through Go's
// own numeric parsing as an extra structural check beyond what the
// grammar's token productions already guarantee (DECIMAL has no Go
// equivalent check worth duplicating, since strconv.ParseFloat accepts
// strictly more than the grammar does).
func validateNumericLexeme(kind TokenKind, lexeme string) error {
	switch kind {
	case TokInteger:
		_, err := quotedInt(lexeme)
		return err
	case TokDouble:
		_, err := quotedFloat(lexeme)
		return err
	default:
		return nil
	}
}

func (b *builder) booleanLiteral(lexeme string) Literal {
	if b.opts.Canonicalize {
		lexeme = canonicalizeLexical(xsdBoolean, lexeme)
	}
	return Literal{Lexical: lexeme, Datatype: IRI{Value: xsdBoolean}}
}

// collection expands a Turtle `( obj1 obj2 ... )` into a fresh
// rdf:first/rdf:rest spine terminated by rdf:nil, passing each triple
// to emit and returning the head term (rdf:nil itself for an empty
// collection). Cells are emitted from the last one back to the head, so
// every cell has appeared as a subject before an rdf:rest triple names
// it as an object (no forward blank-node references, §5).
func (b *builder) collection(items []Term, emit func(Triple) error) (Term, error) {
	if len(items) == 0 {
		return IRI{Value: rdfNil}, nil
	}
	var rest Term = IRI{Value: rdfNil}
	for i := len(items) - 1; i >= 0; i-- {
		cur := b.freshBlankNode()
		if err := emit(Triple{Subject: cur, Predicate: IRI{Value: rdfFirst}, Object: items[i]}); err != nil {
			return nil, err
		}
		if err := emit(Triple{Subject: cur, Predicate: IRI{Value: rdfRest}, Object: rest}); err != nil {
			return nil, err
		}
		rest = cur
	}
	return rest, nil
}

// quotedInt/quotedFloat round-trip a lexical numeric form through Go's
// own numeric parsing; validateNumericLexeme uses these when Validate
// is set.
func quotedInt(lexeme string) (int64, error)     { return strconv.ParseInt(lexeme, 10, 64) }
func quotedFloat(lexeme string) (float64, error) { return strconv.ParseFloat(lexeme, 64) }
