package rdf

import (
	"fmt"

	"github.com/google/uuid"
)

// driver is the LL(1) engine of spec.md §4.4. Its production_stack is
// realized as Go's own call stack — each parseX method corresponds to
// one nonterminal's frame — and its value_stack is the explicit chain
// of return values those methods hand back to their caller; the
// nonterminal/lookahead table in parsetable.go still decides every
// branch a parseX method takes, so no method ever guesses at the
// grammar from raw token values. Statement-level context that the
// grammar itself threads top-down (the subject and predicate in scope
// while a predicateObjectList is parsed) lives in explicit parameters
// rather than being synthesized bottom-up, since Turtle's triples are
// emitted as they are recognized, not after an entire subtree
// completes (§5's ordering guarantee).
type driver struct {
	lex    *lexer
	tok    Token
	b      *builder
	opts   ParserOptions
	emit   func(Triple) error
	corrID uuid.UUID

	baseIRI  string
	prefixes map[string]string
}

func newDriver(src string, opts ParserOptions, emit func(Triple) error) (*driver, error) {
	d := &driver{
		lex:      newLexer(src, opts.MaxTokenBytes),
		b:        newBuilder(opts),
		opts:     opts,
		emit:     emit,
		corrID:   uuid.New(),
		baseIRI:  opts.BaseIRI,
		prefixes: copyPrefixes(opts.Prefixes),
	}
	if err := d.advance(); err != nil {
		return nil, d.wrap(err)
	}
	return d, nil
}

func copyPrefixes(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (d *driver) advance() error {
	tok, err := d.lex.Next()
	if err != nil {
		return err
	}
	d.tok = tok
	return nil
}

func (d *driver) wrap(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		pe.CorrelationID = d.corrID
		return pe
	}
	return &ParseError{
		CorrelationID: d.corrID,
		Line:          d.tok.Line,
		Column:        d.tok.Column,
		Err:           err,
	}
}

func (d *driver) tableMiss(nt nonTerminal) error {
	return d.wrap(&ParseError{
		Line:          d.tok.Line,
		Column:        d.tok.Column,
		ExpectedKinds: expectedKinds(nt),
		ActualToken:   d.tok.Kind,
	})
}

func (d *driver) prodFor(nt nonTerminal) (production, bool) {
	p, ok := parseTable[nt][d.tok.Kind]
	return p, ok
}

// isInFollow reports whether the current lookahead is in FOLLOW(nt),
// i.e. legitimately signals "derive nothing" for a nonterminal with an
// epsilon alternative, rather than a malformed document that merely
// happens to lack a table entry.
func (d *driver) isInFollow(nt nonTerminal) bool {
	for _, k := range followSets[nt] {
		if k == d.tok.Kind {
			return true
		}
	}
	return false
}

func (d *driver) expect(kind TokenKind) (Token, error) {
	if d.tok.Kind != kind {
		return Token{}, d.wrap(&ParseError{
			Line:          d.tok.Line,
			Column:        d.tok.Column,
			ExpectedKinds: []TokenKind{kind},
			ActualToken:   d.tok.Kind,
		})
	}
	tok := d.tok
	if err := d.advance(); err != nil {
		return Token{}, d.wrap(err)
	}
	return tok, nil
}

// parseDocument drives Document ::= Statement* — the only production
// with no table entry needed: EOF simply ends the loop.
func (d *driver) parseDocument() error {
	for d.tok.Kind != TokEOF {
		if err := d.parseStatement(); err != nil {
			return err
		}
		if d.opts.Context != nil {
			select {
			case <-d.opts.Context.Done():
				return d.wrap(d.opts.Context.Err())
			default:
			}
		}
	}
	return nil
}

func (d *driver) parseStatement() error {
	if _, ok := d.prodFor(ntDirective); ok {
		return d.parseDirective()
	}
	if err := d.parseTriples(); err != nil {
		return err
	}
	if _, err := d.expect(TokDot); err != nil {
		return err
	}
	return nil
}

func (d *driver) parseDirective() error {
	prod, ok := d.prodFor(ntDirective)
	if !ok {
		return d.tableMiss(ntDirective)
	}
	switch prod {
	case prodDirectivePrefixAt:
		if _, err := d.expect(TokPrefixAt); err != nil {
			return err
		}
		ns, err := d.expect(TokPNameNS)
		if err != nil {
			return err
		}
		iriTok, err := d.expect(TokIRIRef)
		if err != nil {
			return err
		}
		if _, err := d.expect(TokDot); err != nil {
			return err
		}
		return d.applyPrefixDirective(ns, iriTok)
	case prodDirectiveBaseAt:
		if _, err := d.expect(TokBaseAt); err != nil {
			return err
		}
		iriTok, err := d.expect(TokIRIRef)
		if err != nil {
			return err
		}
		if _, err := d.expect(TokDot); err != nil {
			return err
		}
		return d.applyBaseDirective(iriTok)
	case prodDirectivePrefixKW:
		if _, err := d.expect(TokPrefixKW); err != nil {
			return err
		}
		ns, err := d.expect(TokPNameNS)
		if err != nil {
			return err
		}
		iriTok, err := d.expect(TokIRIRef)
		if err != nil {
			return err
		}
		return d.applyPrefixDirective(ns, iriTok)
	case prodDirectiveBaseKW:
		if _, err := d.expect(TokBaseKW); err != nil {
			return err
		}
		iriTok, err := d.expect(TokIRIRef)
		if err != nil {
			return err
		}
		return d.applyBaseDirective(iriTok)
	default:
		return d.wrap(&InternalError{Where: "parseDirective", Note: fmt.Sprintf("unhandled production %d", prod)})
	}
}

func (d *driver) parseTriples() error {
	prod, ok := d.prodFor(ntTriples)
	if !ok {
		return d.tableMiss(ntTriples)
	}
	switch prod {
	case prodTriplesSubject:
		subj, err := d.parseSubject()
		if err != nil {
			return err
		}
		return d.parsePredicateObjectList(subj)
	case prodTriplesBlankNodePropertyList:
		subj, err := d.parseBlankNodePropertyList()
		if err != nil {
			return err
		}
		if p, ok := d.prodFor(ntPredicateObjectListOpt); ok && p == prodPOLOptSome {
			return d.parsePredicateObjectList(subj)
		}
		if !d.isInFollow(ntPredicateObjectListOpt) {
			return d.tableMiss(ntPredicateObjectListOpt)
		}
		return nil
	default:
		return d.wrap(&InternalError{Where: "parseTriples", Note: "unhandled production"})
	}
}

// parsePredicateObjectList drives
// PredicateObjectList ::= Verb ObjectList (';' (Verb ObjectList)?)*
// emitting one triple per (subject, verb, object) as each object
// completes.
func (d *driver) parsePredicateObjectList(subject Term) error {
	verb, err := d.parseVerb()
	if err != nil {
		return err
	}
	if err := d.parseObjectList(subject, verb); err != nil {
		return err
	}
	for d.tok.Kind == TokSemicolon {
		if _, err := d.advanceTok(); err != nil {
			return err
		}
		if _, ok := d.prodFor(ntVerb); !ok {
			continue // trailing ';' with nothing after it
		}
		verb, err := d.parseVerb()
		if err != nil {
			return err
		}
		if err := d.parseObjectList(subject, verb); err != nil {
			return err
		}
	}
	return nil
}

func (d *driver) advanceTok() (Token, error) {
	tok := d.tok
	if err := d.advance(); err != nil {
		return Token{}, d.wrap(err)
	}
	return tok, nil
}

func (d *driver) parseObjectList(subject Term, verb IRI) error {
	obj, err := d.parseObject()
	if err != nil {
		return err
	}
	if err := d.emit(Triple{Subject: subject, Predicate: verb, Object: obj}); err != nil {
		return d.wrap(err)
	}
	for d.tok.Kind == TokComma {
		if _, err := d.advanceTok(); err != nil {
			return err
		}
		obj, err := d.parseObject()
		if err != nil {
			return err
		}
		if err := d.emit(Triple{Subject: subject, Predicate: verb, Object: obj}); err != nil {
			return d.wrap(err)
		}
	}
	return nil
}

func (d *driver) parseVerb() (IRI, error) {
	prod, ok := d.prodFor(ntVerb)
	if !ok {
		return IRI{}, d.tableMiss(ntVerb)
	}
	switch prod {
	case prodVerbA:
		if _, err := d.expect(TokA); err != nil {
			return IRI{}, err
		}
		return IRI{Value: rdfType}, nil
	case prodVerbIRI:
		return d.parseIRI()
	default:
		return IRI{}, d.wrap(&InternalError{Where: "parseVerb", Note: "unhandled production"})
	}
}

func (d *driver) parseSubject() (Term, error) {
	prod, ok := d.prodFor(ntSubject)
	if !ok {
		return nil, d.tableMiss(ntSubject)
	}
	switch prod {
	case prodSubjectIRI:
		iri, err := d.parseIRI()
		return iri, err
	case prodSubjectBlankNode:
		return d.parseBlankNode()
	case prodSubjectCollection:
		return d.parseCollection()
	default:
		return nil, d.wrap(&InternalError{Where: "parseSubject", Note: "unhandled production"})
	}
}

func (d *driver) parseObject() (Term, error) {
	prod, ok := d.prodFor(ntObject)
	if !ok {
		return nil, d.tableMiss(ntObject)
	}
	switch prod {
	case prodObjectIRI:
		return d.parseIRI()
	case prodObjectBlankNode:
		return d.parseBlankNode()
	case prodObjectCollection:
		return d.parseCollection()
	case prodObjectBlankNodePropertyList:
		return d.parseBlankNodePropertyList()
	case prodObjectStringLiteral:
		return d.parseStringLiteral()
	case prodObjectNumericLiteral:
		tok, err := d.advanceTok()
		if err != nil {
			return nil, err
		}
		lit, err := d.b.numericLiteral(tok.Kind, tok.Lexeme, tok.Line)
		if err != nil {
			return nil, d.wrap(err)
		}
		return lit, nil
	case prodObjectBooleanLiteral:
		tok, err := d.advanceTok()
		if err != nil {
			return nil, err
		}
		return d.b.booleanLiteral(tok.Lexeme), nil
	default:
		return nil, d.wrap(&InternalError{Where: "parseObject", Note: "unhandled production"})
	}
}

func (d *driver) parseBlankNodePropertyList() (Term, error) {
	if _, err := d.expect(TokLBracket); err != nil {
		return nil, err
	}
	bn := d.b.freshBlankNode()
	if err := d.parsePredicateObjectList(bn); err != nil {
		return nil, err
	}
	if _, err := d.expect(TokRBracket); err != nil {
		return nil, err
	}
	return bn, nil
}

func (d *driver) parseCollection() (Term, error) {
	if _, err := d.expect(TokLParen); err != nil {
		return nil, err
	}
	var items []Term
	for d.tok.Kind != TokRParen {
		item, err := d.parseObject()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := d.expect(TokRParen); err != nil {
		return nil, err
	}
	head, err := d.b.collection(items, d.emit)
	if err != nil {
		return nil, d.wrap(err)
	}
	return head, nil
}

func (d *driver) parseIRI() (IRI, error) {
	prod, ok := d.prodFor(ntIRI)
	if !ok {
		return IRI{}, d.tableMiss(ntIRI)
	}
	switch prod {
	case prodIRIRef:
		tok, err := d.advanceTok()
		if err != nil {
			return IRI{}, err
		}
		resolved, err := resolveIRI(d.baseIRI, tok.Lexeme, tok.Line)
		if err != nil {
			return IRI{}, d.wrap(err)
		}
		return d.b.iri(resolved), nil
	case prodIRIPrefixedName:
		tok, err := d.advanceTok()
		if err != nil {
			return IRI{}, err
		}
		return d.resolvePrefixedName(tok)
	default:
		return IRI{}, d.wrap(&InternalError{Where: "parseIRI", Note: "unhandled production"})
	}
}

func (d *driver) parseBlankNode() (Term, error) {
	prod, ok := d.prodFor(ntBlankNode)
	if !ok {
		return nil, d.tableMiss(ntBlankNode)
	}
	switch prod {
	case prodBlankNodeLabeled:
		tok, err := d.advanceTok()
		if err != nil {
			return nil, err
		}
		return d.b.blankNodeByLabel(tok.Lexeme), nil
	case prodBlankNodeAnon:
		if _, err := d.advanceTok(); err != nil {
			return nil, err
		}
		return d.b.freshBlankNode(), nil
	default:
		return nil, d.wrap(&InternalError{Where: "parseBlankNode", Note: "unhandled production"})
	}
}

func (d *driver) parseStringLiteral() (Term, error) {
	tok, err := d.advanceTok()
	if err != nil {
		return nil, err
	}
	switch d.tok.Kind {
	case TokLangTag:
		langTok, err := d.advanceTok()
		if err != nil {
			return nil, err
		}
		lit, err := d.b.langLiteral(tok.Lexeme, langTok.Lexeme, langTok.Line)
		if err != nil {
			return nil, d.wrap(err)
		}
		return lit, nil
	case TokDatatypeMark:
		if _, err := d.advanceTok(); err != nil {
			return nil, err
		}
		dtIRI, err := d.parseIRI()
		if err != nil {
			return nil, err
		}
		return d.b.typedLiteral(tok.Lexeme, dtIRI), nil
	default:
		return d.b.plainLiteral(tok.Lexeme), nil
	}
}
