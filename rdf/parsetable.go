package rdf

import "sort"

// nonTerminal enumerates every nonterminal of the Turtle 1.1 grammar
// this module implements (RDF-star and SPARQL variables excluded per
// the reaffirmed Non-goals).
type nonTerminal int

const (
	ntStatement nonTerminal = iota
	ntDirective
	ntTriples
	ntPredicateObjectListOpt
	ntPredicateObjectList
	ntPredicateObjectListTail
	ntObjectList
	ntObjectListTail
	ntVerb
	ntSubject
	ntObject
	ntBlankNodePropertyList
	ntCollection
	ntIRI
	ntBlankNode
)

// production identifies one grammar alternative for a nonterminal; the
// driver looks these up by (nonTerminal, lookahead kind) before
// descending, so every branch the driver takes is a table lookup, not
// an ad hoc if-chain guessing at the grammar.
type production int

const (
	prodNone production = iota

	prodDirectivePrefixAt
	prodDirectiveBaseAt
	prodDirectivePrefixKW
	prodDirectiveBaseKW

	prodTriplesSubject
	prodTriplesBlankNodePropertyList

	prodPOLOptSome
	prodPOLOptEmpty

	prodVerbA
	prodVerbIRI

	prodSubjectIRI
	prodSubjectBlankNode
	prodSubjectCollection

	prodObjectIRI
	prodObjectBlankNode
	prodObjectCollection
	prodObjectBlankNodePropertyList
	prodObjectStringLiteral
	prodObjectNumericLiteral
	prodObjectBooleanLiteral

	prodIRIRef
	prodIRIPrefixedName

	prodBlankNodeLabeled
	prodBlankNodeAnon
)

// parseTable maps (nonTerminal, lookahead) to the production to take.
// It is built once at package init from the FIRST sets below — see
// buildParseTable in parsetable_data.go. A lookahead with no entry for
// a nonterminal that has no epsilon alternative is a genuine syntax
// error (ParseError with ExpectedKinds populated from the table).
var parseTable map[nonTerminal]map[TokenKind]production

// followSets records FOLLOW(nt) for the nonterminals that have an
// epsilon production, so the driver (isInFollow) knows which lookaheads
// select "derive nothing" rather than reporting a miss.
var followSets map[nonTerminal][]TokenKind

func init() {
	parseTable = buildParseTable()
}

// expectedKinds returns every lookahead kind this nonterminal has a
// table entry for, sorted by declaration order — used to build a
// readable ParseError.ExpectedKinds on a table miss.
func expectedKinds(nt nonTerminal) []TokenKind {
	var kinds []TokenKind
	for k := range parseTable[nt] {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
