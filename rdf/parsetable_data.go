package rdf

// buildParseTable computes the static (nonTerminal, lookahead) ->
// production table from the Turtle 1.1 grammar's FIRST sets. It runs
// once at package init and the result never changes afterward — the
// table is as much a fixed input artifact here as spec.md §4.3
// describes, just computed in Go rather than shipped as a separate
// offline-generated data file, since this grammar is small and fixed.
func buildParseTable() map[nonTerminal]map[TokenKind]production {
	t := map[nonTerminal]map[TokenKind]production{}

	set := func(nt nonTerminal, prod production, kinds ...TokenKind) {
		if t[nt] == nil {
			t[nt] = map[TokenKind]production{}
		}
		for _, k := range kinds {
			t[nt][k] = prod
		}
	}

	iriFirst := []TokenKind{TokIRIRef, TokPNameNS, TokPNameLN}
	blankNodeFirst := []TokenKind{TokBlankNodeLabel, TokAnon}
	collectionFirst := []TokenKind{TokLParen}
	subjectFirst := append(append(append([]TokenKind{}, iriFirst...), blankNodeFirst...), collectionFirst...)
	set(ntIRI, prodIRIRef, TokIRIRef)
	set(ntIRI, prodIRIPrefixedName, TokPNameNS, TokPNameLN)

	set(ntBlankNode, prodBlankNodeLabeled, TokBlankNodeLabel)
	set(ntBlankNode, prodBlankNodeAnon, TokAnon)

	set(ntDirective, prodDirectivePrefixAt, TokPrefixAt)
	set(ntDirective, prodDirectiveBaseAt, TokBaseAt)
	set(ntDirective, prodDirectivePrefixKW, TokPrefixKW)
	set(ntDirective, prodDirectiveBaseKW, TokBaseKW)

	set(ntSubject, prodSubjectIRI, iriFirst...)
	set(ntSubject, prodSubjectBlankNode, blankNodeFirst...)
	set(ntSubject, prodSubjectCollection, collectionFirst...)

	set(ntTriples, prodTriplesSubject, subjectFirst...)
	set(ntTriples, prodTriplesBlankNodePropertyList, TokLBracket)

	set(ntVerb, prodVerbA, TokA)
	set(ntVerb, prodVerbIRI, iriFirst...)

	set(ntObject, prodObjectIRI, iriFirst...)
	set(ntObject, prodObjectBlankNode, blankNodeFirst...)
	set(ntObject, prodObjectCollection, collectionFirst...)
	set(ntObject, prodObjectBlankNodePropertyList, TokLBracket)
	set(ntObject, prodObjectStringLiteral, TokStringQuote, TokStringApos, TokStringLongQuote, TokStringLongApos)
	set(ntObject, prodObjectNumericLiteral, TokInteger, TokDecimal, TokDouble)
	set(ntObject, prodObjectBooleanLiteral, TokBoolean)

	// PredicateObjectListOpt: FOLLOW = {'.'} for the blank-node-subject
	// form of Triples, so a bare '.' after a blankNodePropertyList
	// subject is the epsilon branch.
	set(ntPredicateObjectListOpt, prodPOLOptSome, append([]TokenKind{TokA}, iriFirst...)...)
	followSets = map[nonTerminal][]TokenKind{
		ntPredicateObjectListOpt: {TokDot},
	}

	return t
}
