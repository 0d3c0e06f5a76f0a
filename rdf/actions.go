package rdf

import (
	"errors"
	"strings"
)

// applyPrefixDirective is the semantic action for both the '@prefix'
// and SPARQL 'PREFIX' productions: it rebinds the prefix for the rest
// of the document, since Turtle prefix bindings are document-global,
// not scoped to the block they appear in (spec.md §9's "last
// definition wins" resolution).
func (d *driver) applyPrefixDirective(nsTok, iriTok Token) error {
	resolved, err := resolveIRI(d.baseIRI, iriTok.Lexeme, iriTok.Line)
	if err != nil {
		return d.wrap(err)
	}
	prefix := strings.TrimSuffix(nsTok.Lexeme, ":")
	if d.opts.Validate && prefix != "" && !isValidPrefixName(prefix) {
		return d.wrap(errors.New("malformed prefix name " + prefix))
	}
	d.prefixes[prefix] = resolved
	return nil
}

// applyBaseDirective resolves the new base against whatever base was
// already in scope (a relative @base is legal and resolves against
// the prior base) and replaces it for subsequent IRI resolution.
func (d *driver) applyBaseDirective(iriTok Token) error {
	resolved, err := resolveIRI(d.baseIRI, iriTok.Lexeme, iriTok.Line)
	if err != nil {
		return d.wrap(err)
	}
	d.baseIRI = resolved
	return nil
}

// resolvePrefixedName expands a PNAME_NS/PNAME_LN token against the
// prefix map in scope. The lexer has already decoded any PN_LOCAL_ESC
// sequences in tok.Lexeme's local part (dropping the backslash while
// leaving %HH octets intact), so this only needs the textual split.
// Per the Open Question resolution in spec.md §9, an empty prefix
// (a bare ":" or ":local") must have been
// explicitly bound by "@prefix : <iri> ." — it is never silently
// treated as a synonym for the base IRI.
func (d *driver) resolvePrefixedName(tok Token) (IRI, error) {
	prefix, local, _ := strings.Cut(tok.Lexeme, ":")
	ns, ok := d.prefixes[prefix]
	if !ok {
		return IRI{}, d.wrap(&UndefinedPrefixError{Line: tok.Line, Prefix: prefix})
	}
	return d.b.iri(ns + local), nil
}
