// Package rdf implements the core of a Turtle 1.1 ingestion pipeline:
// a Unicode-aware lexical scanner and an LL(1) table-driven parser that
// together turn a UTF-8 Turtle document into a stream of RDF triples.
//
// The pipeline has three moving parts, leaves first:
//
//   - lexer: recognizes IRIs, prefixed names, the four Turtle string
//     quoting styles, numeric and boolean literals, blank node labels,
//     language tags, keywords and punctuation, after a whole-document
//     escape pass has already resolved every \uXXXX/\UXXXXXXXX sequence
//     (escape.go).
//   - driver: walks the precomputed FIRST-set production table in
//     parsetable_data.go, dispatching to a semantic action per
//     completed production (actions.go).
//   - builder: the term/collection façade — blank node minting,
//     literal construction, and collection expansion into
//     rdf:first/rdf:rest/rdf:nil triples.
//
// Example:
//
//	p := rdf.NewParser(strings.NewReader(doc), rdf.DefaultParserOptions())
//	err := p.Parse(rdf.SinkFunc(func(t rdf.Triple) error {
//	    fmt.Println(t)
//	    return nil
//	}))
//
// The package owns the lexer, the parse table, and every semantic
// action; it treats an RDF term library as an external collaborator
// but still provides concrete IRI/BlankNode/Literal types itself so
// that the package compiles and runs standalone.
//
// Out of scope: RDF-star, any serialization format but Turtle, a
// Turtle writer, RDF graph storage, and command-line argument parsing.
package rdf
