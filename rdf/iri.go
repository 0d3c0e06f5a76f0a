package rdf

import "net/url"

// resolveIRI implements RFC 3986 §5.3 reference resolution against an
// active base IRI, grounded on the teacher's iri_resolve.go but made
// strict: an invalid base or relative reference is now a reported
// IRIResolutionError instead of being silently patched together with
// string concatenation.
func resolveIRI(base, relative string, line int) (string, error) {
	if relative == "" {
		if base == "" {
			return "", &IRIResolutionError{Line: line, Relative: relative, Base: base, Reason: "no base IRI in scope"}
		}
		return base, nil
	}

	relURL, err := url.Parse(relative)
	if err != nil {
		return "", &IRIResolutionError{Line: line, Relative: relative, Base: base, Reason: err.Error()}
	}
	if relURL.IsAbs() {
		return relative, nil
	}
	if base == "" {
		return "", &IRIResolutionError{Line: line, Relative: relative, Base: base, Reason: "no base IRI in scope"}
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", &IRIResolutionError{Line: line, Relative: relative, Base: base, Reason: "invalid base: " + err.Error()}
	}
	return baseURL.ResolveReference(relURL).String(), nil
}
