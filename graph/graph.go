// Package graph provides the in-memory triple store backing the ontology
// populator.
//
// The store is an insertion-ordered list of triples with secondary indices
// by subject and by rdf:type, so serialization is deterministic and typed
// subjects can be counted without a full scan. It is deliberately not a
// general RDF library: subjects and predicates are always IRIs, objects are
// either IRIs or typed literals, and there are no blank nodes.
package graph

import "github.com/c360studio/ontopop/vocabulary/review"

// TermKind distinguishes IRI terms from literal terms.
type TermKind int

const (
	// KindIRI is a resource identifier term.
	KindIRI TermKind = iota

	// KindLiteral is a typed scalar value term.
	KindLiteral
)

// Term is the object position of a triple: an IRI or a typed literal.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string // literal datatype IRI; empty for IRI terms
}

// IRI returns an IRI term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Literal returns a plain string literal term.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: review.XSDString}
}

// TypedLiteral returns a literal term with an explicit datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether the term is an IRI.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// Triple is a single (subject, predicate, object) statement. Subject and
// Predicate are IRIs.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// Graph is an insertion-ordered set of triples. Adding a triple that is
// already present is a no-op, matching set semantics of standard RDF stores.
// A Graph is not safe for concurrent use; each populator owns its own.
type Graph struct {
	triples []Triple
	seen    map[Triple]struct{}

	bySubject map[string][]int    // subject IRI -> triple indices
	byType    map[string][]string // class IRI -> subject IRIs, insertion order
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		seen:      make(map[Triple]struct{}),
		bySubject: make(map[string][]int),
		byType:    make(map[string][]string),
	}
}

// Add inserts a triple, ignoring exact duplicates.
func (g *Graph) Add(t Triple) {
	if _, ok := g.seen[t]; ok {
		return
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], len(g.triples)-1)

	if t.Predicate == review.RDFType && t.Object.IsIRI() {
		g.byType[t.Object.Value] = append(g.byType[t.Object.Value], t.Subject)
	}
}

// Has reports whether the exact triple is present.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.seen[t]
	return ok
}

// HasType reports whether subject carries an rdf:type statement for class.
func (g *Graph) HasType(subject, class string) bool {
	return g.Has(Triple{Subject: subject, Predicate: review.RDFType, Object: IRI(class)})
}

// SubjectsOfType returns the subjects typed as class, in insertion order.
func (g *Graph) SubjectsOfType(class string) []string {
	return g.byType[class]
}

// Subject returns the triples whose subject is the given IRI, in insertion
// order.
func (g *Graph) Subject(subject string) []Triple {
	indices := g.bySubject[subject]
	triples := make([]Triple, 0, len(indices))
	for _, i := range indices {
		triples = append(triples, g.triples[i])
	}
	return triples
}

// Triples returns all triples in insertion order. The returned slice is
// shared; callers must not modify it.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Subjects returns the distinct subjects in first-insertion order.
func (g *Graph) Subjects() []string {
	subjects := make([]string, 0, len(g.bySubject))
	seen := make(map[string]struct{}, len(g.bySubject))
	for _, t := range g.triples {
		if _, ok := seen[t.Subject]; ok {
			continue
		}
		seen[t.Subject] = struct{}{}
		subjects = append(subjects, t.Subject)
	}
	return subjects
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}
