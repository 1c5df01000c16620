package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/ontopop/graph"
	"github.com/c360studio/ontopop/vocabulary/review"
)

// toNTriples serializes to N-Triples, one statement per line in insertion
// order.
func (s *Serializer) toNTriples(g *graph.Graph) string {
	var sb strings.Builder

	for _, t := range g.Triples() {
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", t.Subject, t.Predicate, ntriplesObject(t.Object)))
	}

	return sb.String()
}

// ntriplesObject renders an object term with full IRIs.
func ntriplesObject(term graph.Term) string {
	if term.IsIRI() {
		return fmt.Sprintf("<%s>", term.Value)
	}
	if term.Datatype == "" || term.Datatype == review.XSDString {
		return fmt.Sprintf("\"%s\"", escapeLiteral(term.Value))
	}
	return fmt.Sprintf("\"%s\"^^<%s>", escapeLiteral(term.Value), term.Datatype)
}
