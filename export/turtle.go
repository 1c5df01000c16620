package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/ontopop/graph"
	"github.com/c360studio/ontopop/vocabulary/review"
)

// toTurtle serializes to Turtle, grouping triples by subject.
func (s *Serializer) toTurtle(g *graph.Graph) (string, error) {
	var sb strings.Builder

	for _, prefix := range s.sortedPrefixes() {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, s.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, subject := range g.Subjects() {
		triples := g.Subject(subject)

		sb.WriteString(fmt.Sprintf("<%s>\n", subject))
		for i, t := range triples {
			sb.WriteString(fmt.Sprintf("    %s %s", s.turtlePredicate(t.Predicate), s.turtleObject(t.Object)))
			if i < len(triples)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// turtlePredicate compacts a predicate to prefix:local form, abbreviating
// rdf:type to "a".
func (s *Serializer) turtlePredicate(iri string) string {
	if iri == review.RDFType {
		return "a"
	}
	if name, err := s.qname(iri); err == nil {
		return name
	}
	return fmt.Sprintf("<%s>", iri)
}

// turtleObject renders an object term.
func (s *Serializer) turtleObject(term graph.Term) string {
	if term.IsIRI() {
		if name, err := s.qname(term.Value); err == nil {
			return name
		}
		return fmt.Sprintf("<%s>", term.Value)
	}

	if term.Datatype == "" || term.Datatype == review.XSDString {
		return fmt.Sprintf("\"%s\"", escapeLiteral(term.Value))
	}

	if name, err := s.qname(term.Datatype); err == nil {
		return fmt.Sprintf("\"%s\"^^%s", escapeLiteral(term.Value), name)
	}
	return fmt.Sprintf("\"%s\"^^<%s>", escapeLiteral(term.Value), term.Datatype)
}
