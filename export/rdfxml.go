package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/ontopop/graph"
	"github.com/c360studio/ontopop/vocabulary/review"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

// toRDFXML serializes to RDF/XML, one rdf:Description block per subject in
// first-insertion order.
func (s *Serializer) toRDFXML(g *graph.Graph) (string, error) {
	var sb strings.Builder

	sb.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	sb.WriteString("<rdf:RDF")
	for _, prefix := range s.sortedPrefixes() {
		sb.WriteString(fmt.Sprintf("\n    xmlns:%s=\"%s\"", prefix, s.prefixes[prefix]))
	}
	sb.WriteString(">\n")

	for _, subject := range g.Subjects() {
		if err := s.writeDescription(&sb, subject, g.Subject(subject)); err != nil {
			return "", err
		}
	}

	sb.WriteString("</rdf:RDF>\n")
	return sb.String(), nil
}

// writeDescription writes one subject with all its properties.
func (s *Serializer) writeDescription(sb *strings.Builder, subject string, triples []graph.Triple) error {
	sb.WriteString(fmt.Sprintf("  <rdf:Description rdf:about=\"%s\">\n", xmlEscaper.Replace(subject)))

	for _, t := range triples {
		name, err := s.qname(t.Predicate)
		if err != nil {
			return err
		}

		if t.Object.IsIRI() {
			sb.WriteString(fmt.Sprintf("    <%s rdf:resource=\"%s\"/>\n", name, xmlEscaper.Replace(t.Object.Value)))
			continue
		}

		// Plain string literals carry no datatype attribute; in RDF 1.1
		// they are xsd:string either way.
		if t.Object.Datatype == "" || t.Object.Datatype == review.XSDString {
			sb.WriteString(fmt.Sprintf("    <%s>%s</%s>\n", name, xmlEscaper.Replace(t.Object.Value), name))
			continue
		}

		sb.WriteString(fmt.Sprintf("    <%s rdf:datatype=\"%s\">%s</%s>\n",
			name, xmlEscaper.Replace(t.Object.Datatype), xmlEscaper.Replace(t.Object.Value), name))
	}

	sb.WriteString("  </rdf:Description>\n")
	return nil
}
