package export

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/c360studio/ontopop/graph"
	"github.com/c360studio/ontopop/vocabulary/review"
)

// Serializer writes a graph to one of the supported RDF formats using the
// standard namespace prefixes of the review vocabulary.
type Serializer struct {
	format   Format
	prefixes map[string]string
}

// NewSerializer creates a serializer for the given format.
func NewSerializer(format Format) *Serializer {
	return &Serializer{
		format:   format,
		prefixes: review.StandardPrefixes(),
	}
}

// SetPrefix binds an additional namespace prefix.
func (s *Serializer) SetPrefix(prefix, iri string) {
	s.prefixes[prefix] = iri
}

// Serialize renders the full graph in the serializer's format.
func (s *Serializer) Serialize(g *graph.Graph) (string, error) {
	switch s.format {
	case FormatRDFXML:
		return s.toRDFXML(g)
	case FormatTurtle:
		return s.toTurtle(g)
	case FormatNTriples:
		return s.toNTriples(g), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s.format)
	}
}

// WriteFile serializes the graph to path, overwriting any existing file.
func (s *Serializer) WriteFile(g *graph.Graph, path string) error {
	output, err := s.Serialize(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// sortedPrefixes returns the prefix names in lexical order for consistent
// output.
func (s *Serializer) sortedPrefixes() []string {
	keys := make([]string, 0, len(s.prefixes))
	for k := range s.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// qname compacts an IRI to prefix:local form. Predicates outside the bound
// namespaces cannot be serialized as XML element names.
func (s *Serializer) qname(iri string) (string, error) {
	var bestPrefix, bestNS string
	for prefix, ns := range s.prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			bestPrefix, bestNS = prefix, ns
		}
	}
	if bestNS == "" || len(iri) == len(bestNS) {
		return "", fmt.Errorf("no prefix bound for IRI %s", iri)
	}
	return bestPrefix + ":" + iri[len(bestNS):], nil
}

// escapeLiteral escapes special characters for Turtle and N-Triples.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
