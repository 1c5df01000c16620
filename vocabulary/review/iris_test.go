package review

import (
	"strings"
	"testing"
)

func TestAllTermsShareNamespace(t *testing.T) {
	var terms []string
	terms = append(terms, Classes...)
	for _, p := range ObjectProperties {
		terms = append(terms, p.IRI)
	}
	for _, p := range DatatypeProperties {
		terms = append(terms, p.IRI)
	}

	for _, term := range terms {
		if !strings.HasPrefix(term, Namespace) {
			t.Errorf("term %s not under namespace %s", term, Namespace)
		}
	}
}

func TestDatatypePropertyRanges(t *testing.T) {
	for _, p := range DatatypeProperties {
		switch p.IRI {
		case PropDataAvaliacao:
			if p.Datatype != XSDDate {
				t.Errorf("data_avaliacao should be xsd:date, got %s", p.Datatype)
			}
		default:
			if p.Datatype != XSDString {
				t.Errorf("%s should be xsd:string, got %s", p.IRI, p.Datatype)
			}
		}
	}
}

func TestPropertyDomainsAreDeclaredClasses(t *testing.T) {
	declared := make(map[string]bool)
	for _, c := range Classes {
		declared[c] = true
	}

	for _, p := range ObjectProperties {
		if !declared[p.Domain] || !declared[p.Range] {
			t.Errorf("object property %s has undeclared domain or range", p.IRI)
		}
	}
	for _, p := range DatatypeProperties {
		if !declared[p.Domain] {
			t.Errorf("datatype property %s has undeclared domain %s", p.IRI, p.Domain)
		}
	}
}

func TestStandardPrefixesIncludeVocabulary(t *testing.T) {
	prefixes := StandardPrefixes()
	if prefixes[Prefix] != Namespace {
		t.Errorf("prefix %s should map to %s, got %s", Prefix, Namespace, prefixes[Prefix])
	}
	for _, required := range []string{"rdf", "rdfs", "owl", "xsd", "dc"} {
		if prefixes[required] == "" {
			t.Errorf("missing standard prefix %s", required)
		}
	}
}
