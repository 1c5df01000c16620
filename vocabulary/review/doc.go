// Package review provides the fixed ontology vocabulary for the software
// review knowledge graph.
//
// The vocabulary declares three classes (Software, Review, Reviewer), two
// object properties linking them (hasReview, madeBy), and the datatype
// properties carrying the survey attributes. All terms live under a single
// namespace bound to the "sw" prefix, alongside the standard RDF, RDFS, OWL,
// XSD, and Dublin Core vocabularies used by the schema declarations.
//
// # Usage
//
// Import the package and use the IRI constants when emitting triples:
//
//	g.Add(graph.Triple{
//	    Subject:   subject,
//	    Predicate: review.PropName,
//	    Object:    graph.Literal("LibreOffice"),
//	})
//
// The ObjectProperties and DatatypeProperties tables drive schema
// initialization: each entry carries its rdfs:domain and rdfs:range so the
// populator can declare the full vocabulary without hardcoding it twice.
package review
