package review

// Namespace is the base IRI for all software-review vocabulary terms and
// entity instances.
const Namespace = "http://www.example.org/software-review#"

// Prefix is the namespace prefix bound to Namespace in serialized output.
const Prefix = "sw"

// OntologyIRI identifies the ontology document itself (the owl:Ontology
// header node).
const OntologyIRI = "http://www.example.org/software-review"

// Class IRIs define the entity types of the review ontology.
const (
	// ClassSoftware represents a piece of software being reviewed.
	ClassSoftware = Namespace + "Software"

	// ClassReview represents a single survey response about a software.
	ClassReview = Namespace + "Review"

	// ClassReviewer represents the (anonymized) author of a review,
	// identified by its sector/size/frequency attribute tuple.
	ClassReviewer = Namespace + "Reviewer"
)

// Object property IRIs relate entity instances to each other.
const (
	// PropHasReview links a Software to one of its Reviews.
	PropHasReview = Namespace + "hasReview"

	// PropMadeBy links a Review to the Reviewer who wrote it.
	PropMadeBy = Namespace + "madeBy"
)

// Datatype property IRIs attach survey attributes to entity instances.
const (
	// PropSoftwareID is the natural key of a Software.
	PropSoftwareID = Namespace + "software_id"

	// PropName is the display name of a Software.
	PropName = Namespace + "name"

	// PropPagina is the product page reference of a Software.
	PropPagina = Namespace + "pagina"

	// PropFonte is the source the Review was collected from.
	PropFonte = Namespace + "fonte"

	// PropRecomendacao is the recommendation given by the Review.
	PropRecomendacao = Namespace + "recomendacao"

	// PropDataAvaliacao is the evaluation date of the Review (xsd:date).
	PropDataAvaliacao = Namespace + "data_avaliacao"

	// PropComentario is the free-text comment of the Review.
	PropComentario = Namespace + "comentario"

	// PropVantagem is the advantage reported by the Review.
	PropVantagem = Namespace + "vantagem"

	// PropDesvantagem is the disadvantage reported by the Review.
	PropDesvantagem = Namespace + "desvantagem"

	// PropSftAnterior is the previously used software, when reported.
	PropSftAnterior = Namespace + "sft_anterior"

	// PropMotivoMudanca is the reason for switching, when reported.
	PropMotivoMudanca = Namespace + "motivo_mudanca"

	// PropSetor is the Reviewer's sector.
	PropSetor = Namespace + "setor"

	// PropPorte is the Reviewer's size category.
	PropPorte = Namespace + "porte"

	// PropFrequencia is the Reviewer's usage frequency.
	PropFrequencia = Namespace + "frequencia"

	// PropFrequenciaComplementar is the Reviewer's supplementary frequency.
	PropFrequenciaComplementar = Namespace + "frequencia_complementar"
)

// Standard vocabulary IRIs used by schema declarations and serialization.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	DCNamespace   = "http://purl.org/dc/terms/"

	RDFType = RDFNamespace + "type"

	RDFSDomain = RDFSNamespace + "domain"
	RDFSRange  = RDFSNamespace + "range"

	OWLClass            = OWLNamespace + "Class"
	OWLObjectProperty   = OWLNamespace + "ObjectProperty"
	OWLDatatypeProperty = OWLNamespace + "DatatypeProperty"
	OWLOntology         = OWLNamespace + "Ontology"

	XSDString   = XSDNamespace + "string"
	XSDDate     = XSDNamespace + "date"
	XSDDateTime = XSDNamespace + "dateTime"

	DCCreated    = DCNamespace + "created"
	DCIdentifier = DCNamespace + "identifier"
)

// StandardPrefixes returns the namespace prefixes used in serialized output.
func StandardPrefixes() map[string]string {
	return map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"owl":  OWLNamespace,
		"xsd":  XSDNamespace,
		"dc":   DCNamespace,
		Prefix: Namespace,
	}
}
