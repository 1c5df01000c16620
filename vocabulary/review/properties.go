package review

// ObjectProperty describes an object property declaration with its
// rdfs:domain and rdfs:range classes.
type ObjectProperty struct {
	IRI    string
	Domain string
	Range  string
}

// DatatypeProperty describes a datatype property declaration with its
// rdfs:domain class and literal rdfs:range datatype.
type DatatypeProperty struct {
	IRI      string
	Domain   string
	Datatype string
}

// Classes lists the ontology classes in declaration order.
var Classes = []string{
	ClassSoftware,
	ClassReview,
	ClassReviewer,
}

// ObjectProperties lists the object property declarations.
var ObjectProperties = []ObjectProperty{
	{IRI: PropHasReview, Domain: ClassSoftware, Range: ClassReview},
	{IRI: PropMadeBy, Domain: ClassReview, Range: ClassReviewer},
}

// DatatypeProperties lists the datatype property declarations. Every
// property is string-valued except data_avaliacao, which is a calendar date.
var DatatypeProperties = []DatatypeProperty{
	{IRI: PropSoftwareID, Domain: ClassSoftware, Datatype: XSDString},
	{IRI: PropName, Domain: ClassSoftware, Datatype: XSDString},
	{IRI: PropPagina, Domain: ClassSoftware, Datatype: XSDString},
	{IRI: PropFonte, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropRecomendacao, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropDataAvaliacao, Domain: ClassReview, Datatype: XSDDate},
	{IRI: PropComentario, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropVantagem, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropDesvantagem, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropSftAnterior, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropMotivoMudanca, Domain: ClassReview, Datatype: XSDString},
	{IRI: PropSetor, Domain: ClassReviewer, Datatype: XSDString},
	{IRI: PropPorte, Domain: ClassReviewer, Datatype: XSDString},
	{IRI: PropFrequencia, Domain: ClassReviewer, Datatype: XSDString},
	{IRI: PropFrequenciaComplementar, Domain: ClassReviewer, Datatype: XSDString},
}
