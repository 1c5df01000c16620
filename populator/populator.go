// Package populator converts survey rows about software reviews into typed
// triples in an in-memory ontology graph.
//
// A Populator owns all mutable state of one run: the graph, the reviewer
// deduplication cache, and the row counter. Nothing is shared between
// instances and nothing is persisted across runs. Rows are processed
// strictly sequentially; a failing row is logged and skipped without
// rolling back triples already emitted for it.
package populator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontopop/graph"
	"github.com/c360studio/ontopop/source"
	"github.com/c360studio/ontopop/vocabulary/review"
)

// DateLayout is the expected format of the data_avaliacao column.
const DateLayout = "2006-01-02"

// Options configures a Populator.
type Options struct {
	// StrictDates treats an unparseable data_avaliacao as a row-level
	// error. When false (the default) the processing date is substituted
	// silently, matching the behavior of earlier survey imports.
	StrictDates bool

	// Logger receives row-level errors. Defaults to slog.Default().
	Logger *slog.Logger

	// Now supplies the processing time for date substitution and the
	// ontology header. Defaults to time.Now.
	Now func() time.Time
}

// Populator builds the review ontology from survey rows.
type Populator struct {
	graph     *graph.Graph
	reviewers map[reviewerKey]string
	rows      int

	runID       string
	strictDates bool
	logger      *slog.Logger
	now         func() time.Time
}

// Stats holds the entity counts of a populated graph.
type Stats struct {
	Software  int
	Reviews   int
	Reviewers int
}

type reviewerKey struct {
	setor                  string
	porte                  string
	frequencia             string
	frequenciaComplementar string
}

// New creates a Populator with the schema triples already declared.
func New(opts Options) *Populator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	p := &Populator{
		graph:       graph.New(),
		reviewers:   make(map[reviewerKey]string),
		runID:       uuid.New().String(),
		strictDates: opts.StrictDates,
		logger:      opts.Logger,
		now:         opts.Now,
	}
	p.initializeSchema()
	return p
}

// initializeSchema declares the ontology header, classes, and properties.
// Called exactly once, from New.
func (p *Populator) initializeSchema() {
	p.graph.Add(graph.Triple{
		Subject:   review.OntologyIRI,
		Predicate: review.RDFType,
		Object:    graph.IRI(review.OWLOntology),
	})
	p.graph.Add(graph.Triple{
		Subject:   review.OntologyIRI,
		Predicate: review.DCIdentifier,
		Object:    graph.Literal(p.runID),
	})
	p.graph.Add(graph.Triple{
		Subject:   review.OntologyIRI,
		Predicate: review.DCCreated,
		Object:    graph.TypedLiteral(p.now().UTC().Format(time.RFC3339), review.XSDDateTime),
	})

	for _, class := range review.Classes {
		p.graph.Add(graph.Triple{
			Subject:   class,
			Predicate: review.RDFType,
			Object:    graph.IRI(review.OWLClass),
		})
	}

	for _, prop := range review.ObjectProperties {
		p.graph.Add(graph.Triple{Subject: prop.IRI, Predicate: review.RDFType, Object: graph.IRI(review.OWLObjectProperty)})
		p.graph.Add(graph.Triple{Subject: prop.IRI, Predicate: review.RDFSDomain, Object: graph.IRI(prop.Domain)})
		p.graph.Add(graph.Triple{Subject: prop.IRI, Predicate: review.RDFSRange, Object: graph.IRI(prop.Range)})
	}

	for _, prop := range review.DatatypeProperties {
		p.graph.Add(graph.Triple{Subject: prop.IRI, Predicate: review.RDFType, Object: graph.IRI(review.OWLDatatypeProperty)})
		p.graph.Add(graph.Triple{Subject: prop.IRI, Predicate: review.RDFSDomain, Object: graph.IRI(prop.Domain)})
		p.graph.Add(graph.Triple{Subject: prop.IRI, Predicate: review.RDFSRange, Object: graph.IRI(prop.Datatype)})
	}
}

// ProcessFile ingests one input file. Failure to open the file is fatal to
// the run; row-level failures are logged and skipped.
func (p *Populator) ProcessFile(path string, opts ...source.Option) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return p.Process(source.NewReader(f, opts...))
}

// Process ingests rows from r until EOF. Row numbering continues across
// calls, so reviews stay uniquely identified over multiple input files.
func (p *Populator) Process(r *source.Reader) error {
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}

		p.rows++
		if err != nil {
			p.logger.Error("row skipped", "row", p.rows, "error", err)
			continue
		}
		if err := p.processRow(p.rows, row); err != nil {
			p.logger.Error("row skipped", "row", p.rows, "error", err)
		}
	}
}

// processRow emits the triples for one survey row. Triples emitted before a
// failure are kept; there is no per-row rollback.
func (p *Populator) processRow(rowNum int, row source.Row) error {
	softwareID, err := row.Require("software_id")
	if err != nil {
		return err
	}
	name := row.Get("name")
	if name == "" {
		name = fmt.Sprintf("Software %s", softwareID)
	}
	softwareIRI := p.getOrCreateSoftware(softwareID, name, row.Get("pagina"))

	reviewerIRI, err := p.resolveReviewer(row)
	if err != nil {
		return err
	}

	reviewIRI := fmt.Sprintf("%sreview_%d", review.Namespace, rowNum)

	dateValue, err := row.Require("data_avaliacao")
	if err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, dateValue)
	if err != nil {
		if p.strictDates {
			return fmt.Errorf("invalid data_avaliacao %q: %w", dateValue, err)
		}
		date = p.now()
	}

	p.graph.Add(graph.Triple{Subject: reviewIRI, Predicate: review.RDFType, Object: graph.IRI(review.ClassReview)})

	required := []struct {
		field     string
		predicate string
	}{
		{"fonte", review.PropFonte},
		{"recomendacao", review.PropRecomendacao},
	}
	for _, attr := range required {
		value, err := row.Require(attr.field)
		if err != nil {
			return err
		}
		p.graph.Add(graph.Triple{Subject: reviewIRI, Predicate: attr.predicate, Object: graph.Literal(value)})
	}

	p.graph.Add(graph.Triple{
		Subject:   reviewIRI,
		Predicate: review.PropDataAvaliacao,
		Object:    graph.TypedLiteral(date.Format(DateLayout), review.XSDDate),
	})

	required = []struct {
		field     string
		predicate string
	}{
		{"comentario", review.PropComentario},
		{"vantagem", review.PropVantagem},
		{"desvantagem", review.PropDesvantagem},
	}
	for _, attr := range required {
		value, err := row.Require(attr.field)
		if err != nil {
			return err
		}
		p.graph.Add(graph.Triple{Subject: reviewIRI, Predicate: attr.predicate, Object: graph.Literal(value)})
	}

	if v := row.Get("sft_anterior"); v != "" {
		p.graph.Add(graph.Triple{Subject: reviewIRI, Predicate: review.PropSftAnterior, Object: graph.Literal(v)})
	}
	if v := row.Get("motivo_mudanca"); v != "" {
		p.graph.Add(graph.Triple{Subject: reviewIRI, Predicate: review.PropMotivoMudanca, Object: graph.Literal(v)})
	}

	p.graph.Add(graph.Triple{Subject: softwareIRI, Predicate: review.PropHasReview, Object: graph.IRI(reviewIRI)})
	p.graph.Add(graph.Triple{Subject: reviewIRI, Predicate: review.PropMadeBy, Object: graph.IRI(reviewerIRI)})

	return nil
}

// resolveReviewer reads the four identity attributes and returns the IRI of
// the Reviewer representing that exact tuple.
func (p *Populator) resolveReviewer(row source.Row) (string, error) {
	setor, err := row.Require("setor")
	if err != nil {
		return "", err
	}
	porte, err := row.Require("porte")
	if err != nil {
		return "", err
	}
	frequencia, err := row.Require("frequencia")
	if err != nil {
		return "", err
	}
	frequenciaComplementar, err := row.Require("frequencia_complementar")
	if err != nil {
		return "", err
	}

	return p.getOrCreateReviewer(setor, porte, frequencia, frequenciaComplementar), nil
}

// getOrCreateReviewer returns the IRI for the attribute tuple, minting a new
// sequential reviewer and emitting its triples on first encounter. The cache
// is unbounded; the tuple space is small relative to the row count.
func (p *Populator) getOrCreateReviewer(setor, porte, frequencia, frequenciaComplementar string) string {
	key := reviewerKey{setor, porte, frequencia, frequenciaComplementar}
	if iri, ok := p.reviewers[key]; ok {
		return iri
	}

	iri := fmt.Sprintf("%sreviewer_%d", review.Namespace, len(p.reviewers)+1)

	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.RDFType, Object: graph.IRI(review.ClassReviewer)})
	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropSetor, Object: graph.Literal(setor)})
	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropPorte, Object: graph.Literal(porte)})
	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropFrequencia, Object: graph.Literal(frequencia)})
	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropFrequenciaComplementar, Object: graph.Literal(frequenciaComplementar)})

	p.reviewers[key] = iri
	return iri
}

// getOrCreateSoftware returns the deterministic IRI for softwareID, emitting
// its triples on first encounter. Later rows with the same id keep the first
// row's name and pagina.
func (p *Populator) getOrCreateSoftware(softwareID, name, pagina string) string {
	iri := fmt.Sprintf("%ssoftware_%s", review.Namespace, softwareID)

	if p.graph.HasType(iri, review.ClassSoftware) {
		return iri
	}

	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.RDFType, Object: graph.IRI(review.ClassSoftware)})
	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropSoftwareID, Object: graph.Literal(softwareID)})
	p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropName, Object: graph.Literal(name)})
	if pagina != "" {
		p.graph.Add(graph.Triple{Subject: iri, Predicate: review.PropPagina, Object: graph.Literal(pagina)})
	}

	return iri
}

// Graph returns the populated graph.
func (p *Populator) Graph() *graph.Graph {
	return p.graph
}

// RunID returns the identifier attached to this run's ontology header.
func (p *Populator) RunID() string {
	return p.runID
}

// Stats counts the typed entity instances in the graph.
func (p *Populator) Stats() Stats {
	return Stats{
		Software:  len(p.graph.SubjectsOfType(review.ClassSoftware)),
		Reviews:   len(p.graph.SubjectsOfType(review.ClassReview)),
		Reviewers: len(p.graph.SubjectsOfType(review.ClassReviewer)),
	}
}
