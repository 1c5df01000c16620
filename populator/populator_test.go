package populator

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontopop/graph"
	"github.com/c360studio/ontopop/source"
	"github.com/c360studio/ontopop/vocabulary/review"
)

const fullHeader = "software_id,name,pagina,setor,porte,frequencia,frequencia_complementar," +
	"fonte,recomendacao,data_avaliacao,comentario,vantagem,desvantagem,sft_anterior,motivo_mudanca"

func fixedNow() time.Time {
	return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
}

func newTestPopulator(t *testing.T, opts Options) *Populator {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	return New(opts)
}

func ingest(t *testing.T, p *Populator, rows ...string) {
	t.Helper()
	input := fullHeader + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, p.Process(source.NewReader(strings.NewReader(input))))
}

func row(id, name, setor, date string) string {
	return fmt.Sprintf("%s,%s,,%s,small,daily,weekly,survey,yes,%s,good,fast,pricey,,", id, name, setor, date)
}

func TestSchemaDeclaredOnce(t *testing.T) {
	p := newTestPopulator(t, Options{})

	classes := p.Graph().SubjectsOfType(review.OWLClass)
	assert.Len(t, classes, 3)
	assert.Len(t, p.Graph().SubjectsOfType(review.OWLObjectProperty), 2)
	assert.Len(t, p.Graph().SubjectsOfType(review.OWLDatatypeProperty), 15)
	assert.Len(t, p.Graph().SubjectsOfType(review.OWLOntology), 1)

	schemaSize := p.Graph().Len()

	// Processing rows must never duplicate schema triples.
	ingest(t, p, row("sw1", "LibreOffice", "education", "2024-03-01"))
	assert.Len(t, p.Graph().SubjectsOfType(review.OWLClass), 3)
	assert.Greater(t, p.Graph().Len(), schemaSize)
}

func TestEmptyInputYieldsSchemaOnly(t *testing.T) {
	p := newTestPopulator(t, Options{})
	schemaSize := p.Graph().Len()

	require.NoError(t, p.Process(source.NewReader(strings.NewReader(fullHeader+"\n"))))

	assert.Equal(t, schemaSize, p.Graph().Len())
	assert.Equal(t, Stats{}, p.Stats())
}

func TestSoftwareFirstRowWins(t *testing.T) {
	p := newTestPopulator(t, Options{})
	ingest(t, p,
		"sw1,LibreOffice,https://libreoffice.org,education,small,daily,weekly,survey,yes,2024-03-01,good,fast,pricey,,",
		"sw1,RenamedOffice,https://other.example,education,small,daily,weekly,survey,no,2024-03-02,bad,slow,cheap,,",
	)

	stats := p.Stats()
	assert.Equal(t, 1, stats.Software)
	assert.Equal(t, 2, stats.Reviews)

	softwareIRI := review.Namespace + "software_sw1"
	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   softwareIRI,
		Predicate: review.PropName,
		Object:    graph.Literal("LibreOffice"),
	}))
	assert.False(t, p.Graph().Has(graph.Triple{
		Subject:   softwareIRI,
		Predicate: review.PropName,
		Object:    graph.Literal("RenamedOffice"),
	}))
	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   softwareIRI,
		Predicate: review.PropPagina,
		Object:    graph.Literal("https://libreoffice.org"),
	}))
}

func TestSoftwareNameDefaultsToSynthesizedLabel(t *testing.T) {
	p := newTestPopulator(t, Options{})
	ingest(t, p, row("sw9", "", "health", "2024-03-01"))

	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   review.Namespace + "software_sw9",
		Predicate: review.PropName,
		Object:    graph.Literal("Software sw9"),
	}))
}

func TestReviewerTupleDeduplication(t *testing.T) {
	p := newTestPopulator(t, Options{})
	ingest(t, p,
		row("sw1", "A", "education", "2024-03-01"),
		row("sw2", "B", "education", "2024-03-02"),
		row("sw3", "C", "health", "2024-03-03"),
	)

	stats := p.Stats()
	assert.Equal(t, 3, stats.Reviews)
	assert.Equal(t, 2, stats.Reviewers)

	// Rows 1 and 2 share the tuple, so both reviews point at reviewer_1.
	sharedReviewer := graph.IRI(review.Namespace + "reviewer_1")
	for _, n := range []int{1, 2} {
		assert.True(t, p.Graph().Has(graph.Triple{
			Subject:   fmt.Sprintf("%sreview_%d", review.Namespace, n),
			Predicate: review.PropMadeBy,
			Object:    sharedReviewer,
		}), "review_%d should be made by reviewer_1", n)
	}
	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   review.Namespace + "review_3",
		Predicate: review.PropMadeBy,
		Object:    graph.IRI(review.Namespace + "reviewer_2"),
	}))
}

func TestOneReviewPerRowWithOwnAttributes(t *testing.T) {
	p := newTestPopulator(t, Options{})
	ingest(t, p,
		"sw1,A,,education,small,daily,weekly,form,yes,2024-01-01,first comment,adv1,dis1,,",
		"sw1,A,,education,small,daily,weekly,form,no,2024-02-02,second comment,adv2,dis2,OldTool,too slow",
	)

	assert.Equal(t, 2, p.Stats().Reviews)

	review1 := review.Namespace + "review_1"
	review2 := review.Namespace + "review_2"

	assert.True(t, p.Graph().Has(graph.Triple{Subject: review1, Predicate: review.PropComentario, Object: graph.Literal("first comment")}))
	assert.False(t, p.Graph().Has(graph.Triple{Subject: review1, Predicate: review.PropComentario, Object: graph.Literal("second comment")}))
	assert.True(t, p.Graph().Has(graph.Triple{Subject: review2, Predicate: review.PropSftAnterior, Object: graph.Literal("OldTool")}))
	assert.True(t, p.Graph().Has(graph.Triple{Subject: review2, Predicate: review.PropMotivoMudanca, Object: graph.Literal("too slow")}))

	// Optional columns left empty emit nothing.
	for _, tr := range p.Graph().Subject(review1) {
		assert.NotEqual(t, review.PropSftAnterior, tr.Predicate)
		assert.NotEqual(t, review.PropMotivoMudanca, tr.Predicate)
	}

	// Both reviews hang off the same software.
	softwareIRI := review.Namespace + "software_sw1"
	assert.True(t, p.Graph().Has(graph.Triple{Subject: softwareIRI, Predicate: review.PropHasReview, Object: graph.IRI(review1)}))
	assert.True(t, p.Graph().Has(graph.Triple{Subject: softwareIRI, Predicate: review.PropHasReview, Object: graph.IRI(review2)}))
}

func TestInvalidDateSubstitutesProcessingDate(t *testing.T) {
	p := newTestPopulator(t, Options{})
	ingest(t, p, row("sw1", "A", "education", "2024-13-40"))

	assert.Equal(t, 1, p.Stats().Reviews)
	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   review.Namespace + "review_1",
		Predicate: review.PropDataAvaliacao,
		Object:    graph.TypedLiteral("2026-08-23", review.XSDDate),
	}))
}

func TestInvalidDateStrictModeSkipsRow(t *testing.T) {
	p := newTestPopulator(t, Options{StrictDates: true})
	ingest(t, p,
		row("sw1", "A", "education", "2024-13-40"),
		row("sw2", "B", "health", "2024-03-01"),
	)

	stats := p.Stats()
	assert.Equal(t, 1, stats.Reviews)
	// Software and reviewer for the bad row were resolved before the date
	// failed; they stay in the graph (no per-row rollback).
	assert.Equal(t, 2, stats.Software)

	// Row numbering still reflects input position.
	assert.True(t, p.Graph().HasType(review.Namespace+"review_2", review.ClassReview))
	assert.False(t, p.Graph().HasType(review.Namespace+"review_1", review.ClassReview))
}

func TestMissingRequiredColumnSkipsRowAndContinues(t *testing.T) {
	// Header without software_id: every row fails its first lookup and
	// emits nothing at all.
	header := "setor,porte,frequencia,frequencia_complementar,fonte,recomendacao,data_avaliacao,comentario,vantagem,desvantagem"
	input := header + "\neducation,small,daily,weekly,survey,yes,2024-03-01,good,fast,pricey\n"

	p := newTestPopulator(t, Options{})
	schemaSize := p.Graph().Len()
	require.NoError(t, p.Process(source.NewReader(strings.NewReader(input))))

	assert.Equal(t, schemaSize, p.Graph().Len())
	assert.Equal(t, Stats{}, p.Stats())
}

func TestRowNumberingContinuesAcrossReaders(t *testing.T) {
	p := newTestPopulator(t, Options{})
	ingest(t, p, row("sw1", "A", "education", "2024-03-01"))
	ingest(t, p, row("sw2", "B", "health", "2024-03-02"))

	assert.True(t, p.Graph().HasType(review.Namespace+"review_2", review.ClassReview))
	assert.Equal(t, 2, p.Stats().Reviews)
}

func TestOntologyHeaderCarriesRunID(t *testing.T) {
	p := newTestPopulator(t, Options{})

	require.NotEmpty(t, p.RunID())
	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   review.OntologyIRI,
		Predicate: review.DCIdentifier,
		Object:    graph.Literal(p.RunID()),
	}))
	assert.True(t, p.Graph().Has(graph.Triple{
		Subject:   review.OntologyIRI,
		Predicate: review.DCCreated,
		Object:    graph.TypedLiteral("2026-08-23T12:00:00Z", review.XSDDateTime),
	}))
}
