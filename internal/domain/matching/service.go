package matching

import (
	"context"
	"fmt"
	"time"

	"pet-shelter-adoption/internal/domain/animals"
	"pet-shelter-adoption/internal/platform/logger"
	"pet-shelter-adoption/internal/platform/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "pet-shelter-adoption/matching"

// CatalogSource provee el catálogo completo (lo implementa animals.Service).
type CatalogSource interface {
	ListAll(ctx context.Context) ([]animals.Animal, error)
}

type Service struct {
	catalog CatalogSource
	log     logger.Logger
	now     func() time.Time
}

func NewService(catalog CatalogSource, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		catalog: catalog,
		log:     log.With(map[string]any{"component": "matching"}),
		now:     time.Now,
	}
}

// Run es el resultado de una corrida del cuestionario. No se persiste.
type Run struct {
	ID         string
	ComputedAt time.Time
	Answers    AnswerSet
	Matches    []ScoredMatch
}

// Match carga el catálogo y corre el motor.
// El único error posible viene del catálogo, no del motor.
func (s *Service) Match(ctx context.Context, answers AnswerSet) (Run, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "matching.Match")
	defer span.End()

	start := s.now()
	defer func() {
		metrics.MatchDuration.Observe(time.Since(start).Seconds())
	}()

	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		metrics.MatchRunsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog load failed")
		s.log.Error("catalog load failed", map[string]any{"error": err})
		return Run{}, fmt.Errorf("load catalog: %w", err)
	}

	matches := ComputeMatches(answers, catalog)

	run := Run{
		ID:         uuid.NewString(),
		ComputedAt: s.now(),
		Answers:    answers,
		Matches:    matches,
	}

	span.SetAttributes(
		attribute.String("matching.run_id", run.ID),
		attribute.Int("matching.catalog_size", len(catalog)),
		attribute.Int("matching.candidates", len(matches)),
		attribute.Int("matching.answered", answers.AnsweredCount()),
	)
	metrics.MatchRunsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.MatchCandidates.Observe(float64(len(matches)))

	fields := map[string]any{
		"run_id":       run.ID,
		"catalog_size": len(catalog),
		"candidates":   len(matches),
		"answered":     answers.AnsweredCount(),
	}
	if len(matches) > 0 {
		fields["top_animal_id"] = matches[0].Animal.ID
		fields["top_percentage"] = matches[0].MatchPercentage
	}
	s.log.Info("match run computed", fields)

	return run, nil
}
