package schema

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"time"

	"udyam/internal/domain"
	"udyam/internal/platform/metrics"
	"udyam/internal/schema/extractor"
	"udyam/internal/schema/store"
)

// Service orchestrates one extraction run and serves the published schema.
// A run is one-shot and idempotent: fetch a snapshot, extract, normalize,
// publish wholesale. Nothing is published when any stage fails.
type Service struct {
	source       extractor.Source
	store        store.Store
	logger       *slog.Logger
	metrics      *metrics.Metrics
	snapshotPath string
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithSnapshot serves a bundled schema JSON file when the store has nothing
// published.
func WithSnapshot(path string) Option {
	return func(s *Service) { s.snapshotPath = path }
}

func NewService(source extractor.Source, st store.Store, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{source: source, store: st, logger: logger, metrics: m}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh runs the extraction pipeline against the configured source and
// publishes the result. Returns the published steps.
func (s *Service) Refresh(ctx context.Context) ([]domain.StepSchema, error) {
	start := time.Now()

	doc, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	fields := extractor.Extract(doc)
	steps, err := Normalize(fields)
	if err != nil {
		return nil, err
	}

	if err := s.store.Publish(ctx, steps); err != nil {
		return nil, err
	}

	total := 0
	categories := map[domain.Category]int{}
	for _, step := range steps {
		total += len(step.Fields)
		for _, f := range step.Fields {
			categories[f.Category]++
		}
	}
	if s.metrics != nil {
		s.metrics.ScrapeDuration.Observe(time.Since(start).Seconds())
		s.metrics.SchemaFieldsExtracted.Set(float64(total))
	}
	s.logger.InfoContext(ctx, "schema published",
		"steps", len(steps),
		"fields", total,
		"categories", len(categories),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return steps, nil
}

// Steps returns the most recently published schema. When nothing was
// published or the store is unreachable it falls back to the bundled snapshot
// file, then to the canonical default, so the registration API stays
// serviceable without a scrape run.
func (s *Service) Steps(ctx context.Context) ([]domain.StepSchema, error) {
	steps, err := s.store.Latest(ctx)
	if err == nil {
		return steps, nil
	}
	if snap, snapErr := s.loadSnapshot(); snapErr == nil {
		s.logger.DebugContext(ctx, "serving snapshot schema", "path", s.snapshotPath, "reason", err.Error())
		return snap, nil
	}
	s.logger.DebugContext(ctx, "serving default schema", "reason", err.Error())
	return DefaultSteps(), nil
}

func (s *Service) loadSnapshot() ([]domain.StepSchema, error) {
	if s.snapshotPath == "" {
		return nil, errors.New("no snapshot configured")
	}
	raw, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		return nil, err
	}
	var steps []domain.StepSchema
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, errors.New("snapshot holds no steps")
	}
	return steps, nil
}
