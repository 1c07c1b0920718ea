package measurement

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Evaluator reconciles the alert set for a patient and measurement type after
// a new reading lands. Implemented by the alert package.
type Evaluator interface {
	Evaluate(ctx context.Context, m *Measurement) error
}

type Service struct {
	measurements Repository
	evaluator    Evaluator
	log          zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{measurements: repo, log: log}
}

// SetEvaluator attaches the post-ingest alert evaluator.
func (s *Service) SetEvaluator(e Evaluator) {
	s.evaluator = e
}

// Record validates and persists one measurement, then runs threshold
// evaluation. The measurement is retained even when evaluation fails:
// alerting is a side effect and must never fail the submission.
func (s *Service) Record(ctx context.Context, m *Measurement) error {
	if m.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	def, ok := Lookup(m.Type)
	if !ok {
		return fmt.Errorf("invalid measurement type: %s", m.Type)
	}
	m.Value1 = strings.TrimSpace(m.Value1)
	if m.Value1 == "" {
		return fmt.Errorf("value1 is required")
	}

	switch def.Kind {
	case KindDouble:
		if m.Value2 == nil || strings.TrimSpace(*m.Value2) == "" {
			return fmt.Errorf("value2 is required for %s", m.Type)
		}
		v2 := strings.TrimSpace(*m.Value2)
		m.Value2 = &v2
		if _, err := strconv.ParseFloat(m.Value1, 64); err != nil {
			return fmt.Errorf("value1 must be numeric: %s", m.Value1)
		}
		if _, err := strconv.ParseFloat(v2, 64); err != nil {
			return fmt.Errorf("value2 must be numeric: %s", v2)
		}
	case KindSingle:
		// value2 is ignored for single-component types even when supplied
		m.Value2 = nil
		if _, err := strconv.ParseFloat(m.Value1, 64); err != nil {
			return fmt.Errorf("value1 must be numeric: %s", m.Value1)
		}
	case KindText:
		m.Value2 = nil
	}

	if err := s.measurements.Create(ctx, m); err != nil {
		return err
	}

	if s.evaluator != nil {
		if err := s.evaluator.Evaluate(ctx, m); err != nil {
			s.log.Error().Err(err).
				Str("measurement_id", m.ID.String()).
				Str("patient_id", m.UserID.String()).
				Str("type", string(m.Type)).
				Msg("threshold evaluation failed")
		}
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Measurement, error) {
	return s.measurements.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Measurement, int, error) {
	return s.measurements.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) ListByUserAndType(ctx context.Context, userID uuid.UUID, t Type, limit, offset int) ([]*Measurement, int, error) {
	if !ValidType(t) {
		return nil, 0, fmt.Errorf("invalid measurement type: %s", t)
	}
	return s.measurements.ListByUserAndType(ctx, userID, t, limit, offset)
}
