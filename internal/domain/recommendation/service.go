package recommendation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	recommendations Repository
}

func NewService(repo Repository) *Service {
	return &Service{recommendations: repo}
}

var ErrNotFound = fmt.Errorf("recommendation not found")

func (s *Service) Create(ctx context.Context, r *Recommendation) error {
	r.Description = strings.TrimSpace(r.Description)
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	return s.recommendations.Create(ctx, r)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Recommendation, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	items, err := s.recommendations.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Recommendation{}
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.recommendations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
