package treatment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	treatments Repository
}

func NewService(repo Repository) *Service {
	return &Service{treatments: repo}
}

var ErrNotFound = fmt.Errorf("treatment not found")

func (s *Service) Prescribe(ctx context.Context, t *Treatment) error {
	if err := validate(t); err != nil {
		return err
	}
	return s.treatments.Create(ctx, t)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Treatment, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	items, err := s.treatments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Treatment{}
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, t *Treatment) error {
	if t.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	if err := validate(t); err != nil {
		return err
	}
	ok, err := s.treatments.Update(ctx, t)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.treatments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validate(t *Treatment) error {
	t.Medication = strings.TrimSpace(t.Medication)
	t.Dosage = strings.TrimSpace(t.Dosage)
	t.Frequency = strings.TrimSpace(t.Frequency)
	if t.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if t.Medication == "" || t.Dosage == "" || t.Frequency == "" {
		return fmt.Errorf("medication, dosage and frequency are required")
	}
	return nil
}
