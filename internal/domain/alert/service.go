package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

type Service struct {
	alerts Repository
}

func NewService(repo Repository) *Service {
	return &Service{alerts: repo}
}

var ErrNotFound = fmt.Errorf("alert not found")

// ListForPatient returns a patient's alerts newest first.
func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID, unackOnly bool) ([]*View, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	items, err := s.alerts.ListByPatient(ctx, patientID, unackOnly)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*View{}
	}
	return items, nil
}

// ListPending returns unacknowledged alerts across all patients for the
// clinician dashboard.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]*View, error) {
	items, err := s.alerts.ListUnacknowledged(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*View{}
	}
	return items, nil
}

// Acknowledge marks one alert as handled by the given clinician.
// Acknowledging an alert that is already acknowledged is a no-op success
// that returns the row with the original acknowledger intact; a missing
// alert is ErrNotFound.
func (s *Service) Acknowledge(ctx context.Context, id, byUserID uuid.UUID) (*Alert, error) {
	a, err := s.alerts.AcknowledgePending(ctx, id, byUserID)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return a, nil
	}
	existing, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return existing, nil
}

// AcknowledgePair marks every pending alert for (patient, type) as handled
// and returns the updated rows. Already-acknowledged rows are untouched;
// an empty result is a valid outcome.
func (s *Service) AcknowledgePair(ctx context.Context, patientID uuid.UUID, mt measurement.Type, byUserID uuid.UUID) ([]*Alert, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if !measurement.ValidType(mt) {
		return nil, fmt.Errorf("invalid measurement type: %s", mt)
	}
	items, err := s.alerts.AcknowledgeByPatientAndType(ctx, patientID, mt, byUserID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Alert{}
	}
	return items, nil
}
