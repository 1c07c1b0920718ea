package threshold

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/db"
)

// AlertCleaner removes pending alerts for a pair whose threshold is being
// deleted. Implemented by the alert repository; wired in main to avoid an
// import cycle with the alert package.
type AlertCleaner interface {
	DeleteUnacknowledgedByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error
}

type Service struct {
	thresholds Repository
	alerts     AlertCleaner
	tx         db.TxRunner
}

func NewService(repo Repository) *Service {
	return &Service{thresholds: repo}
}

// SetAlertCleaner attaches pending-alert cleanup for threshold deletion.
func (s *Service) SetAlertCleaner(ac AlertCleaner) { s.alerts = ac }

// SetTxRunner makes Delete run its two statements in one transaction.
func (s *Service) SetTxRunner(tx db.TxRunner) { s.tx = tx }

// ErrNotFound is returned when an operation references a missing threshold.
var ErrNotFound = fmt.Errorf("threshold not found")

// Set creates or replaces the threshold for (patient, type). The caller must
// already be authorized as a clinician; providerID records who set it.
func (s *Service) Set(ctx context.Context, t *Threshold, providerID uuid.UUID) error {
	if t.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	def, ok := measurement.Lookup(t.MeasurementType)
	if !ok {
		return fmt.Errorf("invalid measurement type: %s", t.MeasurementType)
	}

	normalizeBound(&t.MinValue)
	normalizeBound(&t.MaxValue)
	normalizeBound(&t.MinValue2)
	normalizeBound(&t.MaxValue2)

	if !t.HasBounds() && (t.Notes == nil || *t.Notes == "") {
		return fmt.Errorf("at least one bound or notes is required")
	}
	if !def.Numeric() && t.HasBounds() {
		return fmt.Errorf("bounds are not supported for %s", t.MeasurementType)
	}
	if def.Kind != measurement.KindDouble && (t.MinValue2 != nil || t.MaxValue2 != nil) {
		return fmt.Errorf("secondary bounds are only valid for %s", measurement.TypeBloodPressure)
	}

	min, err := parseBound(t.MinValue, "min_value")
	if err != nil {
		return err
	}
	max, err := parseBound(t.MaxValue, "max_value")
	if err != nil {
		return err
	}
	min2, err := parseBound(t.MinValue2, "min_value2")
	if err != nil {
		return err
	}
	max2, err := parseBound(t.MaxValue2, "max_value2")
	if err != nil {
		return err
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("min_value must not exceed max_value")
	}
	if min2 != nil && max2 != nil && *min2 > *max2 {
		return fmt.Errorf("min_value2 must not exceed max_value2")
	}

	t.ProviderID = &providerID
	return s.thresholds.Upsert(ctx, t)
}

// List returns a patient's thresholds, optionally filtered to one type.
// Returns an empty slice when nothing is configured: callers treat "no
// threshold" as "never critical".
func (s *Service) List(ctx context.Context, patientID uuid.UUID, mt measurement.Type) ([]*Threshold, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if mt != "" {
		if !measurement.ValidType(mt) {
			return nil, fmt.Errorf("invalid measurement type: %s", mt)
		}
		t, err := s.thresholds.Find(ctx, patientID, mt)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return []*Threshold{}, nil
		}
		return []*Threshold{t}, nil
	}
	items, err := s.thresholds.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Threshold{}
	}
	return items, nil
}

// Delete removes the threshold for (patient, type) and clears that pair's
// unacknowledged alerts in the same transaction, so removing a check does
// not strand stale critical alerts. Acknowledged alerts stay as history.
func (s *Service) Delete(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error {
	if patientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if !measurement.ValidType(mt) {
		return fmt.Errorf("invalid measurement type: %s", mt)
	}
	return s.tx.Run(ctx, func(ctx context.Context) error {
		deleted, err := s.thresholds.Delete(ctx, patientID, mt)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		if s.alerts != nil {
			return s.alerts.DeleteUnacknowledgedByPatientAndType(ctx, patientID, mt)
		}
		return nil
	})
}

func normalizeBound(v **string) {
	if *v == nil {
		return
	}
	trimmed := strings.TrimSpace(**v)
	if trimmed == "" {
		*v = nil
		return
	}
	*v = &trimmed
}

func parseBound(v *string, field string) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a decimal number: %s", field, *v)
	}
	return &f, nil
}
