package alert

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

func seedAlert(repo *mockAlertRepo, patient uuid.UUID, mt measurement.Type, acknowledged bool) *Alert {
	m := &measurement.Measurement{ID: uuid.New(), UserID: patient, Type: mt, Value1: "200"}
	repo.trackMeasurement(m)
	a := &Alert{PatientID: patient, MeasurementID: m.ID, Status: StatusCritical, Message: "x", Acknowledged: acknowledged}
	_ = repo.Create(context.Background(), a)
	return a
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	repo := newMockAlertRepo()
	svc := NewService(repo)
	a := seedAlert(repo, uuid.New(), measurement.TypePulse, false)
	firstClinician := uuid.New()

	first, err := svc.Acknowledge(context.Background(), a.ID, firstClinician)
	if err != nil {
		t.Fatalf("first acknowledge: %v", err)
	}
	if !first.Acknowledged || first.AcknowledgedBy == nil || *first.AcknowledgedBy != firstClinician {
		t.Error("expected acknowledged with acknowledger recorded")
	}

	// Second call no-ops: acknowledger from the first call is preserved.
	second, err := svc.Acknowledge(context.Background(), a.ID, uuid.New())
	if err != nil {
		t.Fatalf("second acknowledge should succeed: %v", err)
	}
	if !second.Acknowledged {
		t.Error("expected acknowledged state preserved on repeat call")
	}
	if second.AcknowledgedBy == nil || *second.AcknowledgedBy != firstClinician {
		t.Error("repeat acknowledge must not overwrite the original acknowledger")
	}
}

func TestAcknowledgeMissingAlert(t *testing.T) {
	svc := NewService(newMockAlertRepo())
	_, err := svc.Acknowledge(context.Background(), uuid.New(), uuid.New())
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAcknowledgePair(t *testing.T) {
	repo := newMockAlertRepo()
	svc := NewService(repo)
	patient := uuid.New()
	clinician := uuid.New()
	seedAlert(repo, patient, measurement.TypePulse, false)
	seedAlert(repo, patient, measurement.TypePulse, true)
	seedAlert(repo, patient, measurement.TypeGlucose, false)
	seedAlert(repo, uuid.New(), measurement.TypePulse, false)

	updated, err := svc.AcknowledgePair(context.Background(), patient, measurement.TypePulse, clinician)
	if err != nil {
		t.Fatalf("acknowledge pair: %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("expected 1 newly acknowledged alert, got %d", len(updated))
	}
	if updated[0].AcknowledgedBy == nil || *updated[0].AcknowledgedBy != clinician {
		t.Error("expected acknowledger recorded on bulk acknowledge")
	}

	// Repeating returns an empty result.
	updated, err = svc.AcknowledgePair(context.Background(), patient, measurement.TypePulse, clinician)
	if err != nil {
		t.Fatalf("repeat acknowledge pair: %v", err)
	}
	if len(updated) != 0 {
		t.Errorf("expected empty result on repeat, got %d", len(updated))
	}
}

func TestAcknowledgePairValidation(t *testing.T) {
	svc := NewService(newMockAlertRepo())
	if _, err := svc.AcknowledgePair(context.Background(), uuid.Nil, measurement.TypePulse, uuid.New()); err == nil {
		t.Error("expected error for missing patient")
	}
	if _, err := svc.AcknowledgePair(context.Background(), uuid.New(), "bogus", uuid.New()); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestListForPatientEmpty(t *testing.T) {
	svc := NewService(newMockAlertRepo())
	items, err := svc.ListForPatient(context.Background(), uuid.New(), false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items)
	}
}

func TestListForPatientUnackFilter(t *testing.T) {
	repo := newMockAlertRepo()
	svc := NewService(repo)
	patient := uuid.New()
	seedAlert(repo, patient, measurement.TypePulse, false)
	seedAlert(repo, patient, measurement.TypeGlucose, true)

	all, err := svc.ListForPatient(context.Background(), patient, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 alerts, got %d", len(all))
	}

	pending, err := svc.ListForPatient(context.Background(), patient, true)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected 1 pending alert, got %d", len(pending))
	}
}
