package threshold

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

type pairKey struct {
	patient uuid.UUID
	mt      measurement.Type
}

type mockRepo struct {
	items map[pairKey]*Threshold
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[pairKey]*Threshold)}
}

func (m *mockRepo) Upsert(ctx context.Context, t *Threshold) error {
	k := pairKey{t.PatientID, t.MeasurementType}
	if existing, ok := m.items[k]; ok {
		t.ID = existing.ID
	} else if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	m.items[k] = &cp
	return nil
}

func (m *mockRepo) Find(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (*Threshold, error) {
	if t, ok := m.items[pairKey{patientID, mt}]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (m *mockRepo) FindForUpdate(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (*Threshold, error) {
	return m.Find(ctx, patientID, mt)
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Threshold, error) {
	var out []*Threshold
	for _, t := range m.items {
		if t.PatientID == patientID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) Delete(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (bool, error) {
	k := pairKey{patientID, mt}
	if _, ok := m.items[k]; !ok {
		return false, nil
	}
	delete(m.items, k)
	return true, nil
}

type mockCleaner struct {
	calls []pairKey
}

func (m *mockCleaner) DeleteUnacknowledgedByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error {
	m.calls = append(m.calls, pairKey{patientID, mt})
	return nil
}

func strPtr(s string) *string { return &s }

func TestSetUpsertsInPlace(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patient := uuid.New()
	provider := uuid.New()

	first := &Threshold{
		PatientID:       patient,
		MeasurementType: measurement.TypePulse,
		MinValue:        strPtr("50"),
		MaxValue:        strPtr("100"),
	}
	if err := svc.Set(context.Background(), first, provider); err != nil {
		t.Fatalf("first set: %v", err)
	}

	second := &Threshold{
		PatientID:       patient,
		MeasurementType: measurement.TypePulse,
		MinValue:        strPtr("55"),
		MaxValue:        strPtr("110"),
	}
	if err := svc.Set(context.Background(), second, provider); err != nil {
		t.Fatalf("second set: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected replacement of the same row, got new id %s vs %s", second.ID, first.ID)
	}
	if len(repo.items) != 1 {
		t.Errorf("expected single threshold per pair, got %d", len(repo.items))
	}
	stored := repo.items[pairKey{patient, measurement.TypePulse}]
	if *stored.MaxValue != "110" {
		t.Errorf("expected updated max 110, got %s", *stored.MaxValue)
	}
	if stored.ProviderID == nil || *stored.ProviderID != provider {
		t.Errorf("expected provider recorded")
	}
}

func TestSetValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	patient := uuid.New()
	provider := uuid.New()

	cases := []struct {
		name string
		t    *Threshold
		want string
	}{
		{
			name: "missing patient",
			t:    &Threshold{MeasurementType: measurement.TypePulse, MinValue: strPtr("50")},
			want: "patient_id",
		},
		{
			name: "unknown type",
			t:    &Threshold{PatientID: patient, MeasurementType: "bogus", MinValue: strPtr("50")},
			want: "invalid measurement type",
		},
		{
			name: "no bounds or notes",
			t:    &Threshold{PatientID: patient, MeasurementType: measurement.TypePulse},
			want: "at least one bound",
		},
		{
			name: "non-numeric bound",
			t:    &Threshold{PatientID: patient, MeasurementType: measurement.TypePulse, MinValue: strPtr("abc")},
			want: "decimal",
		},
		{
			name: "secondary bound on single type",
			t:    &Threshold{PatientID: patient, MeasurementType: measurement.TypePulse, MinValue: strPtr("50"), MinValue2: strPtr("40")},
			want: "secondary bounds",
		},
		{
			name: "bounds on text type",
			t:    &Threshold{PatientID: patient, MeasurementType: measurement.TypeUltrasound, MinValue: strPtr("1")},
			want: "not supported",
		},
		{
			name: "min above max",
			t:    &Threshold{PatientID: patient, MeasurementType: measurement.TypePulse, MinValue: strPtr("120"), MaxValue: strPtr("60")},
			want: "must not exceed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Set(context.Background(), tc.t, provider)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestSetAllowsNotesOnly(t *testing.T) {
	svc := NewService(newMockRepo())
	th := &Threshold{
		PatientID:       uuid.New(),
		MeasurementType: measurement.TypeUltrasound,
		Notes:           strPtr("compare with previous scan"),
	}
	if err := svc.Set(context.Background(), th, uuid.New()); err != nil {
		t.Fatalf("notes-only threshold should be accepted: %v", err)
	}
}

func TestSetBloodPressureSecondaryBounds(t *testing.T) {
	svc := NewService(newMockRepo())
	th := &Threshold{
		PatientID:       uuid.New(),
		MeasurementType: measurement.TypeBloodPressure,
		MinValue:        strPtr("90"),
		MaxValue:        strPtr("140"),
		MinValue2:       strPtr("60"),
		MaxValue2:       strPtr("90"),
	}
	if err := svc.Set(context.Background(), th, uuid.New()); err != nil {
		t.Fatalf("blood pressure secondary bounds should be accepted: %v", err)
	}
}

func TestSetBlankBoundTreatedAsAbsent(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patient := uuid.New()
	th := &Threshold{
		PatientID:       patient,
		MeasurementType: measurement.TypePulse,
		MinValue:        strPtr("  "),
		MaxValue:        strPtr("100"),
	}
	if err := svc.Set(context.Background(), th, uuid.New()); err != nil {
		t.Fatalf("set: %v", err)
	}
	stored := repo.items[pairKey{patient, measurement.TypePulse}]
	if stored.MinValue != nil {
		t.Errorf("blank min should be stored as null, got %q", *stored.MinValue)
	}
}

func TestListMissingPairReturnsEmpty(t *testing.T) {
	svc := NewService(newMockRepo())
	items, err := svc.List(context.Background(), uuid.New(), measurement.TypePulse)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list for unconfigured pair, got %d", len(items))
	}
}

func TestDeleteClearsPendingAlerts(t *testing.T) {
	repo := newMockRepo()
	cleaner := &mockCleaner{}
	svc := NewService(repo)
	svc.SetAlertCleaner(cleaner)

	patient := uuid.New()
	th := &Threshold{PatientID: patient, MeasurementType: measurement.TypePulse, MinValue: strPtr("50")}
	if err := svc.Set(context.Background(), th, uuid.New()); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := svc.Delete(context.Background(), patient, measurement.TypePulse); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.items) != 0 {
		t.Errorf("threshold not removed")
	}
	if len(cleaner.calls) != 1 || cleaner.calls[0] != (pairKey{patient, measurement.TypePulse}) {
		t.Errorf("expected pending-alert cleanup for the deleted pair, got %v", cleaner.calls)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Delete(context.Background(), uuid.New(), measurement.TypePulse)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
