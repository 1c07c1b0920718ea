package recommendation

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*Recommendation
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Recommendation)}
}

func (m *mockRepo) Create(ctx context.Context, r *Recommendation) error {
	r.ID = uuid.New()
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Recommendation, error) {
	var out []*Recommendation
	for _, r := range m.items {
		if r.PatientID == patientID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newMockRepo())
	r := &Recommendation{PatientID: uuid.New(), ProviderID: uuid.New(), Description: "Пить больше воды"}
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.ID == uuid.Nil {
		t.Error("expected id assigned")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), &Recommendation{PatientID: uuid.New(), Description: "  "}); err == nil {
		t.Error("expected error for blank description")
	}
	if err := svc.Create(context.Background(), &Recommendation{Description: "x"}); err == nil {
		t.Error("expected error for missing patient")
	}
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Delete(context.Background(), uuid.New()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
