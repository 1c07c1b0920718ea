package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	byID    map[uuid.UUID]*Patient
	byEmail map[string]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		byID:    make(map[uuid.UUID]*Patient),
		byEmail: make(map[string]*Patient),
	}
}

func (m *mockRepo) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.UserType = UserTypePatient
	cp := *p
	m.byID[p.ID] = &cp
	m.byEmail[p.Email] = &cp
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	if p, ok := m.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*Patient, error) {
	if p, ok := m.byEmail[email]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *mockRepo) ListByOrgAndCity(ctx context.Context, organization, city string, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range m.byID {
		if p.Organization == organization && p.City == city {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func strPtr(s string) *string { return &s }

func validPatient() *Patient {
	return &Patient{
		FullName:     "Айгерим Сатпаева",
		Email:        "aigerim@example.kz",
		City:         "Алматы",
		Organization: "Поликлиника №5",
	}
}

func TestRegister(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p, err := svc.Register(context.Background(), validPatient())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id assigned")
	}
	if p.UserType != UserTypePatient {
		t.Errorf("expected PATIENT user type, got %s", p.UserType)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	if _, err := svc.Register(context.Background(), validPatient()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), validPatient())
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMockRepo())

	missingName := validPatient()
	missingName.FullName = "  "
	if _, err := svc.Register(context.Background(), missingName); err == nil {
		t.Error("expected error for blank name")
	}

	badEmail := validPatient()
	badEmail.Email = "not-an-email"
	if _, err := svc.Register(context.Background(), badEmail); err == nil {
		t.Error("expected error for malformed email")
	}

	badIIN := validPatient()
	badIIN.IIN = strPtr("12345")
	if _, err := svc.Register(context.Background(), badIIN); err != ErrInvalidIIN {
		t.Error("expected ErrInvalidIIN for short iin")
	}

	goodIIN := validPatient()
	goodIIN.IIN = strPtr("990101350123")
	if _, err := svc.Register(context.Background(), goodIIN); err != nil {
		t.Errorf("12-digit iin should pass: %v", err)
	}
}

func TestGetAccessControl(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p, err := svc.Register(context.Background(), validPatient())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Patient reading themselves.
	if _, err := svc.Get(context.Background(), p.ID, p.ID, false); err != nil {
		t.Errorf("self read should pass: %v", err)
	}
	// Patient reading someone else.
	if _, err := svc.Get(context.Background(), p.ID, uuid.New(), false); err != ErrAccessDenied {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
	// Clinician reading anyone.
	if _, err := svc.Get(context.Background(), p.ID, uuid.New(), true); err != nil {
		t.Errorf("clinician read should pass: %v", err)
	}
	// Missing patient.
	if _, err := svc.Get(context.Background(), uuid.New(), uuid.New(), true); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListScoped(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	inScope := validPatient()
	if _, err := svc.Register(context.Background(), inScope); err != nil {
		t.Fatalf("register: %v", err)
	}
	outOfScope := validPatient()
	outOfScope.Email = "other@example.kz"
	outOfScope.City = "Астана"
	if _, err := svc.Register(context.Background(), outOfScope); err != nil {
		t.Fatalf("register: %v", err)
	}

	items, total, err := svc.List(context.Background(), "Поликлиника №5", "Алматы", 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected 1 patient in scope, got %d", len(items))
	}

	if _, _, err := svc.List(context.Background(), "", "", 20, 0); err == nil {
		t.Error("expected error for missing scope")
	}
}
