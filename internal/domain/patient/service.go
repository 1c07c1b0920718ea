package patient

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(repo Repository) *Service {
	return &Service{patients: repo}
}

var (
	ErrNotFound       = fmt.Errorf("patient not found")
	ErrEmailTaken     = fmt.Errorf("email already registered")
	ErrInvalidIIN     = fmt.Errorf("iin must be 12 digits")
	ErrAccessDenied   = fmt.Errorf("access denied")
	errEmailRequired  = fmt.Errorf("a valid email is required")
	errFieldsRequired = fmt.Errorf("full_name, city and organization are required")
)

// Register creates a patient account under the clinician's organization and
// city.
func (s *Service) Register(ctx context.Context, p *Patient) (*Patient, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.FullName == "" || p.City == "" || p.Organization == "" {
		return nil, errFieldsRequired
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, errEmailRequired
	}
	if p.IIN != nil && !validIIN(*p.IIN) {
		return nil, ErrInvalidIIN
	}

	existing, err := s.patients.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one patient. requesterID is the caller; patients may only read
// themselves, clinicians may read anyone.
func (s *Service) Get(ctx context.Context, id, requesterID uuid.UUID, requesterIsClinician bool) (*Patient, error) {
	if !requesterIsClinician && id != requesterID {
		return nil, ErrAccessDenied
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns the patients in the clinician's organization and city.
func (s *Service) List(ctx context.Context, organization, city string, limit, offset int) ([]*Patient, int, error) {
	if organization == "" || city == "" {
		return nil, 0, fmt.Errorf("caller has no organization scope")
	}
	items, total, err := s.patients.ListByOrgAndCity(ctx, organization, city, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*Patient{}
	}
	return items, total, nil
}

// validIIN checks the Kazakhstani individual identification number shape:
// exactly 12 digits.
func validIIN(iin string) bool {
	if len(iin) != 12 {
		return false
	}
	for _, r := range iin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
