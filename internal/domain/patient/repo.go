package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)

	// ListByOrgAndCity returns the patients a clinician oversees: same
	// organization and city, newest first.
	ListByOrgAndCity(ctx context.Context, organization, city string, limit, offset int) ([]*Patient, int, error)
}
