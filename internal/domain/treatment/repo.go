package treatment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Treatment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Treatment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Treatment, error)
	Update(ctx context.Context, t *Treatment) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
