package recommendation

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Recommendation) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Recommendation, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
