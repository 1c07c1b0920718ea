package measurement

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Measurement) error
	GetByID(ctx context.Context, id uuid.UUID) (*Measurement, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Measurement, int, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, t Type, limit, offset int) ([]*Measurement, int, error)
}
