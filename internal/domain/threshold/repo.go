package threshold

import (
	"context"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

type Repository interface {
	// Upsert inserts the threshold or, when one exists for the same
	// (patient, type), replaces its bounds, notes and provider in place.
	Upsert(ctx context.Context, t *Threshold) error
	// Find returns nil, nil when no threshold is configured for the pair.
	Find(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (*Threshold, error)
	// FindForUpdate is Find with a row lock, serializing evaluations that
	// run inside a transaction for the same pair.
	FindForUpdate(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (*Threshold, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Threshold, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (bool, error)
}
