package alert

import (
	"context"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*Alert, error)

	// DeleteByPatientAndType removes every alert, acknowledged or not, that
	// hangs off a measurement of the given type for the patient. Used by
	// re-evaluation so at most one alert per pair survives.
	DeleteByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error

	// DeleteUnacknowledgedByPatientAndType keeps acknowledged alerts as
	// history; used when a threshold is removed.
	DeleteUnacknowledgedByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error

	// ListByPatient returns the patient's alerts newest first, decorated
	// with patient name and measurement type. unackOnly narrows to pending.
	ListByPatient(ctx context.Context, patientID uuid.UUID, unackOnly bool) ([]*View, error)

	// ListUnacknowledged returns all pending alerts across patients, newest
	// first. This feeds the clinician dashboard.
	ListUnacknowledged(ctx context.Context, limit, offset int) ([]*View, error)

	// AcknowledgePending flips acknowledged on a single pending alert,
	// stamping who and when, and returns it; returns nil when the alert is
	// missing or already handled.
	AcknowledgePending(ctx context.Context, id, byUserID uuid.UUID) (*Alert, error)

	// AcknowledgeByPatientAndType acknowledges every pending alert for the
	// pair and returns the updated rows; empty when none were pending.
	AcknowledgeByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type, byUserID uuid.UUID) ([]*Alert, error)
}
