package threshold

import (
	"time"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

// Threshold maps to the critical_values table: the clinician-configured safe
// range for one patient and one measurement type. At most one row exists per
// (patient_id, measurement_type); repeated submissions update in place.
//
// Bounds are NUMERIC columns carried as decimal strings. A nil bound means
// "no limit on that side". MinValue2/MaxValue2 apply only to two-component
// types (blood pressure).
type Threshold struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	PatientID       uuid.UUID        `db:"patient_id" json:"patient_id"`
	ProviderID      *uuid.UUID       `db:"provider_id" json:"provider_id,omitempty"`
	MeasurementType measurement.Type `db:"measurement_type" json:"measurement_type"`
	MinValue        *string          `db:"min_value" json:"min_value,omitempty"`
	MaxValue        *string          `db:"max_value" json:"max_value,omitempty"`
	MinValue2       *string          `db:"min_value2" json:"min_value2,omitempty"`
	MaxValue2       *string          `db:"max_value2" json:"max_value2,omitempty"`
	Notes           *string          `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at" json:"updated_at"`
}

// HasBounds reports whether at least one bound is set.
func (t *Threshold) HasBounds() bool {
	return t.MinValue != nil || t.MaxValue != nil || t.MinValue2 != nil || t.MaxValue2 != nil
}
