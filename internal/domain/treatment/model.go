package treatment

import (
	"time"

	"github.com/google/uuid"
)

// Treatment is one prescribed course for a patient.
type Treatment struct {
	ID         uuid.UUID `json:"id"`
	PatientID  uuid.UUID `json:"patient_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Medication string    `json:"medication"`
	Dosage     string    `json:"dosage"`
	Frequency  string    `json:"frequency"`
	Duration   *string   `json:"duration,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
