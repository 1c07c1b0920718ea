package recommendation

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is a free-text note from a clinician to a patient.
type Recommendation struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
