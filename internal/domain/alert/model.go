package alert

import (
	"time"

	"github.com/google/uuid"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
)

// Status mirrors the alert_status enum in the database. Evaluation currently
// only produces CRITICAL; the other values exist for the enum and future use.
type Status string

const (
	StatusNormal   Status = "NORMAL"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
)

type Alert struct {
	ID             uuid.UUID  `json:"id"`
	PatientID      uuid.UUID  `json:"patient_id"`
	MeasurementID  uuid.UUID  `json:"measurement_id"`
	ThresholdID    *uuid.UUID `json:"threshold_id,omitempty"`
	Status         Status     `json:"status"`
	Message        string     `json:"message"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy *uuid.UUID `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// View is an alert decorated with the patient's name and the measurement's
// type, as the clinician dashboard lists them.
type View struct {
	Alert
	PatientName     string           `json:"patient_name"`
	MeasurementType measurement.Type `json:"measurement_type"`
}
