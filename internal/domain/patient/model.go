package patient

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeDoctor  = "DOCTOR"
	UserTypeNurse   = "NURSE"
	UserTypePatient = "PATIENT"
)

// Patient is a row of the users table with user_type PATIENT.
type Patient struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	IIN          *string    `json:"iin,omitempty"`
	Telephone    *string    `json:"telephone,omitempty"`
	City         string     `json:"city"`
	Organization string     `json:"organization"`
	UserType     string     `json:"user_type"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
