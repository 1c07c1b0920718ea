package measurement

import (
	"time"

	"github.com/google/uuid"
)

// Measurement maps to the measurements table. Rows are append-only: this
// subsystem never updates or deletes them.
type Measurement struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Type      Type      `db:"type" json:"type"`
	Value1    string    `db:"value1" json:"value1"`
	Value2    *string   `db:"value2" json:"value2,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
