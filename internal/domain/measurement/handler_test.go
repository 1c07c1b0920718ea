package measurement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/auth"
)

func newRecordContext(e *echo.Echo, body string, ident auth.Identity) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/measurements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(context.Background(), ident))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRecordHandlerPatientRecordsSelf(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo, zerolog.Nop()))
	e := echo.New()

	self := uuid.New()
	other := uuid.New()
	// patient_id in the body is ignored for patients
	body := `{"patient_id":"` + other.String() + `","type":"pulse","value1":"72"}`
	c, rec := newRecordContext(e, body, auth.Identity{UserID: self.String(), Role: auth.RolePatient})
	if err := h.Record(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var got Measurement
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.UserID != self {
		t.Errorf("patient must record against themselves, got %s", got.UserID)
	}
}

func TestRecordHandlerClinicianRecordsForPatient(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo, zerolog.Nop()))
	e := echo.New()

	patient := uuid.New()
	body := `{"patient_id":"` + patient.String() + `","type":"pulse","value1":"72"}`
	c, rec := newRecordContext(e, body, auth.Identity{UserID: uuid.New().String(), Role: auth.RoleNurse})
	if err := h.Record(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	var got Measurement
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.UserID != patient {
		t.Errorf("clinician should record for the named patient, got %s", got.UserID)
	}
}

func TestRecordHandlerRejectsInvalidPayload(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), zerolog.Nop()))
	e := echo.New()

	c, _ := newRecordContext(e, `{"type":"bogus","value1":"72"}`, auth.Identity{UserID: uuid.New().String(), Role: auth.RolePatient})
	err := h.Record(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
