package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func requestWithRole(e *echo.Echo, role string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		ctx := WithIdentity(req.Context(), Identity{UserID: "u1", Role: role})
		c.SetRequest(req.WithContext(ctx))
	}
	return c
}

func TestRequireClinician_AllowsDoctorAndNurse(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := RequireClinician()(next)

	for _, role := range []string{RoleDoctor, RoleNurse} {
		if err := mw(requestWithRole(e, role)); err != nil {
			t.Errorf("role %s should pass: %v", role, err)
		}
	}
}

func TestRequireClinician_RejectsPatient(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := RequireClinician()(next)

	err := mw(requestWithRole(e, RolePatient))
	if err == nil {
		t.Fatal("expected error for patient role")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestRequireRole_RejectsMissingIdentity(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := RequireRole(RoleDoctor)(next)

	if err := mw(requestWithRole(e, "")); err == nil {
		t.Fatal("expected error for anonymous request")
	}
}

func TestIdentity_IsClinician(t *testing.T) {
	cases := map[string]bool{
		RoleDoctor:  true,
		RoleNurse:   true,
		RolePatient: false,
		"":          false,
	}
	for role, want := range cases {
		id := Identity{Role: role}
		if id.IsClinician() != want {
			t.Errorf("role %q: expected IsClinician=%v", role, want)
		}
	}
}
