package measurement

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/auth"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/measurements", h.Record)
	api.GET("/measurements", h.ListOwn)
	api.GET("/patients/:id/measurements", h.ListForPatient, auth.RequireClinician())
}

type recordRequest struct {
	PatientID string  `json:"patient_id"`
	Type      Type    `json:"type"`
	Value1    string  `json:"value1"`
	Value2    *string `json:"value2"`
}

// Record accepts a new reading. Patients always record against themselves;
// clinicians may record for a patient by passing patient_id.
func (h *Handler) Record(c echo.Context) error {
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := auth.IdentityFromContext(c.Request().Context())
	patientID, err := uuid.Parse(id.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}
	if req.PatientID != "" && id.IsClinician() {
		pid, err := uuid.Parse(req.PatientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		patientID = pid
	}

	m := &Measurement{
		UserID: patientID,
		Type:   req.Type,
		Value1: req.Value1,
		Value2: req.Value2,
	}
	if err := h.svc.Record(c.Request().Context(), m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

// ListOwn returns the caller's own measurement log, newest first.
func (h *Handler) ListOwn(c echo.Context) error {
	id := auth.IdentityFromContext(c.Request().Context())
	userID, err := uuid.Parse(id.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}
	return h.list(c, userID)
}

// ListForPatient returns a patient's measurement log for clinicians.
func (h *Handler) ListForPatient(c echo.Context) error {
	pid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return h.list(c, pid)
}

func (h *Handler) list(c echo.Context, userID uuid.UUID) error {
	pg := pagination.FromContext(c)
	if t := c.QueryParam("type"); t != "" {
		items, total, err := h.svc.ListByUserAndType(c.Request().Context(), userID, Type(t), pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}
	items, total, err := h.svc.ListByUser(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
