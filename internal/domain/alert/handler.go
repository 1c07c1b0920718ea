package alert

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/auth"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/alerts", h.List)
	g.PATCH("/alerts/acknowledge", h.AcknowledgePair, auth.RequireClinician())
	g.PATCH("/alerts/:id/acknowledge", h.Acknowledge, auth.RequireClinician())
}

// List routes by role: patients see their own alerts, clinicians see a
// named patient's alerts or, without patient_id, all pending alerts.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	ident := auth.IdentityFromContext(ctx)
	unackOnly := c.QueryParam("unacknowledged") == "true"

	if !ident.IsClinician() {
		selfID, err := uuid.Parse(ident.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
		}
		items, err := h.service.ListForPatient(ctx, selfID, unackOnly)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	if raw := c.QueryParam("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		items, err := h.service.ListForPatient(ctx, patientID, unackOnly)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	p := pagination.FromContext(c)
	items, err := h.service.ListPending(ctx, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Acknowledge(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid alert id")
	}
	ident := auth.IdentityFromContext(c.Request().Context())
	byUserID, err := uuid.Parse(ident.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}
	a, err := h.service.Acknowledge(c.Request().Context(), id, byUserID)
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "alert not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

type acknowledgePairRequest struct {
	PatientID       uuid.UUID        `json:"patient_id"`
	MeasurementType measurement.Type `json:"measurement_type"`
}

func (h *Handler) AcknowledgePair(c echo.Context) error {
	var req acknowledgePairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ident := auth.IdentityFromContext(c.Request().Context())
	byUserID, err := uuid.Parse(ident.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}
	items, err := h.service.AcknowledgePair(c.Request().Context(), req.PatientID, req.MeasurementType, byUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
