package threshold

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the critical-value endpoints. The whole surface is
// clinician-only: patients never read or write thresholds directly.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	cv := g.Group("/critical-values", auth.RequireClinician())
	cv.GET("", h.List)
	cv.PUT("", h.Set)
	cv.DELETE("", h.Delete)
}

type setRequest struct {
	PatientID       uuid.UUID        `json:"patient_id"`
	MeasurementType measurement.Type `json:"measurement_type"`
	MinValue        *string          `json:"min_value"`
	MaxValue        *string          `json:"max_value"`
	MinValue2       *string          `json:"min_value2"`
	MaxValue2       *string          `json:"max_value2"`
	Notes           *string          `json:"notes"`
}

func (h *Handler) Set(c echo.Context) error {
	var req setRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ident := auth.IdentityFromContext(c.Request().Context())
	providerID, err := uuid.Parse(ident.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}

	t := &Threshold{
		PatientID:       req.PatientID,
		MeasurementType: req.MeasurementType,
		MinValue:        req.MinValue,
		MaxValue:        req.MaxValue,
		MinValue2:       req.MinValue2,
		MaxValue2:       req.MaxValue2,
		Notes:           req.Notes,
	}
	if err := h.service.Set(c.Request().Context(), t, providerID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) List(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	mt := measurement.Type(c.QueryParam("type"))

	items, err := h.service.List(c.Request().Context(), patientID, mt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Delete(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	mt := measurement.Type(c.QueryParam("type"))

	if err := h.service.Delete(c.Request().Context(), patientID, mt); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "threshold not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
