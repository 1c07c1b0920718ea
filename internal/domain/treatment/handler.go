package treatment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/treatments", h.Create, auth.RequireClinician())
	g.GET("/treatments", h.List)
	g.PUT("/treatments/:id", h.Update, auth.RequireClinician())
	g.DELETE("/treatments/:id", h.Delete, auth.RequireClinician())
}

type treatmentRequest struct {
	PatientID  uuid.UUID `json:"patient_id"`
	Medication string    `json:"medication"`
	Dosage     string    `json:"dosage"`
	Frequency  string    `json:"frequency"`
	Duration   *string   `json:"duration"`
	Notes      *string   `json:"notes"`
}

func (h *Handler) Create(c echo.Context) error {
	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ident := auth.IdentityFromContext(c.Request().Context())
	providerID, err := uuid.Parse(ident.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}

	t := &Treatment{
		PatientID:  req.PatientID,
		ProviderID: providerID,
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Frequency:  req.Frequency,
		Duration:   req.Duration,
		Notes:      req.Notes,
	}
	if err := h.service.Prescribe(c.Request().Context(), t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

// List returns treatments: patients see their own, clinicians pass patient_id.
func (h *Handler) List(c echo.Context) error {
	ident := auth.IdentityFromContext(c.Request().Context())

	var patientID uuid.UUID
	var err error
	if ident.IsClinician() {
		patientID, err = uuid.Parse(c.QueryParam("patient_id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
	} else {
		patientID, err = uuid.Parse(ident.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
		}
	}

	items, err := h.service.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t := &Treatment{
		ID:         id,
		PatientID:  req.PatientID,
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Frequency:  req.Frequency,
		Duration:   req.Duration,
		Notes:      req.Notes,
	}
	if err := h.service.Update(c.Request().Context(), t); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
