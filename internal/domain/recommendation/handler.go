package recommendation

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
	g.POST("/recommendations", h.Create, auth.RequireClinician())
	g.GET("/recommendations", h.List)
	g.DELETE("/recommendations/:id", h.Delete, auth.RequireClinician())
}

type createRequest struct {
	PatientID   uuid.UUID `json:"patient_id"`
	Description string    `json:"description"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ident := auth.IdentityFromContext(c.Request().Context())
	providerID, err := uuid.Parse(ident.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}

	r := &Recommendation{
		PatientID:   req.PatientID,
		ProviderID:  providerID,
		Description: req.Description,
	}
	if err := h.service.Create(c.Request().Context(), r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, r)
}

// List returns recommendations: patients see their own, clinicians pass
// patient_id.
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
