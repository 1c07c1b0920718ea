package patient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

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
	g.POST("/patients", h.Create, auth.RequireClinician())
	g.GET("/patients", h.List, auth.RequireClinician())
	g.GET("/patients/:id", h.Get)
}

type createRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	IIN         *string `json:"iin"`
	Telephone   *string `json:"telephone"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ident := auth.IdentityFromContext(c.Request().Context())

	p := &Patient{
		FullName:     req.FullName,
		Email:        req.Email,
		IIN:          req.IIN,
		Telephone:    req.Telephone,
		Gender:       req.Gender,
		City:         ident.City,
		Organization: ident.Organization,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		}
		p.DateOfBirth = &dob
	}

	created, err := h.service.Register(c.Request().Context(), p)
	if err != nil {
		if err == ErrEmailTaken {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ident := auth.IdentityFromContext(c.Request().Context())
	requesterID, err := uuid.Parse(ident.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid caller identity")
	}

	p, err := h.service.Get(c.Request().Context(), id, requesterID, ident.IsClinician())
	if err != nil {
		switch err {
		case ErrAccessDenied:
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c echo.Context) error {
	ident := auth.IdentityFromContext(c.Request().Context())
	pg := pagination.FromContext(c)

	items, total, err := h.service.List(c.Request().Context(), ident.Organization, ident.City, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
