package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ayurnidaan/ayurnidaan/internal/domain/diagnosis"
	"github.com/ayurnidaan/ayurnidaan/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/stats", h.GetStats)
	api.GET("/patients/form-schema", h.GetFormSchema)
	api.POST("/patients/diagnose", h.DiagnoseDraft)
	api.GET("/patients/:id", h.GetPatient)
	api.POST("/patients/:id/diagnosis", h.DiagnosePatient)
}

// createRequest carries the flat form values plus an optional diagnosis
// obtained before saving.
type createRequest struct {
	Fields    map[string]string `json:"fields"`
	Diagnosis *diagnosis.Result `json:"diagnosis,omitempty"`
}

// draftFrom replays the submitted fields through a fresh collector so
// defaults and unknown-field rejection behave exactly like the form.
func draftFrom(fields map[string]string) (*Draft, error) {
	col := NewCollector(nil)
	for name, value := range fields {
		if err := col.Set(name, value); err != nil {
			return nil, err
		}
	}
	return col.Draft(), nil
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := draftFrom(req.Fields)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.Save(c.Request().Context(), d, req.Diagnosis)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListPatients(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return mapError(err)
	}
	p := pagination.FromContext(c)
	lo, hi := p.Slice(len(records))
	return c.JSON(http.StatusOK, pagination.NewResponse(records[lo:hi], len(records), p.Limit, p.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DiagnosePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Diagnose(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DiagnoseDraft(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := draftFrom(req.Fields)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.DiagnoseDraft(c.Request().Context(), d)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetFormSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"fields": Fields})
}

// mapError converts domain errors to HTTP status codes. Validation
// failures keep their per-field reasons in the payload.
func mapError(err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, verr)
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient record not found")
	case errors.Is(err, diagnosis.ErrEmptyResponse):
		return echo.NewHTTPError(http.StatusBadGateway, "diagnosis collaborator returned nothing; please retry")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
