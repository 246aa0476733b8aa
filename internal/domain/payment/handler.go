package payment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/payment/plans", h.ListPlans)
	api.GET("/payment/config", h.GetConfig)
	api.POST("/payment/orders", h.CreateOrder)
}

type orderRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) ListPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"plans": h.svc.Plans()})
}

func (h *Handler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"keyId": h.svc.PublishableKey()})
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	order, err := h.svc.CreateOrder(c.Request().Context(), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPlan):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, ErrUnknownPlan.Error())
		case errors.Is(err, ErrNotConfigured):
			return echo.NewHTTPError(http.StatusServiceUnavailable, ErrNotConfigured.Error())
		default:
			return echo.NewHTTPError(http.StatusBadGateway, ErrOrderFailed.Error())
		}
	}
	return c.JSON(http.StatusCreated, order)
}
