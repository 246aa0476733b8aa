package account

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ayurnidaan/ayurnidaan/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the public auth endpoints and the authenticated
// profile endpoint onto separate groups.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/auth/signup", h.Signup)
	public.POST("/auth/login", h.Login)
	protected.GET("/auth/me", h.Me)
}

type signupRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PracticeState string `json:"practiceState"`
	PracticeCity  string `json:"practiceCity"`
	LicenseNumber string `json:"licenseNumber"`
	Password      string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token   string   `json:"token"`
	Account *Account `json:"account"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a := &Account{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PracticeState: req.PracticeState,
		PracticeCity:  req.PracticeCity,
		LicenseNumber: req.LicenseNumber,
		Password:      req.Password,
	}
	token, err := h.svc.Register(c.Request().Context(), a)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusConflict, ErrDuplicateEmail.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sessionResponse{Token: token, Account: a})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, Account: a})
}

func (h *Handler) Me(c echo.Context) error {
	id, err := uuid.Parse(auth.AccountIDFromContext(c.Request().Context()))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
