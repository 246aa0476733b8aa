package articles

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	feed Feed
}

func NewHandler(feed Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/articles", h.ListArticles)
}

func (h *Handler) ListArticles(c echo.Context) error {
	list, err := h.feed.Fetch(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "article feed unavailable")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"articles": list})
}
