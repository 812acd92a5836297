package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/platform/web"
	"github.com/lnadoceria/doceria-api/internal/search"
)

type SearchHandler struct {
	uc     search.UseCase
	logger logger.ZapLogger
}

func NewSearchHandler(uc search.UseCase, log logger.ZapLogger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SearchHandler) Register(g *echo.Group) {
	g.GET("/search/products", h.SearchProducts)
	g.GET("/search/categories", h.SearchCategories)
	g.GET("/search/flavors", h.SearchFlavors)
}

func (h *SearchHandler) SearchProducts(c echo.Context) error {
	resp, err := h.uc.SearchProducts(
		c.Request().Context(),
		c.QueryParam("query"),
		web.QueryInt(c, "page", 1),
		web.QueryInt(c, "per_page", 50),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) SearchCategories(c echo.Context) error {
	resp, err := h.uc.SearchCategories(
		c.Request().Context(),
		c.QueryParam("query"),
		web.QueryInt(c, "page", 1),
		web.QueryInt(c, "per_page", 50),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) SearchFlavors(c echo.Context) error {
	resp, err := h.uc.SearchFlavors(
		c.Request().Context(),
		c.QueryParam("query"),
		web.QueryInt(c, "page", 1),
		web.QueryInt(c, "per_page", 50),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
