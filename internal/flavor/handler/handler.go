package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/flavor"
	"github.com/lnadoceria/doceria-api/internal/flavor/dto"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
)

type FlavorHandler struct {
	uc     flavor.UseCase
	logger logger.ZapLogger
}

func NewFlavorHandler(uc flavor.UseCase, log logger.ZapLogger) *FlavorHandler {
	return &FlavorHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *FlavorHandler) Register(g *echo.Group, authed *echo.Group) {
	g.GET("/flavors", h.ListFlavors)
	g.GET("/flavors/:id", h.GetFlavor)
	g.GET("/categories/:categoryId/flavors", h.ListFlavorsByCategory)
	authed.POST("/flavors", h.CreateFlavor)
	authed.PUT("/flavors/:id", h.UpdateFlavor)
	authed.DELETE("/flavors/:id", h.DeleteFlavor)
}

func (h *FlavorHandler) CreateFlavor(c echo.Context) error {
	input := &dto.CreateFlavorInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return apperror.Validation("flavor name is required")
	}

	f, err := h.uc.CreateFlavor(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FlavorHandler) GetFlavor(c echo.Context) error {
	f, err := h.uc.GetFlavor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FlavorHandler) ListFlavors(c echo.Context) error {
	flavors, err := h.uc.ListFlavors(c.Request().Context(), c.QueryParam("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, flavors)
}

func (h *FlavorHandler) ListFlavorsByCategory(c echo.Context) error {
	flavors, err := h.uc.ListFlavorsByCategory(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, flavors)
}

func (h *FlavorHandler) UpdateFlavor(c echo.Context) error {
	input := &dto.UpdateFlavorInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	input.ID = c.Param("id")

	f, err := h.uc.UpdateFlavor(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FlavorHandler) DeleteFlavor(c echo.Context) error {
	if err := h.uc.DeleteFlavor(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
