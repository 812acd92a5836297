package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/platform/web"
	"github.com/lnadoceria/doceria-api/internal/section"
	"github.com/lnadoceria/doceria-api/internal/section/dto"
)

type SectionHandler struct {
	uc     section.UseCase
	logger logger.ZapLogger
}

func NewSectionHandler(uc section.UseCase, log logger.ZapLogger) *SectionHandler {
	return &SectionHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SectionHandler) Register(g *echo.Group, authed *echo.Group) {
	g.GET("/display-settings", h.GetDisplaySettings)
	authed.PUT("/display-settings", h.ReplaceSections)
	authed.POST("/display-sections", h.CreateSection)
	authed.PUT("/display-sections", h.UpdateSections)
	authed.PUT("/display-sections/:id", h.UpdateSection)
	authed.DELETE("/display-sections/:id", h.DeleteSection)
}

func (h *SectionHandler) GetDisplaySettings(c echo.Context) error {
	page := web.QueryInt(c, "page", 1)
	limit := web.QueryInt(c, "limit", 10)

	resp, err := h.uc.GetDisplaySettings(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SectionHandler) CreateSection(c echo.Context) error {
	input := &dto.CreateSectionInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return apperror.Validation("section requires a title and a type")
	}

	s, err := h.uc.CreateSection(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SectionHandler) UpdateSection(c echo.Context) error {
	input := &dto.UpdateSectionInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	input.ID = c.Param("id")

	s, err := h.uc.UpdateSection(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateSections is the tolerant batch contract: per-section errors are
// reported in the body, the request itself succeeds.
func (h *SectionHandler) UpdateSections(c echo.Context) error {
	var inputs []dto.UpdateSectionInput
	if err := c.Bind(&inputs); err != nil {
		return apperror.Validation("invalid request body: array of sections expected")
	}

	resp, err := h.uc.UpdateSections(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// ReplaceSections swaps the entire section set atomically.
func (h *SectionHandler) ReplaceSections(c echo.Context) error {
	var inputs []dto.CreateSectionInput
	if err := c.Bind(&inputs); err != nil {
		return apperror.Validation("invalid request body: array of sections expected")
	}
	for i := range inputs {
		if err := c.Validate(&inputs[i]); err != nil {
			return apperror.Validation("section %d requires a title and a type", i)
		}
	}

	sections, err := h.uc.ReplaceSections(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"sections": sections,
	})
}

func (h *SectionHandler) DeleteSection(c echo.Context) error {
	if err := h.uc.DeleteSection(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
