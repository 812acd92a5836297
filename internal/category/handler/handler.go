package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/category"
	"github.com/lnadoceria/doceria-api/internal/category/dto"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(g *echo.Group, authed *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/categories/:id", h.GetCategory)
	authed.POST("/categories", h.CreateCategory)
	authed.PUT("/categories/:id", h.UpdateCategory)
	authed.DELETE("/categories/:id", h.DeleteCategory)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	input := &dto.CreateCategoryInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return apperror.Validation("category name is required")
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(cat))
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	cat, err := h.uc.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCategoryResponse(cat))
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	input := &dto.UpdateCategoryInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	input.ID = c.Param("id")

	cat, err := h.uc.UpdateCategory(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCategoryResponse(cat))
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
