package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/product"
	"github.com/lnadoceria/doceria-api/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(g *echo.Group, authed *echo.Group) {
	g.GET("/products", h.ListProducts)
	g.GET("/products/:id", h.GetProduct)
	authed.POST("/products", h.CreateProduct)
	authed.PUT("/products/:id", h.UpdateProduct)
	authed.DELETE("/products/:id", h.DeleteProduct)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input := &dto.CreateProductInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return apperror.Validation("product requires a name and a positive price")
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	input := &dto.UpdateProductInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	input.ID = c.Param("id")

	p, err := h.uc.UpdateProduct(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
