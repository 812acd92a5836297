package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/user"
	"github.com/lnadoceria/doceria-api/internal/user/dto"
)

type UserHandler struct {
	uc     user.UseCase
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, log logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *UserHandler) Register(g *echo.Group, authed *echo.Group) {
	g.POST("/register", h.RegisterUser)
	g.POST("/login", h.Login)
	authed.PUT("/users/:id", h.UpdateUser)
}

func (h *UserHandler) RegisterUser(c echo.Context) error {
	input := &dto.RegisterInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return apperror.Validation("name, email and password are required")
	}

	u, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Login(c echo.Context) error {
	input := &dto.LoginInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return apperror.Validation("email and password are required")
	}

	resp, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	input := &dto.UpdateUserInput{}
	if err := c.Bind(input); err != nil {
		return apperror.Validation("invalid request body")
	}
	input.ID = c.Param("id")

	u, err := h.uc.UpdateUser(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
