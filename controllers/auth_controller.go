package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pointarthub/models"
	"pointarthub/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (a *AuthController) Register(c echo.Context) error {
	type RegisterRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	}
	if err := a.authService.Register(user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, user)
}

func (a *AuthController) Login(c echo.Context) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		TOTPCode string `json:"totp_code"`
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	tokens, err := a.authService.Login(req.Username, req.Password, req.TOTPCode)
	if err != nil {
		if errors.Is(err, services.ErrTwoFactorRequired) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error(), "two_factor_required": true})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}

	return c.JSON(http.StatusOK, tokens)
}

func (a *AuthController) Profile(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "user not found in context"})
	}
	return c.JSON(http.StatusOK, user)
}
