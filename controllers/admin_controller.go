package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pointarthub/models"
	"pointarthub/repositories"
	"pointarthub/services"
)

// AdminController covers the admin panel: account listing, role changes
// and two-factor enrollment.
type AdminController struct {
	userRepo         repositories.UserRepository
	twoFactorService *services.TwoFactorService
}

func NewAdminController(userRepo repositories.UserRepository, twoFactorService *services.TwoFactorService) *AdminController {
	return &AdminController{userRepo: userRepo, twoFactorService: twoFactorService}
}

func (ac *AdminController) ListUsers(c echo.Context) error {
	users, err := ac.userRepo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list users"})
	}
	return c.JSON(http.StatusOK, users)
}

func (ac *AdminController) UpdateRole(c echo.Context) error {
	type RoleRequest struct {
		Username string      `json:"username"`
		Role     models.Role `json:"role"`
	}

	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleStaff {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be admin or staff"})
	}

	if err := ac.userRepo.UpdateRole(req.Username, req.Role); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update role"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "role updated", "username": req.Username, "role": req.Role})
}

func (ac *AdminController) SetupTwoFactor(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "user not found in context"})
	}

	secret, qrCodeURL, err := ac.twoFactorService.Setup2FA(user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to set up two-factor"})
	}
	return c.JSON(http.StatusOK, echo.Map{"secret": secret, "qr_code_url": qrCodeURL})
}

func (ac *AdminController) EnableTwoFactor(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "user not found in context"})
	}

	type EnableRequest struct {
		Code string `json:"code"`
	}
	var req EnableRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	if err := ac.twoFactorService.Enable2FA(user.Email, req.Code); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "two-factor enabled"})
}
