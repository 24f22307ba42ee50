package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"pointarthub/models"
	"pointarthub/services"
)

type SettingsController struct {
	settingsService *services.SettingsService
	notifications   *services.NotificationService
}

func NewSettingsController(settingsService *services.SettingsService, notifications *services.NotificationService) *SettingsController {
	return &SettingsController{settingsService: settingsService, notifications: notifications}
}

func (sc *SettingsController) Get(c echo.Context) error {
	settings, err := sc.settingsService.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load settings"})
	}
	return c.JSON(http.StatusOK, settings)
}

func (sc *SettingsController) Update(c echo.Context) error {
	var req models.UpdateNotificationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	settings, err := sc.settingsService.Update(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFrequency) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save settings"})
	}

	// A changed threshold can put items below the line immediately.
	if _, err := sc.notifications.EvaluateLowStock(); err != nil {
		logrus.WithError(err).Warn("Low stock evaluation after settings save failed")
	}

	return c.JSON(http.StatusOK, settings)
}
