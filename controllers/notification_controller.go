package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"pointarthub/services"
)

type NotificationController struct {
	notifications *services.NotificationService
	alertsCounter prometheus.Counter
}

func NewNotificationController(notifications *services.NotificationService, alertsCounter prometheus.Counter) *NotificationController {
	return &NotificationController{notifications: notifications, alertsCounter: alertsCounter}
}

func (nc *NotificationController) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	notifications, err := nc.notifications.List(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list notifications"})
	}

	unread, err := nc.notifications.UnreadCount()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to count unread"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": notifications,
		"unread":        unread,
	})
}

// Evaluate runs both threshold passes on demand, e.g. on page load.
func (nc *NotificationController) Evaluate(c echo.Context) error {
	lowStock, err := nc.notifications.EvaluateLowStock()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "low stock evaluation failed"})
	}
	milestones, err := nc.notifications.EvaluateSalesMilestones()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "milestone evaluation failed"})
	}

	for i := 0; i < lowStock+milestones; i++ {
		nc.alertsCounter.Inc()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"low_stock_alerts": lowStock,
		"milestone_alerts": milestones,
	})
}

func (nc *NotificationController) MarkRead(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "notification id is required"})
	}
	if err := nc.notifications.MarkRead(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to mark notification read"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (nc *NotificationController) MarkAllRead(c echo.Context) error {
	if err := nc.notifications.MarkAllRead(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to mark notifications read"})
	}
	return c.NoContent(http.StatusNoContent)
}
