package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"pointarthub/models"
	"pointarthub/services"
)

type SalesController struct {
	salesService *services.SalesService
	salesCounter prometheus.Counter
}

func NewSalesController(salesService *services.SalesService, salesCounter prometheus.Counter) *SalesController {
	return &SalesController{salesService: salesService, salesCounter: salesCounter}
}

type saleRequest struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

func (sc *SalesController) soldBy(c echo.Context) string {
	if user, ok := c.Get("user").(*models.User); ok {
		return user.Username
	}
	return ""
}

func (sc *SalesController) RecordStationerySale(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
	}

	sale, err := sc.salesService.RecordStationerySale(req.ItemID, req.Quantity, sc.soldBy(c))
	if err != nil {
		if errors.Is(err, services.ErrInsufficientStock) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record sale"})
	}

	sc.salesCounter.Inc()
	return c.JSON(http.StatusCreated, sale)
}

func (sc *SalesController) RecordGiftSale(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
	}

	sale, err := sc.salesService.RecordGiftSale(req.ItemID, req.Quantity, sc.soldBy(c))
	if err != nil {
		if errors.Is(err, services.ErrInsufficientStock) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record sale"})
	}

	sc.salesCounter.Inc()
	return c.JSON(http.StatusCreated, sale)
}

func (sc *SalesController) ListStationerySales(c echo.Context) error {
	sales, err := sc.salesService.ListStationerySales()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list sales"})
	}
	return c.JSON(http.StatusOK, sales)
}

func (sc *SalesController) ListGiftDailySales(c echo.Context) error {
	sales, err := sc.salesService.ListGiftDailySales()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list sales"})
	}
	return c.JSON(http.StatusOK, sales)
}

func (sc *SalesController) Stats(c echo.Context) error {
	stats, err := sc.salesService.Stats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
	}
	return c.JSON(http.StatusOK, stats)
}
