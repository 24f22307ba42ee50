package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"pointarthub/models"
	"pointarthub/repositories"
	"pointarthub/services"
)

// InventoryController exposes CRUD over the five retail categories. Stock
// mutations re-run low-stock evaluation so alerts follow the data without
// a background timer.
type InventoryController struct {
	inventoryRepo repositories.InventoryRepository
	notifications *services.NotificationService
}

func NewInventoryController(inventoryRepo repositories.InventoryRepository, notifications *services.NotificationService) *InventoryController {
	return &InventoryController{inventoryRepo: inventoryRepo, notifications: notifications}
}

func (ic *InventoryController) evaluateLowStock() {
	if _, err := ic.notifications.EvaluateLowStock(); err != nil {
		logrus.WithError(err).Warn("Low stock evaluation failed")
	}
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func (ic *InventoryController) ListStationery(c echo.Context) error {
	items, err := ic.inventoryRepo.ListStationery()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list stationery"})
	}
	return c.JSON(http.StatusOK, items)
}

func (ic *InventoryController) CreateStationery(c echo.Context) error {
	var item models.StationeryItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := ic.inventoryRepo.CreateStationery(&item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create item"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusCreated, item)
}

func (ic *InventoryController) UpdateStationery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	item, err := ic.inventoryRepo.GetStationery(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	}
	if err := c.Bind(item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	item.ID = id
	if err := ic.inventoryRepo.UpdateStationery(item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update item"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusOK, item)
}

func (ic *InventoryController) DeleteStationery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := ic.inventoryRepo.DeleteStationery(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete item"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (ic *InventoryController) ListGiftStore(c echo.Context) error {
	items, err := ic.inventoryRepo.ListGiftStore()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list gift store items"})
	}
	return c.JSON(http.StatusOK, items)
}

func (ic *InventoryController) CreateGiftStore(c echo.Context) error {
	var item models.GiftStoreItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := ic.inventoryRepo.CreateGiftStore(&item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create item"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusCreated, item)
}

func (ic *InventoryController) UpdateGiftStore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	item, err := ic.inventoryRepo.GetGiftStore(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	}
	if err := c.Bind(item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	item.ID = id
	if err := ic.inventoryRepo.UpdateGiftStore(item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update item"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusOK, item)
}

func (ic *InventoryController) DeleteGiftStore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := ic.inventoryRepo.DeleteGiftStore(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete item"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (ic *InventoryController) ListEmbroidery(c echo.Context) error {
	orders, err := ic.inventoryRepo.ListEmbroidery()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list embroidery orders"})
	}
	return c.JSON(http.StatusOK, orders)
}

func (ic *InventoryController) CreateEmbroidery(c echo.Context) error {
	var order models.EmbroideryOrder
	if err := c.Bind(&order); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := ic.inventoryRepo.CreateEmbroidery(&order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create order"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusCreated, order)
}

func (ic *InventoryController) ListMachines(c echo.Context) error {
	items, err := ic.inventoryRepo.ListMachines()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list machines"})
	}
	return c.JSON(http.StatusOK, items)
}

func (ic *InventoryController) CreateMachine(c echo.Context) error {
	var item models.MachineItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := ic.inventoryRepo.CreateMachine(&item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create machine"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusCreated, item)
}

func (ic *InventoryController) ListArtServices(c echo.Context) error {
	jobs, err := ic.inventoryRepo.ListArtServices()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list art services"})
	}
	return c.JSON(http.StatusOK, jobs)
}

func (ic *InventoryController) CreateArtService(c echo.Context) error {
	var job models.ArtServiceJob
	if err := c.Bind(&job); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if err := ic.inventoryRepo.CreateArtService(&job); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create job"})
	}
	ic.evaluateLowStock()
	return c.JSON(http.StatusCreated, job)
}

func (ic *InventoryController) StockLevels(c echo.Context) error {
	levels, err := ic.inventoryRepo.ListStockLevels()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read stock levels"})
	}
	return c.JSON(http.StatusOK, levels)
}
