package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"pointarthub/models"
	"pointarthub/repositories"
)

var ErrInsufficientStock = errors.New("not enough stock for this sale")

// SalesService records sales, computes profit against the item's cost rate
// and keeps stock counts in step. Every recorded sale re-runs the
// notification evaluators so milestone and low-stock alerts appear without
// a background timer.
type SalesService struct {
	salesRepo     repositories.SalesRepository
	inventoryRepo repositories.InventoryRepository
	notifications *NotificationService
}

func NewSalesService(salesRepo repositories.SalesRepository, inventoryRepo repositories.InventoryRepository, notifications *NotificationService) *SalesService {
	return &SalesService{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		notifications: notifications,
	}
}

func (s *SalesService) RecordStationerySale(itemID uint, quantity int, soldBy string) (*models.StationerySale, error) {
	item, err := s.inventoryRepo.GetStationery(itemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity < quantity {
		return nil, ErrInsufficientStock
	}

	sale := &models.StationerySale{
		ItemID:      item.ID,
		Item:        item.Item,
		Quantity:    quantity,
		Rate:        item.Rate,
		SalePrice:   item.SellingPrice,
		TotalAmount: item.SellingPrice * float64(quantity),
		Profit:      (item.SellingPrice - item.Rate) * float64(quantity),
		SoldBy:      soldBy,
	}
	if err := s.salesRepo.CreateStationerySale(sale); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.AdjustQuantity(models.CollectionStationery, item.ID, -quantity); err != nil {
		logrus.WithError(err).Error("Failed to adjust stationery stock after sale")
	}

	s.evaluateAlerts()
	return sale, nil
}

func (s *SalesService) RecordGiftSale(itemID uint, quantity int, soldBy string) (*models.GiftDailySale, error) {
	item, err := s.inventoryRepo.GetGiftStore(itemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity < quantity {
		return nil, ErrInsufficientStock
	}

	sale := &models.GiftDailySale{
		ItemID:      item.ID,
		Item:        item.Item,
		Quantity:    quantity,
		UnitPrice:   item.SellingPrice,
		TotalAmount: item.SellingPrice * float64(quantity),
		Profit:      (item.SellingPrice - item.Rate) * float64(quantity),
		SaleDate:    time.Now(),
		SoldBy:      soldBy,
	}
	if err := s.salesRepo.CreateGiftDailySale(sale); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.AdjustQuantity(models.CollectionGiftStore, item.ID, -quantity); err != nil {
		logrus.WithError(err).Error("Failed to adjust gift store stock after sale")
	}

	s.evaluateAlerts()
	return sale, nil
}

func (s *SalesService) evaluateAlerts() {
	if _, err := s.notifications.EvaluateSalesMilestones(); err != nil {
		logrus.WithError(err).Warn("Milestone evaluation failed")
	}
	if _, err := s.notifications.EvaluateLowStock(); err != nil {
		logrus.WithError(err).Warn("Low stock evaluation failed")
	}
}

func (s *SalesService) ListStationerySales() ([]models.StationerySale, error) {
	return s.salesRepo.ListStationerySales()
}

func (s *SalesService) ListGiftDailySales() ([]models.GiftDailySale, error) {
	return s.salesRepo.ListGiftDailySales()
}

func (s *SalesService) Stats() (*models.SalesStats, error) {
	return s.salesRepo.Stats()
}
