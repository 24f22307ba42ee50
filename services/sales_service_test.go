package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"pointarthub/models"
	"pointarthub/repositories"
)

type salesInventoryStub struct {
	repositories.InventoryRepository
	stationery map[uint]*models.StationeryItem
	gifts      map[uint]*models.GiftStoreItem
}

func (s *salesInventoryStub) GetStationery(id uint) (*models.StationeryItem, error) {
	item, ok := s.stationery[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (s *salesInventoryStub) GetGiftStore(id uint) (*models.GiftStoreItem, error) {
	item, ok := s.gifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (s *salesInventoryStub) AdjustQuantity(c models.Collection, id uint, delta int) error {
	switch c {
	case models.CollectionStationery:
		s.stationery[id].Quantity += delta
	case models.CollectionGiftStore:
		s.gifts[id].Quantity += delta
	}
	return nil
}

func (s *salesInventoryStub) ListStockLevels() ([]repositories.StockLevel, error) {
	var levels []repositories.StockLevel
	for id, item := range s.stationery {
		levels = append(levels, repositories.StockLevel{
			Collection: models.CollectionStationery,
			ItemID:     id,
			Name:       item.Item,
			Quantity:   item.Quantity,
		})
	}
	for id, item := range s.gifts {
		levels = append(levels, repositories.StockLevel{
			Collection: models.CollectionGiftStore,
			ItemID:     id,
			Name:       item.Item,
			Quantity:   item.Quantity,
		})
	}
	return levels, nil
}

type salesRepoStub struct {
	repositories.SalesRepository
	stationery []models.StationerySale
	gifts      []models.GiftDailySale
}

func (s *salesRepoStub) CreateStationerySale(sale *models.StationerySale) error {
	s.stationery = append(s.stationery, *sale)
	return nil
}

func (s *salesRepoStub) CreateGiftDailySale(sale *models.GiftDailySale) error {
	s.gifts = append(s.gifts, *sale)
	return nil
}

func (s *salesRepoStub) Stats() (*models.SalesStats, error) {
	stats := &models.SalesStats{}
	for _, sale := range s.stationery {
		stats.TotalAmount += sale.TotalAmount
		stats.TotalProfit += sale.Profit
		stats.SaleCount++
	}
	for _, sale := range s.gifts {
		stats.TotalAmount += sale.TotalAmount
		stats.TotalProfit += sale.Profit
		stats.SaleCount++
	}
	return stats, nil
}

func newSalesService(inventory *salesInventoryStub) (*SalesService, *salesRepoStub, *mockNotificationRepo) {
	salesRepo := &salesRepoStub{}
	notificationRepo := &mockNotificationRepo{}
	notifications := NewNotificationService(
		notificationRepo,
		inventory,
		salesRepo,
		NewSettingsService(&mockSettingsRepo{settings: models.DefaultNotificationSettings()}),
	)
	return NewSalesService(salesRepo, inventory, notifications), salesRepo, notificationRepo
}

func TestRecordStationerySaleComputesProfitAndAdjustsStock(t *testing.T) {
	inventory := &salesInventoryStub{
		stationery: map[uint]*models.StationeryItem{
			7: {Model: gorm.Model{ID: 7}, Item: "Sketch pads", Quantity: 20, Rate: 150, SellingPrice: 250},
		},
	}
	svc, salesRepo, _ := newSalesService(inventory)

	sale, err := svc.RecordStationerySale(7, 3, "amina")
	assert.NoError(t, err)
	assert.Equal(t, 750.0, sale.TotalAmount)
	assert.Equal(t, 300.0, sale.Profit)
	assert.Equal(t, "amina", sale.SoldBy)
	assert.Equal(t, 17, inventory.stationery[7].Quantity)
	assert.Len(t, salesRepo.stationery, 1)
}

func TestRecordSaleRejectsInsufficientStock(t *testing.T) {
	inventory := &salesInventoryStub{
		stationery: map[uint]*models.StationeryItem{
			7: {Model: gorm.Model{ID: 7}, Item: "Sketch pads", Quantity: 2, Rate: 150, SellingPrice: 250},
		},
	}
	svc, salesRepo, _ := newSalesService(inventory)

	_, err := svc.RecordStationerySale(7, 3, "amina")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, salesRepo.stationery)
	assert.Equal(t, 2, inventory.stationery[7].Quantity, "a rejected sale must not touch stock")
}

func TestRecordSaleUnknownItem(t *testing.T) {
	svc, _, _ := newSalesService(&salesInventoryStub{stationery: map[uint]*models.StationeryItem{}})

	_, err := svc.RecordStationerySale(99, 1, "amina")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordSaleTriggersLowStockAlert(t *testing.T) {
	inventory := &salesInventoryStub{
		gifts: map[uint]*models.GiftStoreItem{
			3: {Model: gorm.Model{ID: 3}, Item: "Candles", Quantity: 12, Rate: 80, SellingPrice: 120},
		},
	}
	svc, _, notificationRepo := newSalesService(inventory)

	// 12 - 4 = 8, below the default threshold of 10.
	_, err := svc.RecordGiftSale(3, 4, "amina")
	assert.NoError(t, err)

	assert.Len(t, notificationRepo.events, 1)
	assert.Equal(t, models.NotificationLowStock, notificationRepo.events[0].Type)
	assert.Equal(t, models.PriorityMedium, notificationRepo.events[0].Priority)
}
