package repositories

import (
	"gorm.io/gorm"

	"pointarthub/models"
)

// SalesRepository records sales and aggregates totals for the dashboard
// and milestone evaluation.
type SalesRepository interface {
	CreateStationerySale(sale *models.StationerySale) error
	CreateGiftDailySale(sale *models.GiftDailySale) error
	ListStationerySales() ([]models.StationerySale, error)
	ListGiftDailySales() ([]models.GiftDailySale, error)
	Stats() (*models.SalesStats, error)
}

type salesRepositoryImpl struct {
	db *gorm.DB
}

// NewSalesRepository creates a new SalesRepository instance.
func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepositoryImpl{db: db}
}

func (r *salesRepositoryImpl) CreateStationerySale(sale *models.StationerySale) error {
	return r.db.Create(sale).Error
}

func (r *salesRepositoryImpl) CreateGiftDailySale(sale *models.GiftDailySale) error {
	return r.db.Create(sale).Error
}

func (r *salesRepositoryImpl) ListStationerySales() ([]models.StationerySale, error) {
	var sales []models.StationerySale
	err := r.db.Order("created_at desc").Find(&sales).Error
	return sales, err
}

func (r *salesRepositoryImpl) ListGiftDailySales() ([]models.GiftDailySale, error) {
	var sales []models.GiftDailySale
	err := r.db.Order("created_at desc").Find(&sales).Error
	return sales, err
}

func (r *salesRepositoryImpl) Stats() (*models.SalesStats, error) {
	type row struct {
		Amount float64
		Profit float64
		Count  int64
	}

	var stationery, gifts row
	err := r.db.Model(&models.StationerySale{}).
		Select("COALESCE(SUM(total_amount),0) AS amount, COALESCE(SUM(profit),0) AS profit, COUNT(*) AS count").
		Scan(&stationery).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.GiftDailySale{}).
		Select("COALESCE(SUM(total_amount),0) AS amount, COALESCE(SUM(profit),0) AS profit, COUNT(*) AS count").
		Scan(&gifts).Error
	if err != nil {
		return nil, err
	}

	return &models.SalesStats{
		TotalAmount: stationery.Amount + gifts.Amount,
		TotalProfit: stationery.Profit + gifts.Profit,
		SaleCount:   stationery.Count + gifts.Count,
	}, nil
}
