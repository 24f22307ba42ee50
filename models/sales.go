package models

import (
	"time"

	"gorm.io/gorm"
)

// StationerySale records one stationery sale and the profit realized on it.
type StationerySale struct {
	gorm.Model
	ItemID      uint    `json:"item_id" gorm:"index"`
	Item        string  `json:"item"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	SalePrice   float64 `json:"sale_price"`
	TotalAmount float64 `json:"total_amount"`
	Profit      float64 `json:"profit"`
	SoldBy      string  `json:"sold_by"`
}

func (StationerySale) TableName() string { return CollectionStationerySales.String() }

// GiftDailySale records one gift-store sale for a trading day.
type GiftDailySale struct {
	gorm.Model
	ItemID      uint      `json:"item_id" gorm:"index"`
	Item        string    `json:"item"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
	Profit      float64   `json:"profit"`
	SaleDate    time.Time `json:"sale_date"`
	SoldBy      string    `json:"sold_by"`
}

func (GiftDailySale) TableName() string { return CollectionGiftDailySales.String() }

// SalesStats aggregates recorded sales for the dashboard and for
// milestone evaluation.
type SalesStats struct {
	TotalAmount float64 `json:"total_amount"`
	TotalProfit float64 `json:"total_profit"`
	SaleCount   int64   `json:"sale_count"`
}
