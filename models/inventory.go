package models

import "gorm.io/gorm"

// StationeryItem is a stocked stationery product.
type StationeryItem struct {
	gorm.Model
	Item         string  `json:"item" gorm:"not null"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	Rate         float64 `json:"rate"`
	SellingPrice float64 `json:"selling_price"`
}

func (StationeryItem) TableName() string { return CollectionStationery.String() }

// GiftStoreItem is a stocked gift-store product.
type GiftStoreItem struct {
	gorm.Model
	Item         string  `json:"item" gorm:"not null"`
	Custom       bool    `json:"custom"`
	Quantity     int     `json:"quantity"`
	Rate         float64 `json:"rate"`
	SellingPrice float64 `json:"selling_price"`
}

func (GiftStoreItem) TableName() string { return CollectionGiftStore.String() }

// EmbroideryOrder is a commissioned embroidery job. Quantity tracks the
// remaining pieces so the order participates in low-stock evaluation.
type EmbroideryOrder struct {
	gorm.Model
	Description string  `json:"description" gorm:"not null"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Deposit     float64 `json:"deposit"`
	Balance     float64 `json:"balance"`
	Expenditure float64 `json:"expenditure"`
}

func (EmbroideryOrder) TableName() string { return CollectionEmbroidery.String() }

// MachineItem is a machine-service consumable or rental unit.
type MachineItem struct {
	gorm.Model
	Machine      string  `json:"machine" gorm:"not null"`
	ServiceType  string  `json:"service_type"`
	Quantity     int     `json:"quantity"`
	Rate         float64 `json:"rate"`
	SellingPrice float64 `json:"selling_price"`
}

func (MachineItem) TableName() string { return CollectionMachines.String() }

// ArtServiceJob is a commissioned art-service job.
type ArtServiceJob struct {
	gorm.Model
	Service     string  `json:"service" gorm:"not null"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Deposit     float64 `json:"deposit"`
	Expenditure float64 `json:"expenditure"`
}

func (ArtServiceJob) TableName() string { return CollectionArtServices.String() }
