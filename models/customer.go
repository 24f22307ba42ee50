package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (Customer) TableName() string { return CollectionCustomers.String() }

type Invoice struct {
	gorm.Model
	CustomerID uint      `json:"customer_id" gorm:"index"`
	Number     string    `json:"number" gorm:"unique"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	IssuedAt   time.Time `json:"issued_at"`
}

func (Invoice) TableName() string { return CollectionInvoices.String() }
