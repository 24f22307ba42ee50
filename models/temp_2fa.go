package models

import "time"

// TempTwoFASecret holds a TOTP secret between setup and confirmation.
type TempTwoFASecret struct {
	ID        uint   `gorm:"primaryKey"`
	UserEmail string `gorm:"uniqueIndex"`
	Secret    string
	CreatedAt time.Time
}
