package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is a staff or admin account. The table keeps the name "profiles"
// so accounts travel with backups like any other collection.
type User struct {
	gorm.Model
	Username         string `json:"username" gorm:"unique;not null"`
	Password         string `json:"-" gorm:"not null"`
	Email            string `json:"email" gorm:"unique"`
	FullName         string `json:"full_name"`
	Role             Role   `json:"role" gorm:"default:staff"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
	TwoFactorSecret  string `json:"-"`
}

func (User) TableName() string { return CollectionProfiles.String() }

func (user *User) BeforeSave(tx *gorm.DB) (err error) {
	if user.Password != "" && !isBcryptHash(user.Password) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashedPassword)
	}
	return nil
}

// isBcryptHash keeps the BeforeSave hook idempotent: restored profile
// records already carry hashed passwords.
func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
