package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pointarthub/models"
)

// UserRepository defines the interface for account operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	UpdateRole(username string, role models.Role) error
}

type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &user, nil
}

func (r *userRepositoryImpl) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

func (r *userRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepositoryImpl) UpdateRole(username string, role models.Role) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		UpdateColumn("role", role).
		Error
}
