package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pointarthub/models"
)

// SettingsRepository persists the single notification settings record.
type SettingsRepository interface {
	Get() (*models.NotificationSettings, error)
	Save(settings *models.NotificationSettings) error
}

type settingsRepositoryImpl struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository instance.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get returns the stored settings, falling back to defaults when nothing
// has been saved yet.
func (r *settingsRepositoryImpl) Get() (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultNotificationSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepositoryImpl) Save(settings *models.NotificationSettings) error {
	return r.db.Save(settings).Error
}
