package services

import (
	"errors"

	"pointarthub/models"
	"pointarthub/repositories"
)

var ErrInvalidFrequency = errors.New("notification frequency must be immediate, hourly or daily")

// SettingsService loads and saves the notification settings record as a
// single unit, filling absent fields with the documented defaults.
type SettingsService struct {
	repo repositories.SettingsRepository
}

func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get() (*models.NotificationSettings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	normalize(settings)
	return settings, nil
}

// normalize fills fields an older stored record may lack.
func normalize(settings *models.NotificationSettings) {
	if settings.LowStockThreshold <= 0 {
		settings.LowStockThreshold = models.DefaultNotificationSettings().LowStockThreshold
	}
	if settings.NotificationFrequency == "" {
		settings.NotificationFrequency = models.FrequencyImmediate
	}
}

func (s *SettingsService) Update(req *models.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}

	if req.EmailEnabled != nil {
		settings.EmailEnabled = *req.EmailEnabled
	}
	if req.LowStockThreshold != nil && *req.LowStockThreshold > 0 {
		settings.LowStockThreshold = *req.LowStockThreshold
	}
	if req.LowStockAlerts != nil {
		settings.LowStockAlerts = *req.LowStockAlerts
	}
	if req.SalesMilestoneAlerts != nil {
		settings.SalesMilestoneAlerts = *req.SalesMilestoneAlerts
	}
	if req.SystemMaintenanceAlerts != nil {
		settings.SystemMaintenanceAlerts = *req.SystemMaintenanceAlerts
	}
	if req.DailyReports != nil {
		settings.DailyReports = *req.DailyReports
	}
	if req.WeeklyReports != nil {
		settings.WeeklyReports = *req.WeeklyReports
	}
	if req.MonthlyReports != nil {
		settings.MonthlyReports = *req.MonthlyReports
	}
	if req.EmailAddress != nil {
		settings.EmailAddress = *req.EmailAddress
	}
	if req.NotificationFrequency != nil {
		switch *req.NotificationFrequency {
		case models.FrequencyImmediate, models.FrequencyHourly, models.FrequencyDaily:
			settings.NotificationFrequency = *req.NotificationFrequency
		default:
			return nil, ErrInvalidFrequency
		}
	}

	if err := s.repo.Save(settings); err != nil {
		return nil, err
	}
	normalize(settings)
	return settings, nil
}
