package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pointarthub/models"
)

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{settings: models.DefaultNotificationSettings()})

	settings, err := svc.Get()
	assert.NoError(t, err)
	assert.Equal(t, 10, settings.LowStockThreshold)
	assert.True(t, settings.LowStockAlerts)
	assert.True(t, settings.SalesMilestoneAlerts)
	assert.True(t, settings.SystemMaintenanceAlerts)
	assert.False(t, settings.EmailEnabled)
	assert.False(t, settings.DailyReports)
	assert.Equal(t, models.FrequencyImmediate, settings.NotificationFrequency)
}

func TestSettingsGetNormalizesStoredRecord(t *testing.T) {
	// An older record may predate the threshold and frequency fields.
	svc := NewSettingsService(&mockSettingsRepo{settings: models.NotificationSettings{}})

	settings, err := svc.Get()
	assert.NoError(t, err)
	assert.Equal(t, 10, settings.LowStockThreshold)
	assert.Equal(t, models.FrequencyImmediate, settings.NotificationFrequency)
}

func TestSettingsPartialUpdate(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.DefaultNotificationSettings()}
	svc := NewSettingsService(repo)

	threshold := 25
	updated, err := svc.Update(&models.UpdateNotificationSettingsRequest{
		LowStockThreshold: &threshold,
	})
	assert.NoError(t, err)
	assert.Equal(t, 25, updated.LowStockThreshold)
	assert.True(t, updated.LowStockAlerts, "fields absent from the request keep their values")
	assert.Equal(t, 25, repo.settings.LowStockThreshold)
}

func TestSettingsUpdateIgnoresNonPositiveThreshold(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{settings: models.DefaultNotificationSettings()})

	zero := 0
	updated, err := svc.Update(&models.UpdateNotificationSettingsRequest{LowStockThreshold: &zero})
	assert.NoError(t, err)
	assert.Equal(t, 10, updated.LowStockThreshold)
}

func TestSettingsUpdateRejectsUnknownFrequency(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.DefaultNotificationSettings()}
	svc := NewSettingsService(repo)

	bad := models.NotificationFrequency("weekly")
	_, err := svc.Update(&models.UpdateNotificationSettingsRequest{NotificationFrequency: &bad})
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	assert.Equal(t, models.FrequencyImmediate, repo.settings.NotificationFrequency, "a rejected update must not be saved")
}

func TestSettingsUpdateFrequency(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{settings: models.DefaultNotificationSettings()})

	daily := models.FrequencyDaily
	updated, err := svc.Update(&models.UpdateNotificationSettingsRequest{NotificationFrequency: &daily})
	assert.NoError(t, err)
	assert.Equal(t, models.FrequencyDaily, updated.NotificationFrequency)
}
