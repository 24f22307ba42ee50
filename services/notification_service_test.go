package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pointarthub/models"
	"pointarthub/repositories"
)

type mockNotificationRepo struct {
	events []models.Notification
}

func (m *mockNotificationRepo) Create(n *models.Notification) error {
	m.events = append(m.events, *n)
	if len(m.events) > repositories.NotificationRetention {
		m.events = m.events[len(m.events)-repositories.NotificationRetention:]
	}
	return nil
}

func (m *mockNotificationRepo) List(limit int) ([]models.Notification, error) {
	return m.events, nil
}

func (m *mockNotificationRepo) CountUnread() (int64, error) {
	var count int64
	for _, n := range m.events {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) UnreadExists(dedupKey string) (bool, error) {
	for _, n := range m.events {
		if n.DedupKey == dedupKey && !n.Read {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNotificationRepo) Exists(dedupKey string) (bool, error) {
	for _, n := range m.events {
		if n.DedupKey == dedupKey {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNotificationRepo) MarkRead(id string) error {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) MarkAllRead() error {
	for i := range m.events {
		m.events[i].Read = true
	}
	return nil
}

type mockInventoryRepo struct {
	repositories.InventoryRepository
	levels []repositories.StockLevel
}

func (m *mockInventoryRepo) ListStockLevels() ([]repositories.StockLevel, error) {
	return m.levels, nil
}

type mockSalesRepo struct {
	repositories.SalesRepository
	stats models.SalesStats
}

func (m *mockSalesRepo) Stats() (*models.SalesStats, error) {
	stats := m.stats
	return &stats, nil
}

type mockSettingsRepo struct {
	settings models.NotificationSettings
}

func (m *mockSettingsRepo) Get() (*models.NotificationSettings, error) {
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsRepo) Save(settings *models.NotificationSettings) error {
	m.settings = *settings
	return nil
}

func newNotificationService(
	levels []repositories.StockLevel,
	stats models.SalesStats,
	settings models.NotificationSettings,
) (*NotificationService, *mockNotificationRepo) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(
		repo,
		&mockInventoryRepo{levels: levels},
		&mockSalesRepo{stats: stats},
		NewSettingsService(&mockSettingsRepo{settings: settings}),
	)
	return svc, repo
}

func TestLowStockThresholdBoundary(t *testing.T) {
	levels := []repositories.StockLevel{
		{Collection: models.CollectionStationery, ItemID: 1, Name: "Pens", Quantity: 10},
		{Collection: models.CollectionStationery, ItemID: 2, Name: "Rulers", Quantity: 11},
	}
	svc, repo := newNotificationService(levels, models.SalesStats{}, models.DefaultNotificationSettings())

	emitted, err := svc.EvaluateLowStock()
	assert.NoError(t, err)
	assert.Equal(t, 1, emitted, "quantity equal to threshold qualifies, one above does not")
	assert.Equal(t, "Low stock: Pens", repo.events[0].Title)
	assert.Equal(t, models.NotificationLowStock, repo.events[0].Type)
}

func TestLowStockDedupAgainstUnread(t *testing.T) {
	levels := []repositories.StockLevel{
		{Collection: models.CollectionGiftStore, ItemID: 5, Name: "Mugs", Quantity: 2},
	}
	svc, repo := newNotificationService(levels, models.SalesStats{}, models.DefaultNotificationSettings())

	emitted, err := svc.EvaluateLowStock()
	assert.NoError(t, err)
	assert.Equal(t, 1, emitted)

	// Same state again: the unread event suppresses a duplicate.
	emitted, err = svc.EvaluateLowStock()
	assert.NoError(t, err)
	assert.Zero(t, emitted)

	// Once acknowledged, a still-low item alerts again.
	assert.NoError(t, repo.MarkAllRead())
	emitted, err = svc.EvaluateLowStock()
	assert.NoError(t, err)
	assert.Equal(t, 1, emitted)
}

func TestLowStockPriorityDerivation(t *testing.T) {
	assert.Equal(t, models.PriorityCritical, lowStockPriority(0, 10))
	assert.Equal(t, models.PriorityCritical, lowStockPriority(-1, 10))
	assert.Equal(t, models.PriorityHigh, lowStockPriority(5, 10))
	assert.Equal(t, models.PriorityMedium, lowStockPriority(6, 10))
	assert.Equal(t, models.PriorityMedium, lowStockPriority(10, 10))
}

func TestLowStockDisabledBySettings(t *testing.T) {
	levels := []repositories.StockLevel{
		{Collection: models.CollectionStationery, ItemID: 1, Name: "Pens", Quantity: 0},
	}
	settings := models.DefaultNotificationSettings()
	settings.LowStockAlerts = false

	svc, repo := newNotificationService(levels, models.SalesStats{}, settings)
	emitted, err := svc.EvaluateLowStock()
	assert.NoError(t, err)
	assert.Zero(t, emitted)
	assert.Empty(t, repo.events)
}

func TestSalesMilestoneFirstCrossingOnly(t *testing.T) {
	stats := models.SalesStats{TotalAmount: 600_000}
	svc, repo := newNotificationService(nil, stats, models.DefaultNotificationSettings())

	emitted, err := svc.EvaluateSalesMilestones()
	assert.NoError(t, err)
	assert.Equal(t, 3, emitted, "100k, 250k and 500k are all newly crossed")

	// Milestones are announced once ever, even after being read.
	assert.NoError(t, repo.MarkAllRead())
	emitted, err = svc.EvaluateSalesMilestones()
	assert.NoError(t, err)
	assert.Zero(t, emitted)
}

func TestSalesMilestoneBelowFirstBoundary(t *testing.T) {
	svc, repo := newNotificationService(nil, models.SalesStats{TotalAmount: 99_999.99}, models.DefaultNotificationSettings())

	emitted, err := svc.EvaluateSalesMilestones()
	assert.NoError(t, err)
	assert.Zero(t, emitted)
	assert.Empty(t, repo.events)
}

func TestBackupReminderOncePerDay(t *testing.T) {
	svc, repo := newNotificationService(nil, models.SalesStats{}, models.DefaultNotificationSettings())

	assert.NoError(t, svc.RecordBackupReminder("no backup in 7 days"))
	assert.NoError(t, svc.RecordBackupReminder("no backup in 7 days"))
	assert.Len(t, repo.events, 1)
	assert.Equal(t, models.NotificationBackupReminder, repo.events[0].Type)
	assert.Equal(t, models.PriorityLow, repo.events[0].Priority)
}

func TestSystemEventRespectsMaintenanceSetting(t *testing.T) {
	settings := models.DefaultNotificationSettings()
	settings.SystemMaintenanceAlerts = false

	svc, repo := newNotificationService(nil, models.SalesStats{}, settings)
	assert.NoError(t, svc.RecordSystemEvent("Restore completed", "10 records restored", models.PriorityHigh))
	assert.Empty(t, repo.events)

	settings.SystemMaintenanceAlerts = true
	svc, repo = newNotificationService(nil, models.SalesStats{}, settings)
	assert.NoError(t, svc.RecordSystemEvent("Restore completed", "10 records restored", models.PriorityHigh))
	assert.Len(t, repo.events, 1)
	assert.Equal(t, models.NotificationSystemEvent, repo.events[0].Type)
}
