package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pointarthub/models"
	"pointarthub/repositories"
)

// SalesMilestones are the revenue boundaries a milestone event is emitted
// for the first time they are crossed.
var SalesMilestones = []float64{100_000, 250_000, 500_000, 1_000_000, 5_000_000, 10_000_000}

// NotificationService evaluates inventory and sales state against the
// configured thresholds and appends alert events to the log. Both
// evaluators are pure passes over current state plus the existing event
// log; they mutate nothing but the log itself.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	inventoryRepo    repositories.InventoryRepository
	salesRepo        repositories.SalesRepository
	settingsService  *SettingsService
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	inventoryRepo repositories.InventoryRepository,
	salesRepo repositories.SalesRepository,
	settingsService *SettingsService,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		inventoryRepo:    inventoryRepo,
		salesRepo:        salesRepo,
		settingsService:  settingsService,
	}
}

// EvaluateLowStock emits one low_stock event per item at or below the
// configured threshold, unless an unread event for the same item already
// exists. Returns the number of events emitted.
func (s *NotificationService) EvaluateLowStock() (int, error) {
	settings, err := s.settingsService.Get()
	if err != nil {
		return 0, err
	}
	if !settings.LowStockAlerts {
		return 0, nil
	}

	levels, err := s.inventoryRepo.ListStockLevels()
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, level := range levels {
		if level.Quantity > settings.LowStockThreshold {
			continue
		}

		dedupKey := fmt.Sprintf("%s:%s:%d", models.NotificationLowStock, level.Collection, level.ItemID)
		exists, err := s.notificationRepo.UnreadExists(dedupKey)
		if err != nil {
			return emitted, err
		}
		if exists {
			continue
		}

		priority := lowStockPriority(level.Quantity, settings.LowStockThreshold)
		n := &models.Notification{
			ID:       uuid.NewString(),
			Type:     models.NotificationLowStock,
			Priority: priority,
			Title:    "Low stock: " + level.Name,
			Message: fmt.Sprintf("%s has %d unit(s) left in %s (threshold %d)",
				level.Name, level.Quantity, level.Collection, settings.LowStockThreshold),
			DedupKey:  dedupKey,
			CreatedAt: time.Now(),
		}
		if err := s.notificationRepo.Create(n); err != nil {
			return emitted, err
		}
		emitted++
	}

	if emitted > 0 {
		logrus.WithField("count", emitted).Info("Low stock alerts generated")
	}
	return emitted, nil
}

// lowStockPriority derives priority from how far below threshold the item
// sits: out of stock is critical, at-threshold is medium.
func lowStockPriority(quantity, threshold int) models.NotificationPriority {
	switch {
	case quantity <= 0:
		return models.PriorityCritical
	case quantity <= threshold/2:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

// EvaluateSalesMilestones emits one sales_milestone event the first time
// each revenue boundary is crossed. Dedup is by milestone identity against
// the whole log, read or unread. The dedup state lives in the event log
// itself, which is capped at NotificationRetention entries: a milestone
// event that ages out of the log can be announced again on a later pass.
func (s *NotificationService) EvaluateSalesMilestones() (int, error) {
	settings, err := s.settingsService.Get()
	if err != nil {
		return 0, err
	}
	if !settings.SalesMilestoneAlerts {
		return 0, nil
	}

	stats, err := s.salesRepo.Stats()
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, milestone := range SalesMilestones {
		if stats.TotalAmount < milestone {
			continue
		}

		dedupKey := fmt.Sprintf("%s:%.0f", models.NotificationSalesMilestone, milestone)
		exists, err := s.notificationRepo.Exists(dedupKey)
		if err != nil {
			return emitted, err
		}
		if exists {
			continue
		}

		n := &models.Notification{
			ID:       uuid.NewString(),
			Type:     models.NotificationSalesMilestone,
			Priority: models.PriorityMedium,
			Title:    fmt.Sprintf("Sales milestone reached: %.0f", milestone),
			Message: fmt.Sprintf("Total sales have reached %.2f, passing the %.0f milestone",
				stats.TotalAmount, milestone),
			DedupKey:  dedupKey,
			CreatedAt: time.Now(),
		}
		if err := s.notificationRepo.Create(n); err != nil {
			return emitted, err
		}
		emitted++
	}

	return emitted, nil
}

// RecordSystemEvent appends a system_event entry, subject to the
// maintenance-alerts setting.
func (s *NotificationService) RecordSystemEvent(title, message string, priority models.NotificationPriority) error {
	settings, err := s.settingsService.Get()
	if err != nil {
		return err
	}
	if !settings.SystemMaintenanceAlerts {
		return nil
	}
	return s.notificationRepo.Create(&models.Notification{
		ID:        uuid.NewString(),
		Type:      models.NotificationSystemEvent,
		Priority:  priority,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// RecordBackupReminder appends one backup_reminder per calendar day.
func (s *NotificationService) RecordBackupReminder(message string) error {
	dedupKey := fmt.Sprintf("%s:%s", models.NotificationBackupReminder, time.Now().Format("2006-01-02"))
	exists, err := s.notificationRepo.Exists(dedupKey)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.notificationRepo.Create(&models.Notification{
		ID:        uuid.NewString(),
		Type:      models.NotificationBackupReminder,
		Priority:  models.PriorityLow,
		Title:     "Backup reminder",
		Message:   message,
		DedupKey:  dedupKey,
		CreatedAt: time.Now(),
	})
}

func (s *NotificationService) List(limit int) ([]models.Notification, error) {
	return s.notificationRepo.List(limit)
}

func (s *NotificationService) UnreadCount() (int64, error) {
	return s.notificationRepo.CountUnread()
}

func (s *NotificationService) MarkRead(id string) error {
	return s.notificationRepo.MarkRead(id)
}

func (s *NotificationService) MarkAllRead() error {
	return s.notificationRepo.MarkAllRead()
}
