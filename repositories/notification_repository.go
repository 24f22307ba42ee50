package repositories

import (
	"gorm.io/gorm"

	"pointarthub/models"
)

// NotificationRetention is the number of most-recent events kept; older
// events are dropped at insert time.
const NotificationRetention = 100

// NotificationRepository is the append-only event log behind the
// notification generator.
type NotificationRepository interface {
	Create(n *models.Notification) error
	List(limit int) ([]models.Notification, error)
	CountUnread() (int64, error)
	UnreadExists(dedupKey string) (bool, error)
	Exists(dedupKey string) (bool, error)
	MarkRead(id string) error
	MarkAllRead() error
}

type notificationRepositoryImpl struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository instance.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(n *models.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return err
	}
	return r.prune()
}

// prune enforces the retention window: most recent N retained, oldest
// dropped first.
func (r *notificationRepositoryImpl) prune() error {
	var ids []string
	err := r.db.Model(&models.Notification{}).
		Order("created_at desc").
		Offset(NotificationRetention).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Notification{}, "id IN ?", ids).Error
}

func (r *notificationRepositoryImpl) List(limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > NotificationRetention {
		limit = NotificationRetention
	}
	var notifications []models.Notification
	err := r.db.Order("created_at desc").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepositoryImpl) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

func (r *notificationRepositoryImpl) UnreadExists(dedupKey string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("dedup_key = ? AND read = ?", dedupKey, false).
		Count(&count).Error
	return count > 0, err
}

func (r *notificationRepositoryImpl) Exists(dedupKey string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("dedup_key = ?", dedupKey).
		Count(&count).Error
	return count > 0, err
}

func (r *notificationRepositoryImpl) MarkRead(id string) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		UpdateColumn("read", true).
		Error
}

func (r *notificationRepositoryImpl) MarkAllRead() error {
	return r.db.Model(&models.Notification{}).
		Where("read = ?", false).
		UpdateColumn("read", true).
		Error
}
