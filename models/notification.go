package models

import "time"

type NotificationType string

const (
	NotificationLowStock       NotificationType = "low_stock"
	NotificationSalesMilestone NotificationType = "sales_milestone"
	NotificationSystemEvent    NotificationType = "system_event"
	NotificationBackupReminder NotificationType = "backup_reminder"
)

type NotificationPriority string

const (
	PriorityLow      NotificationPriority = "low"
	PriorityMedium   NotificationPriority = "medium"
	PriorityHigh     NotificationPriority = "high"
	PriorityCritical NotificationPriority = "critical"
)

// Notification is a single user-facing alert. DedupKey identifies the
// underlying subject (item, milestone) so evaluators can avoid emitting
// duplicates for the same subject.
type Notification struct {
	ID        string               `json:"id" gorm:"primaryKey"`
	Type      NotificationType     `json:"type" gorm:"not null;index"`
	Priority  NotificationPriority `json:"priority" gorm:"not null"`
	Title     string               `json:"title" gorm:"not null"`
	Message   string               `json:"message"`
	DedupKey  string               `json:"dedup_key" gorm:"index"`
	Read      bool                 `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time            `json:"created_at"`
}
