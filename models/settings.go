package models

import "gorm.io/gorm"

type NotificationFrequency string

const (
	FrequencyImmediate NotificationFrequency = "immediate"
	FrequencyHourly    NotificationFrequency = "hourly"
	FrequencyDaily     NotificationFrequency = "daily"
)

// NotificationSettings is the single persisted settings record. It is
// loaded and saved as one unit; absent fields fall back to the defaults
// from DefaultNotificationSettings.
type NotificationSettings struct {
	gorm.Model              `json:"-"`
	EmailEnabled            bool                  `json:"emailEnabled"`
	LowStockThreshold       int                   `json:"lowStockThreshold"`
	LowStockAlerts          bool                  `json:"lowStockAlerts"`
	SalesMilestoneAlerts    bool                  `json:"salesMilestoneAlerts"`
	SystemMaintenanceAlerts bool                  `json:"systemMaintenanceAlerts"`
	DailyReports            bool                  `json:"dailyReports"`
	WeeklyReports           bool                  `json:"weeklyReports"`
	MonthlyReports          bool                  `json:"monthlyReports"`
	EmailAddress            string                `json:"emailAddress"`
	NotificationFrequency   NotificationFrequency `json:"notificationFrequency"`
}

func (NotificationSettings) TableName() string { return "notification_settings" }

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailEnabled:            false,
		LowStockThreshold:       10,
		LowStockAlerts:          true,
		SalesMilestoneAlerts:    true,
		SystemMaintenanceAlerts: true,
		DailyReports:            false,
		WeeklyReports:           false,
		MonthlyReports:          false,
		NotificationFrequency:   FrequencyImmediate,
	}
}

// UpdateNotificationSettingsRequest carries a partial settings update;
// nil fields are left unchanged.
type UpdateNotificationSettingsRequest struct {
	EmailEnabled            *bool                  `json:"emailEnabled,omitempty"`
	LowStockThreshold       *int                   `json:"lowStockThreshold,omitempty"`
	LowStockAlerts          *bool                  `json:"lowStockAlerts,omitempty"`
	SalesMilestoneAlerts    *bool                  `json:"salesMilestoneAlerts,omitempty"`
	SystemMaintenanceAlerts *bool                  `json:"systemMaintenanceAlerts,omitempty"`
	DailyReports            *bool                  `json:"dailyReports,omitempty"`
	WeeklyReports           *bool                  `json:"weeklyReports,omitempty"`
	MonthlyReports          *bool                  `json:"monthlyReports,omitempty"`
	EmailAddress            *string                `json:"emailAddress,omitempty"`
	NotificationFrequency   *NotificationFrequency `json:"notificationFrequency,omitempty"`
}
