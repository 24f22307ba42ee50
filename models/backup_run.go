package models

import "gorm.io/gorm"

// BackupRun is the history record kept for every completed export. It is
// bookkeeping about backups, not part of the snapshot itself.
type BackupRun struct {
	gorm.Model
	Filename     string `json:"filename"`
	Description  string `json:"description"`
	TotalRecords int    `json:"total_records"`
	Location     string `json:"location"`
	TriggeredBy  string `json:"triggered_by"`
}
