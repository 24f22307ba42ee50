// Package jobs runs periodic background checks.
package jobs

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"pointarthub/models"
)

// BackupSource reports the most recent completed export, nil when none
// has run yet.
type BackupSource interface {
	LatestRun() (*models.BackupRun, error)
}

// ReminderSink receives the nag message.
type ReminderSink interface {
	RecordBackupReminder(message string) error
}

// StartBackupReminderJob nags once a day when the last backup is older
// than maxAge (or no backup has ever run). The first check runs
// immediately so a freshly started instance with stale data does not stay
// silent until tomorrow. Runs until the process exits.
func StartBackupReminderJob(backups BackupSource, reminders ReminderSink, maxAge time.Duration) {
	CheckBackupAge(backups, reminders, maxAge)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		CheckBackupAge(backups, reminders, maxAge)
	}
}

// CheckBackupAge records a reminder when no backup exists or the latest
// one is older than maxAge. Returns true when a reminder was recorded.
func CheckBackupAge(backups BackupSource, reminders ReminderSink, maxAge time.Duration) bool {
	run, err := backups.LatestRun()
	if err != nil {
		logrus.WithError(err).Error("Backup reminder check failed")
		return false
	}

	var message string
	switch {
	case run == nil:
		message = "No backup has been taken yet. Export a backup from the admin panel."
	case time.Since(run.CreatedAt) > maxAge:
		message = fmt.Sprintf("Last backup was taken %s (%s ago). Consider exporting a fresh one.",
			run.CreatedAt.Format("2006-01-02"), time.Since(run.CreatedAt).Round(time.Hour))
	default:
		return false
	}

	if err := reminders.RecordBackupReminder(message); err != nil {
		logrus.WithError(err).Error("Failed to record backup reminder")
		return false
	}
	return true
}
