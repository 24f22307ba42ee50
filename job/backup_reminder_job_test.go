package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"pointarthub/models"
)

type stubBackupSource struct {
	run *models.BackupRun
	err error
}

func (s stubBackupSource) LatestRun() (*models.BackupRun, error) {
	return s.run, s.err
}

type stubReminderSink struct {
	messages []string
}

func (s *stubReminderSink) RecordBackupReminder(message string) error {
	s.messages = append(s.messages, message)
	return nil
}

func runAt(age time.Duration) *models.BackupRun {
	return &models.BackupRun{
		Model:    gorm.Model{CreatedAt: time.Now().Add(-age)},
		Filename: "point-art-hub-backup-2025-03-14-09-26-53.json",
	}
}

func TestCheckBackupAgeNoBackupYet(t *testing.T) {
	sink := &stubReminderSink{}

	assert.True(t, CheckBackupAge(stubBackupSource{}, sink, 7*24*time.Hour))
	assert.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "No backup has been taken yet")
}

func TestCheckBackupAgeStaleBackup(t *testing.T) {
	sink := &stubReminderSink{}
	source := stubBackupSource{run: runAt(8 * 24 * time.Hour)}

	assert.True(t, CheckBackupAge(source, sink, 7*24*time.Hour))
	assert.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "Consider exporting a fresh one")
}

func TestCheckBackupAgeFreshBackup(t *testing.T) {
	sink := &stubReminderSink{}
	source := stubBackupSource{run: runAt(time.Hour)}

	assert.False(t, CheckBackupAge(source, sink, 7*24*time.Hour))
	assert.Empty(t, sink.messages)
}

func TestCheckBackupAgeHistoryError(t *testing.T) {
	sink := &stubReminderSink{}
	source := stubBackupSource{err: errors.New("database down")}

	assert.False(t, CheckBackupAge(source, sink, 7*24*time.Hour))
	assert.Empty(t, sink.messages)
}
