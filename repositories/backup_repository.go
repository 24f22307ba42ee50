package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pointarthub/models"
)

// BackupRepository keeps the history of completed exports.
type BackupRepository interface {
	CreateRun(run *models.BackupRun) error
	LatestRun() (*models.BackupRun, error)
	ListRuns(limit int) ([]models.BackupRun, error)
}

type backupRepositoryImpl struct {
	db *gorm.DB
}

// NewBackupRepository creates a new BackupRepository instance.
func NewBackupRepository(db *gorm.DB) BackupRepository {
	return &backupRepositoryImpl{db: db}
}

func (r *backupRepositoryImpl) CreateRun(run *models.BackupRun) error {
	return r.db.Create(run).Error
}

// LatestRun returns the most recent export, or nil when no export has run
// yet.
func (r *backupRepositoryImpl) LatestRun() (*models.BackupRun, error) {
	var run models.BackupRun
	err := r.db.Order("created_at desc").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *backupRepositoryImpl) ListRuns(limit int) ([]models.BackupRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []models.BackupRun
	err := r.db.Order("created_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}
