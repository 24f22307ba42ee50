package migrations

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pointarthub/models"
)

// RunMigrations creates or updates every table the application owns.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running migrations...")

	tables := []interface{}{
		&models.User{},
		&models.StationeryItem{},
		&models.GiftStoreItem{},
		&models.EmbroideryOrder{},
		&models.MachineItem{},
		&models.ArtServiceJob{},
		&models.StationerySale{},
		&models.GiftDailySale{},
		&models.Customer{},
		&models.Invoice{},
		&models.Notification{},
		&models.NotificationSettings{},
		&models.BackupRun{},
		&models.TempTwoFASecret{},
	}

	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", table, err)
		}
	}

	logrus.Info("Migrations completed successfully")
	return nil
}
