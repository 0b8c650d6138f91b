package migration

import (
	"locker-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Locker{},
		&models.MasterOwner{},
		&models.MasterLocation{},
		&models.ExportLog{},
	)
}
