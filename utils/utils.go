package utils

import (
	"locker-app/models"

	"gorm.io/gorm"
)

func InsertExportLog(db *gorm.DB, log models.ExportLog) {
	db.Create(&log)
}
