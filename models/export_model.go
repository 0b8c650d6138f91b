package models

import "time"

// ExportLog mencatat setiap percobaan push data ke spreadsheet.
type ExportLog struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BatchKey    string    `gorm:"size:100" json:"batch_key"`
	ProcessName string    `gorm:"size:100;not null" json:"process_name"`
	LogLevel    string    `gorm:"size:10;not null" json:"log_level"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	RowCount    int       `json:"row_count"`
	CreatedBy   string    `gorm:"size:100;default:'SYSTEM'" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
