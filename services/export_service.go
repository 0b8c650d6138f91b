package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"locker-app/config"
	"locker-app/controllers/idgen"
	"locker-app/models"
	"locker-app/repositories"
	"locker-app/utils"

	"gorm.io/gorm"
)

// ExportService mengirim snapshot data locker ke Apps Script spreadsheet.
// Satu kali kirim, tanpa retry.
type ExportService struct {
	DB        *gorm.DB
	Client    *http.Client
	ScriptURL string
	Token     string
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{
		DB:        db,
		Client:    &http.Client{Timeout: 30 * time.Second},
		ScriptURL: config.AppsScriptURL,
		Token:     config.ScriptToken,
	}
}

func (s *ExportService) SendToSheet(rows []repositories.LockerReportRow) error {
	batchKey := strconv.FormatInt(idgen.GenerateID(), 10)

	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	u, err := url.Parse(s.ScriptURL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("key", s.Token)
	u.RawQuery = q.Encode()

	resp, err := s.Client.Post(u.String(), "application/json", bytes.NewReader(payload))
	if err != nil {
		s.logAttempt(batchKey, "ERROR", err.Error(), len(rows))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errors.New("fail to send to Apps Script")
		s.logAttempt(batchKey, "ERROR", err.Error(), len(rows))
		return err
	}

	s.logAttempt(batchKey, "INFO", "export sent", len(rows))
	return nil
}

func (s *ExportService) logAttempt(batchKey string, level string, message string, rowCount int) {
	utils.InsertExportLog(s.DB, models.ExportLog{
		BatchKey:    batchKey,
		ProcessName: "EXPORT_SHEET",
		LogLevel:    level,
		Message:     message,
		RowCount:    rowCount,
	})
}
