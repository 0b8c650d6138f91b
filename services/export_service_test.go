package services

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"locker-app/controllers/idgen"
	"locker-app/database"
	"locker-app/models"
	"locker-app/repositories"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testScriptURL = "https://script.example.com/exec"

func newTestExportService(t *testing.T, db *gorm.DB) *ExportService {
	t.Helper()
	idgen.Init()

	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	return &ExportService{
		DB:        db,
		Client:    client,
		ScriptURL: testScriptURL,
		Token:     "rahasia",
	}
}

func TestSendToSheet(t *testing.T) {
	db := database.NewTestDB(t)
	svc := newTestExportService(t, db)

	var gotKey string
	var gotRows []map[string]interface{}
	httpmock.RegisterResponder("POST", testScriptURL,
		func(req *http.Request) (*http.Response, error) {
			gotKey = req.URL.Query().Get("key")
			body, _ := io.ReadAll(req.Body)
			require.NoError(t, json.Unmarshal(body, &gotRows))
			return httpmock.NewStringResponse(200, "ok"), nil
		})

	rows := []repositories.LockerReportRow{
		{SystemID: "LK-1", LocationCode: "A-1", LocationType: "Locker", OwnerName: "Alice"},
	}
	require.NoError(t, svc.SendToSheet(rows))

	assert.Equal(t, "rahasia", gotKey)
	require.Len(t, gotRows, 1)
	assert.Equal(t, "A-1", gotRows[0]["Kode Lokasi"])
	assert.Equal(t, "Alice", gotRows[0]["Owner Name"])

	var logs []models.ExportLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "INFO", logs[0].LogLevel)
	assert.Equal(t, 1, logs[0].RowCount)
	assert.NotEmpty(t, logs[0].BatchKey)
}

func TestSendToSheetRemoteFailure(t *testing.T) {
	db := database.NewTestDB(t)
	svc := newTestExportService(t, db)

	httpmock.RegisterResponder("POST", testScriptURL,
		httpmock.NewStringResponder(500, "boom"))

	err := svc.SendToSheet([]repositories.LockerReportRow{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Apps Script")

	var logs []models.ExportLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "ERROR", logs[0].LogLevel)
}
