package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"locker-app/database"
	"locker-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMasterApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := database.NewTestDB(t)

	app := fiber.New()
	controller := NewMasterController(db)
	app.Get("/api/masters", controller.GetMasters)
	app.Post("/api/masters/save-locker", controller.SaveLocker)
	app.Post("/api/masters/check-locker", controller.CheckLocker)
	app.Post("/api/masters/owner", controller.CreateOwner)
	app.Delete("/api/masters/:type/:value", controller.DeleteMaster)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestSaveLockerConflictFlow(t *testing.T) {
	app, db := setupMasterApp(t)

	// Kode baru
	code, body := doJSON(t, app, "POST", "/api/masters/save-locker", fiber.Map{
		"lockerNumber": "A-12", "ownerName": "Alice", "locationType": "Locker",
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, "success", body["status"])

	// Pemilik lain tanpa force
	code, body = doJSON(t, app, "POST", "/api/masters/save-locker", fiber.Map{
		"lockerNumber": "A-12", "ownerName": "Bob", "locationType": "Locker",
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, "conflict", body["status"])
	assert.Equal(t, "Alice", body["owner"])

	// Force acquire
	require.NoError(t, db.Create(&models.Locker{
		LocationCode: "A-12", LocationType: "Locker", OwnerName: "Alice",
	}).Error)
	code, body = doJSON(t, app, "POST", "/api/masters/save-locker", fiber.Map{
		"lockerNumber": "A-12", "ownerName": "Bob", "locationType": "Locker", "forceAcquire": true,
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, "success", body["status"])

	var locker models.Locker
	require.NoError(t, db.Where("location_code = ?", "A-12").First(&locker).Error)
	assert.Equal(t, "Bob", locker.OwnerName)
}

func TestSaveLockerTypeConflict(t *testing.T) {
	app, _ := setupMasterApp(t)

	doJSON(t, app, "POST", "/api/masters/save-locker", fiber.Map{
		"lockerNumber": "A-1", "ownerName": "Alice", "locationType": "Locker",
	})
	code, body := doJSON(t, app, "POST", "/api/masters/save-locker", fiber.Map{
		"lockerNumber": "A-1", "ownerName": "Alice", "locationType": "Rack",
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, "type_conflict", body["status"])
	assert.Contains(t, body["message"], "A-1")
}

func TestCheckLocker(t *testing.T) {
	app, db := setupMasterApp(t)

	code, body := doJSON(t, app, "POST", "/api/masters/check-locker", fiber.Map{
		"lockerNumber": "X-1",
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, "new", body["status"])

	require.NoError(t, db.Create(&models.MasterLocation{Code: "X-1", Type: "Locker"}).Error)
	_, body = doJSON(t, app, "POST", "/api/masters/check-locker", fiber.Map{"lockerNumber": "X-1"})
	assert.Equal(t, "vacant", body["status"])

	owner := "Alice"
	require.NoError(t, db.Model(&models.MasterLocation{}).
		Where("code = ?", "X-1").Update("current_owner", &owner).Error)
	_, body = doJSON(t, app, "POST", "/api/masters/check-locker", fiber.Map{"lockerNumber": "X-1"})
	assert.Equal(t, "occupied", body["status"])
	assert.Equal(t, "Alice", body["owner"])
}

func TestGetMasters(t *testing.T) {
	app, db := setupMasterApp(t)

	require.NoError(t, db.Create(&models.MasterOwner{Name: "Zainal"}).Error)
	require.NoError(t, db.Create(&models.MasterOwner{Name: "Alice"}).Error)
	for _, code := range []string{"A-10", "A-2"} {
		require.NoError(t, db.Create(&models.MasterLocation{Code: code, Type: "Locker"}).Error)
	}

	code, body := doJSON(t, app, "GET", "/api/masters", nil)
	assert.Equal(t, 200, code)

	owners := body["owners"].([]interface{})
	require.Len(t, owners, 2)
	assert.Equal(t, "Alice", owners[0].(map[string]interface{})["name"])
	assert.Equal(t, "Zainal", owners[1].(map[string]interface{})["name"])

	lockers := body["lockers"].([]interface{})
	require.Len(t, lockers, 2)
	assert.Equal(t, "A-2", lockers[0].(map[string]interface{})["number"])
	assert.Equal(t, "A-10", lockers[1].(map[string]interface{})["number"])
}

func TestCreateOwner(t *testing.T) {
	app, db := setupMasterApp(t)

	code, body := doJSON(t, app, "POST", "/api/masters/owner", fiber.Map{})
	assert.Equal(t, 400, code)
	assert.Equal(t, "Missing name", body["error"])

	code, _ = doJSON(t, app, "POST", "/api/masters/owner", fiber.Map{"name": "  Budi  "})
	assert.Equal(t, 200, code)

	var owner models.MasterOwner
	require.NoError(t, db.First(&owner).Error)
	assert.Equal(t, "Budi", owner.Name)

	// Duplikat bukan error
	code, _ = doJSON(t, app, "POST", "/api/masters/owner", fiber.Map{"name": "Budi"})
	assert.Equal(t, 200, code)

	var count int64
	db.Model(&models.MasterOwner{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteOwnerOrphansLocations(t *testing.T) {
	app, db := setupMasterApp(t)

	owner := "Alice"
	require.NoError(t, db.Create(&models.MasterOwner{Name: "Alice"}).Error)
	require.NoError(t, db.Create(&models.MasterLocation{Code: "A-1", Type: "Locker", CurrentOwner: &owner}).Error)
	require.NoError(t, db.Create(&models.Locker{LocationCode: "A-1", OwnerName: "Alice", LocationType: "Locker"}).Error)

	code, body := doJSON(t, app, "DELETE", "/api/masters/owner/Alice", nil)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Del", body["msg"])

	var ownerCount int64
	db.Model(&models.MasterOwner{}).Count(&ownerCount)
	assert.Zero(t, ownerCount)

	var location models.MasterLocation
	require.NoError(t, db.Where("code = ?", "A-1").First(&location).Error)
	assert.Nil(t, location.CurrentOwner)

	// Baris lockers tidak ikut dihapus maupun diubah
	var locker models.Locker
	require.NoError(t, db.Where("location_code = ?", "A-1").First(&locker).Error)
	assert.Equal(t, "Alice", locker.OwnerName)
}

func TestDeleteLocationCascadesLockers(t *testing.T) {
	app, db := setupMasterApp(t)

	require.NoError(t, db.Create(&models.MasterLocation{Code: "A-1", Type: "Locker"}).Error)
	require.NoError(t, db.Create(&models.Locker{LocationCode: "A-1", LocationType: "Locker"}).Error)
	require.NoError(t, db.Create(&models.Locker{LocationCode: "A-1", LocationType: "Locker"}).Error)
	require.NoError(t, db.Create(&models.Locker{LocationCode: "B-1", LocationType: "Locker"}).Error)

	code, _ := doJSON(t, app, "DELETE", "/api/masters/locker/A-1", nil)
	assert.Equal(t, 200, code)

	var locationCount int64
	db.Model(&models.MasterLocation{}).Count(&locationCount)
	assert.Zero(t, locationCount)

	var lockerCount int64
	db.Model(&models.Locker{}).Where("location_code = ?", "A-1").Count(&lockerCount)
	assert.Zero(t, lockerCount)

	db.Model(&models.Locker{}).Where("location_code = ?", "B-1").Count(&lockerCount)
	assert.EqualValues(t, 1, lockerCount)
}
