package controllers

import (
	"locker-app/models"
	"locker-app/repositories"
	"locker-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type LockerController struct {
	DB     *gorm.DB
	Export *services.ExportService
}

func NewLockerController(DB *gorm.DB) *LockerController {
	return &LockerController{DB: DB, Export: services.NewExportService(DB)}
}

// LockerInput adalah body yang dikirim front end. Kode lokasi datang
// sebagai lockerNumber, file index sebagai index.
type LockerInput struct {
	OwnerName      string  `json:"ownerName"`
	ItemName       string  `json:"itemName"`
	LockerNumber   string  `json:"lockerNumber"`
	LocationType   string  `json:"locationType"`
	EntryDate      string  `json:"entryDate"`
	ExpirationDate string  `json:"expirationDate"`
	Keterangan     string  `json:"keterangan"`
	ManualStatus   string  `json:"manualStatus"`
	ManualNote     string  `json:"manualNote"`
	Index          *string `json:"index"`
}

// READ ALL
func (c *LockerController) GetAllLockers(ctx *fiber.Ctx) error {
	repo := repositories.NewLockerRepository(c.DB)
	items, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(items)
}

// CREATE
func (c *LockerController) CreateLocker(ctx *fiber.Ctx) error {
	var input LockerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	locationType := input.LocationType
	if locationType == "" {
		locationType = "Locker"
	}

	locker := models.Locker{
		OwnerName:      input.OwnerName,
		ItemName:       input.ItemName,
		LocationCode:   input.LockerNumber,
		LocationType:   locationType,
		EntryDate:      input.EntryDate,
		ExpirationDate: input.ExpirationDate,
		Keterangan:     input.Keterangan,
		ManualStatus:   "Auto",
		ManualNote:     "",
		FileIndex:      input.Index,
	}

	if err := c.DB.Create(&locker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"msg": "Ok"})
}

// UPDATE (replace semua field)
func (c *LockerController) UpdateLocker(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input LockerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	// Updates lewat map supaya nilai kosong ikut tertulis
	err := c.DB.Model(&models.Locker{}).Where("id = ?", id).Updates(map[string]interface{}{
		"owner_name":      input.OwnerName,
		"item_name":       input.ItemName,
		"location_code":   input.LockerNumber,
		"location_type":   input.LocationType,
		"entry_date":      input.EntryDate,
		"expiration_date": input.ExpirationDate,
		"keterangan":      input.Keterangan,
		"manual_status":   input.ManualStatus,
		"manual_note":     input.ManualNote,
		"file_index":      input.Index,
	}).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"msg": "Upd"})
}

// DELETE
func (c *LockerController) DeleteLocker(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.DB.Where("id = ?", id).Delete(&models.Locker{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"msg": "Del"})
}

// ExportToSheet push semua baris (atau per tipe) ke spreadsheet.
func (c *LockerController) ExportToSheet(ctx *fiber.Ctx) error {
	locationType := ctx.Query("type")

	repo := repositories.NewLockerRepository(c.DB)
	rows, err := repo.BuildReport(locationType)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Export.SendToSheet(rows); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	label := locationType
	if label == "" {
		label = "ALL"
	}
	return ctx.JSON(fiber.Map{"msg": "Export " + label + " OK"})
}

// ExportExcel download laporan yang sama sebagai file xlsx.
func (c *LockerController) ExportExcel(ctx *fiber.Ctx) error {
	repo := repositories.NewLockerRepository(c.DB)
	rows, err := repo.BuildReport(ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Buat file Excel baru
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"ID Sistem", "Kode Lokasi", "Tipe", "Owner Name", "Item Name",
		"Tanggal Masuk", "Tanggal Exp", "Status Manual", "Keterangan Status", "Keterangan", "Index"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	// Isi data ke dalam sheet
	for i, row := range rows {
		fileIndex := ""
		if row.FileIndex != nil {
			fileIndex = *row.FileIndex
		}
		values := []interface{}{row.SystemID, row.LocationCode, row.LocationType, row.OwnerName,
			row.ItemName, row.EntryDate, row.ExpirationDate, row.ManualStatus, row.ManualNote,
			row.Keterangan, fileIndex}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Simpan file ke dalam response
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="locker-report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Gagal generate Excel")
	}

	return nil
}
