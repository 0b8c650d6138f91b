package controllers

import (
	"net/url"
	"sort"
	"strings"

	"locker-app/models"
	"locker-app/repositories"

	"github.com/facette/natsort"
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var validate = validator.New()

type MasterController struct {
	DB *gorm.DB
}

func NewMasterController(DB *gorm.DB) *MasterController {
	return &MasterController{DB: DB}
}

type SaveLockerInput struct {
	LockerNumber string `json:"lockerNumber"`
	OwnerName    string `json:"ownerName"`
	LocationType string `json:"locationType"`
	ForceAcquire bool   `json:"forceAcquire"`
}

// SaveLocker menjalankan reconciliation registry. Conflict dijawab 200
// dengan flag status supaya UI bisa menawarkan force acquire.
func (c *MasterController) SaveLocker(ctx *fiber.Ctx) error {
	var input SaveLockerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	registry := repositories.NewRegistryRepository(c.DB)
	result, err := registry.Save(input.LockerNumber, input.OwnerName, input.LocationType, input.ForceAcquire)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	switch result.Status {
	case repositories.SaveStatusTypeConflict:
		return ctx.JSON(fiber.Map{
			"status":  result.Status,
			"message": "Kode '" + input.LockerNumber + "' conflict.",
		})
	case repositories.SaveStatusConflict:
		return ctx.JSON(fiber.Map{
			"status": result.Status,
			"owner":  result.Owner,
		})
	default:
		return ctx.JSON(fiber.Map{"status": result.Status})
	}
}

func (c *MasterController) CheckLocker(ctx *fiber.Ctx) error {
	var input SaveLockerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	registry := repositories.NewRegistryRepository(c.DB)
	result, err := registry.Check(input.LockerNumber)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type MasterOwnerItem struct {
	Name string `json:"name"`
}

type MasterLocationItem struct {
	Number       string  `json:"number"`
	Type         string  `json:"type"`
	CurrentOwner *string `json:"current_owner"`
}

// GetMasters mengembalikan katalog owner + lokasi untuk autocomplete UI.
func (c *MasterController) GetMasters(ctx *fiber.Ctx) error {
	var owners []MasterOwnerItem
	if err := c.DB.Model(&models.MasterOwner{}).
		Where("name IS NOT NULL").
		Order("name ASC").
		Select("name").
		Find(&owners).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var locations []MasterLocationItem
	if err := c.DB.Model(&models.MasterLocation{}).
		Select("code AS number, type, current_owner").
		Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return natsort.Compare(locations[i].Number, locations[j].Number)
	})

	return ctx.JSON(fiber.Map{
		"owners":  owners,
		"lockers": locations,
	})
}

type OwnerInput struct {
	Name string `json:"name" validate:"required"`
}

func (c *MasterController) CreateOwner(ctx *fiber.Ctx) error {
	var input OwnerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing name"})
	}

	owner := models.MasterOwner{Name: strings.TrimSpace(input.Name)}
	if err := c.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&owner).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"msg": "Ok"})
}

// DeleteMaster menghapus owner atau lokasi.
// Hapus owner: lokasi yang menunjuk owner itu dikosongkan, baris lockers dibiarkan.
// Hapus lokasi: baris lockers dengan kode itu ikut terhapus.
func (c *MasterController) DeleteMaster(ctx *fiber.Ctx) error {
	masterType := ctx.Params("type")
	value, err := url.PathUnescape(ctx.Params("value"))
	if err != nil {
		value = ctx.Params("value")
	}

	if masterType == "owner" {
		if err := c.DB.Where("name = ?", value).Delete(&models.MasterOwner{}).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := c.DB.Model(&models.MasterLocation{}).
			Where("current_owner = ?", value).
			Update("current_owner", nil).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	} else {
		if err := c.DB.Where("code = ?", value).Delete(&models.MasterLocation{}).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := c.DB.Where("location_code = ?", value).Delete(&models.Locker{}).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.JSON(fiber.Map{"msg": "Del"})
}
