package routes

import (
	"locker-app/config"
	"locker-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMasterRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewMasterController(db)
	api := app.Group(config.MAIN_ROUTES + "/masters")

	api.Get("/", controller.GetMasters)
	api.Post("/save-locker", controller.SaveLocker)
	api.Post("/check-locker", controller.CheckLocker)
	api.Post("/owner", controller.CreateOwner)
	api.Delete("/:type/:value", controller.DeleteMaster)
}
