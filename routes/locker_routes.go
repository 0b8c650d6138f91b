package routes

import (
	"locker-app/config"
	"locker-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLockerRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewLockerController(db)
	api := app.Group(config.MAIN_ROUTES + "/lockers")

	api.Get("/", controller.GetAllLockers)
	api.Get("/export", controller.ExportToSheet)
	api.Get("/export/excel", controller.ExportExcel)
	api.Post("/", controller.CreateLocker)
	api.Put("/:id", controller.UpdateLocker)
	api.Delete("/:id", controller.DeleteLocker)
}
