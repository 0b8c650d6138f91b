package main

import (
	"fmt"
	"log"

	"locker-app/config"
	"locker-app/controllers/idgen"
	"locker-app/database"
	"locker-app/migration"
	"locker-app/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Setup CORS middleware
	config.SetupCORS(app)

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	// Connect to database. Kalau gagal, server tetap jalan supaya
	// log bisa dibaca, API menjawab 500 sampai database tersedia.
	var db *gorm.DB
	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		db = nil
	} else if err := migration.Migrate(db); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
	}

	idgen.Init()

	app.Use(config.MAIN_ROUTES, func(c *fiber.Ctx) error {
		if db == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database not initialized"})
		}
		return c.Next()
	})

	// Setup routes
	routes.SetupLockerRoutes(app, db)
	routes.SetupMasterRoutes(app, db)

	// Halaman web
	app.Get("/", func(c *fiber.Ctx) error {
		if err := c.SendFile("./index.html"); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				SendString("Server Jalan! Tapi file index.html tidak ketemu. Pastikan sudah diupload.")
		}
		return nil
	})
	app.Get("/loker", func(c *fiber.Ctx) error {
		return c.Redirect(config.MAIN_ROUTES + "/lockers")
	})
	app.Static("/", "./public")
	app.Static("/", "./")

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
