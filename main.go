package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"academia/config"
	"academia/database"
	"academia/notifier"
	adminRoutes "academia/routers/adminRoutes"
	apiRoutes "academia/routers/apiRoutes"
	authRoutes "academia/routers/authRoutes"
	"academia/store"
	"academia/utils"
)

func main() {
	config.LoadConfig()

	// Select the storage backend. Everything past this point only sees
	// the store.Data interface.
	if config.AppConfig.DBDriver == "memory" {
		store.Data = store.NewMemoryStore()
		log.Println("Using in-memory store")
	} else {
		database.ConnectDb()
		store.Data = store.NewGormStore(database.Database.Db)
	}

	// Select notification sinks
	if config.AppConfig.EmailSender != "" && config.AppConfig.Password != "" {
		notifier.Email = notifier.NewSMTPSender()
	}
	if config.AppConfig.SheetsWebhookURL != "" {
		notifier.Sheets = notifier.NewWebhookAppender()
	}

	utils.StartReminderScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	apiRoutes.SetupAPIRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
