package main

import (
	"fmt"

	"cutting-floor-backend/config"
	"cutting-floor-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New(fiber.Config{
		BodyLimit: 15 * 1024 * 1024, // Multipart laporan: 5 foto x 2MB plus field form
	})

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve static files (foto laporan bisa dibuka via /uploads/...)
	app.Static("/uploads", "./uploads")

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupLaporanRoutes(app, config.DB)
	routes.SetupMasterDataRoutes(app, config.DB)
	routes.SetupActivityLogRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
