package routes

import (
	"cutting-floor-backend/internal/handler"
	"cutting-floor-backend/internal/middleware"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewDashboardHandler(repository.NewDashboardRepository(db))

	api := app.Group("/api/admin/dashboard", middleware.Auth, middleware.Role(model.RoleAdmin, model.RoleValidator))
	api.Get("/", hdl.GetStats)
}
