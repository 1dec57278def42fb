package routes

import (
	"cutting-floor-backend/internal/handler"
	"cutting-floor-backend/internal/middleware"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupActivityLogRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewActivityLogHandler(repository.NewActivityLogRepository(db))

	api := app.Group("/api/admin/activity-log", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetAll)
}
