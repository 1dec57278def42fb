package routes

import (
	"cutting-floor-backend/internal/handler"
	"cutting-floor-backend/internal/middleware"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"
	"cutting-floor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewActivityLogRepository(db)
	uc := usecase.NewUserUsecase(userRepo, logRepo)
	hdl := handler.NewUserHandler(uc)

	auth := app.Group("/api/auth")
	auth.Post("/login", hdl.Login)
	auth.Post("/logout", middleware.Auth, hdl.Logout)

	// Registrasi dan manajemen user hanya untuk admin
	admin := app.Group("/api/admin/users", middleware.Auth, middleware.Role(model.RoleAdmin))
	admin.Post("/register", hdl.Register)
	admin.Get("/", hdl.GetAll)
	admin.Patch("/:id/active", hdl.SetActive)
}
