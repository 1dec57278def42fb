package routes

import (
	"cutting-floor-backend/internal/handler"
	"cutting-floor-backend/internal/middleware"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMasterDataRoutes(app *fiber.App, db *gorm.DB) {
	mesinHdl := handler.NewMesinHandler(repository.NewMesinRepository(db))
	shiftHdl := handler.NewShiftHandler(repository.NewShiftRepository(db))
	kainHdl := handler.NewJenisKainHandler(repository.NewJenisKainRepository(db))
	lineHdl := handler.NewLineProduksiHandler(repository.NewLineProduksiRepository(db))
	customerHdl := handler.NewCustomerHandler(repository.NewCustomerRepository(db))
	polaHdl := handler.NewPolaHandler(repository.NewPolaRepository(db))

	// Daftar master data bisa dibaca semua user login (untuk dropdown form),
	// perubahan hanya untuk admin
	api := app.Group("/api/master", middleware.Auth)
	api.Get("/mesin", mesinHdl.GetAll)
	api.Get("/shift", shiftHdl.GetAll)
	api.Get("/kain", kainHdl.GetAll)
	api.Get("/line", lineHdl.GetAll)
	api.Get("/customer", customerHdl.GetAll)
	api.Get("/pola", polaHdl.GetAll)

	admin := app.Group("/api/admin/master", middleware.Auth, middleware.Role(model.RoleAdmin))

	admin.Post("/mesin", mesinHdl.Create)
	admin.Put("/mesin/:id", mesinHdl.Update)
	admin.Delete("/mesin/:id", mesinHdl.Delete)

	admin.Post("/shift", shiftHdl.Create)
	admin.Put("/shift/:id", shiftHdl.Update)
	admin.Delete("/shift/:id", shiftHdl.Delete)

	admin.Post("/kain", kainHdl.Create)
	admin.Put("/kain/:id", kainHdl.Update)
	admin.Delete("/kain/:id", kainHdl.Delete)

	admin.Post("/line", lineHdl.Create)
	admin.Put("/line/:id", lineHdl.Update)
	admin.Delete("/line/:id", lineHdl.Delete)

	admin.Post("/customer", customerHdl.Create)
	admin.Put("/customer/:id", customerHdl.Update)
	admin.Delete("/customer/:id", customerHdl.Delete)

	admin.Post("/pola", polaHdl.Create)
	admin.Put("/pola/:id", polaHdl.Update)
	admin.Delete("/pola/:id", polaHdl.Delete)
}
