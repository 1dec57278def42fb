package routes

import (
	"cutting-floor-backend/internal/handler"
	"cutting-floor-backend/internal/middleware"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/notifier"
	"cutting-floor-backend/internal/repository"
	"cutting-floor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLaporanRoutes(app *fiber.App, db *gorm.DB) {
	laporanRepo := repository.NewLaporanRepository(db)
	nomorRepo := repository.NewNomorLaporanRepository(db)
	logRepo := repository.NewActivityLogRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	mesinRepo := repository.NewMesinRepository(db)
	kainRepo := repository.NewJenisKainRepository(db)
	lineRepo := repository.NewLineProduksiRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	polaRepo := repository.NewPolaRepository(db)
	userRepo := repository.NewUserRepository(db)

	// nil kalau SMTP belum dikonfigurasi
	notif := notifier.NewEmailNotifier(userRepo)

	uc := usecase.NewLaporanUsecase(db, laporanRepo, nomorRepo, logRepo,
		shiftRepo, mesinRepo, kainRepo, lineRepo, customerRepo, polaRepo, notif)
	hdl := handler.NewLaporanHandler(uc)

	// Operator hanya melihat dan mengelola laporannya sendiri
	api := app.Group("/api/laporan", middleware.Auth, middleware.Role(model.RoleOperator))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)

	// Admin dan validator melihat semua laporan
	admin := app.Group("/api/admin/laporan", middleware.Auth, middleware.Role(model.RoleAdmin, model.RoleValidator))
	admin.Get("/", hdl.ListSemua)
	admin.Get("/:id", hdl.GetDetailAdmin)
}
