package handler

import (
	"time"

	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	date := c.Query("tanggal")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stats, err := h.repo.GetDashboardStats(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik dashboard"})
	}
	return c.JSON(fiber.Map{"data": stats})
}
