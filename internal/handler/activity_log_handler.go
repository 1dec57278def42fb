package handler

import (
	"strconv"

	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ActivityLogHandler struct {
	repo repository.ActivityLogRepository
}

func NewActivityLogHandler(repo repository.ActivityLogRepository) *ActivityLogHandler {
	return &ActivityLogHandler{repo: repo}
}

func (h *ActivityLogHandler) GetAll(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	userID, _ := strconv.Atoi(c.Query("user_id", "0"))

	filter := repository.ActivityLogFilter{
		Modul:  c.Query("modul"),
		UserID: uint(userID),
		Page:   page,
		Limit:  limit,
	}

	list, total, err := h.repo.GetAll(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil activity log"})
	}

	return c.JSON(fiber.Map{
		"data": list,
		"meta": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
