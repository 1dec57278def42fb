package handler

import (
	"strconv"

	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type MesinHandler struct {
	repo repository.MesinRepository
}

func NewMesinHandler(repo repository.MesinRepository) *MesinHandler {
	return &MesinHandler{repo: repo}
}

func (h *MesinHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data mesin"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *MesinHandler) Create(c *fiber.Ctx) error {
	var mesin model.Mesin
	if err := c.BodyParser(&mesin); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if mesin.KodeMesin == "" || mesin.NamaMesin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode dan nama mesin wajib diisi"})
	}
	if mesin.StatusMesin == "" {
		mesin.StatusMesin = model.MesinAktif
	}
	if !mesin.StatusMesin.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status mesin tidak valid"})
	}

	if err := h.repo.Create(&mesin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat mesin"})
	}
	return c.JSON(fiber.Map{"message": "Mesin berhasil dibuat", "data": mesin})
}

func (h *MesinHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Mesin
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.StatusMesin != "" && !req.StatusMesin.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status mesin tidak valid"})
	}

	mesin, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mesin tidak ditemukan"})
	}

	mesin.KodeMesin = req.KodeMesin
	mesin.NamaMesin = req.NamaMesin
	mesin.TipeMesin = req.TipeMesin
	mesin.TahunBeli = req.TahunBeli
	if req.StatusMesin != "" {
		mesin.StatusMesin = req.StatusMesin
	}

	if err := h.repo.Update(mesin); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update mesin"})
	}
	return c.JSON(fiber.Map{"message": "Mesin berhasil diupdate", "data": mesin})
}

func (h *MesinHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus mesin"})
	}
	return c.JSON(fiber.Map{"message": "Mesin berhasil dihapus"})
}
