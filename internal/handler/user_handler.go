package handler

import (
	"errors"
	"strconv"

	"cutting-floor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Nama     string `json:"nama"`
		NIK      string `json:"nik"`
		Password string `json:"password"`
		Email    string `json:"email"`
		Role     string `json:"role"` // admin / operator / validator
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if input.Nama == "" || input.NIK == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, NIK, dan password wajib diisi"})
	}
	if input.Role == "" {
		input.Role = "operator"
	}

	user, err := h.usecase.Register(input.Nama, input.NIK, input.Password, input.Email, input.Role)
	if err != nil {
		if errors.Is(err, usecase.ErrRoleTidakDikenal) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role tidak dikenal"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal registrasi user"})
	}
	return c.JSON(fiber.Map{"message": "User berhasil terdaftar", "data": user})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		NIK      string `json:"nik"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	meta := usecase.RequestMeta{IPAddress: c.IP(), UserAgent: c.Get("User-Agent")}
	token, user, err := h.usecase.Login(input.NIK, input.Password, meta)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNonaktif) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun sudah dinonaktifkan"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIK atau password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user": fiber.Map{
			"id":   user.ID,
			"nama": user.Nama,
			"nik":  user.NIK,
			"role": user.Role.NamaRole,
		},
	})
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	meta := usecase.RequestMeta{IPAddress: c.IP(), UserAgent: c.Get("User-Agent")}
	h.usecase.Logout(userID, meta)
	return c.JSON(fiber.Map{"message": "Logout berhasil"})
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.usecase.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var input struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	user, err := h.usecase.SetActive(uint(id), input.IsActive)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Status user berhasil diubah", "data": user})
}
