package handler

import (
	"strconv"

	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Handler master data lookup sederhana (kain, line, customer, pola),
// dikelompokkan satu file seperti model dan repositorinya.

type JenisKainHandler struct {
	repo repository.JenisKainRepository
}

func NewJenisKainHandler(repo repository.JenisKainRepository) *JenisKainHandler {
	return &JenisKainHandler{repo: repo}
}

func (h *JenisKainHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kain"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *JenisKainHandler) Create(c *fiber.Ctx) error {
	var kain model.JenisKain
	if err := c.BodyParser(&kain); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if kain.KodeKain == "" || kain.NamaKain == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode dan nama kain wajib diisi"})
	}
	if err := h.repo.Create(&kain); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat jenis kain"})
	}
	return c.JSON(fiber.Map{"message": "Jenis kain berhasil dibuat", "data": kain})
}

func (h *JenisKainHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.JenisKain
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	kain, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jenis kain tidak ditemukan"})
	}

	kain.KodeKain = req.KodeKain
	kain.NamaKain = req.NamaKain
	kain.Gramasi = req.Gramasi
	kain.LebarStandarCm = req.LebarStandarCm
	kain.IsActive = req.IsActive

	if err := h.repo.Update(kain); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update jenis kain"})
	}
	return c.JSON(fiber.Map{"message": "Jenis kain berhasil diupdate", "data": kain})
}

func (h *JenisKainHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jenis kain"})
	}
	return c.JSON(fiber.Map{"message": "Jenis kain berhasil dihapus"})
}

type LineProduksiHandler struct {
	repo repository.LineProduksiRepository
}

func NewLineProduksiHandler(repo repository.LineProduksiRepository) *LineProduksiHandler {
	return &LineProduksiHandler{repo: repo}
}

func (h *LineProduksiHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data line"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *LineProduksiHandler) Create(c *fiber.Ctx) error {
	var line model.LineProduksi
	if err := c.BodyParser(&line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if line.KodeLine == "" || line.NamaLine == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode dan nama line wajib diisi"})
	}
	if err := h.repo.Create(&line); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat line produksi"})
	}
	return c.JSON(fiber.Map{"message": "Line produksi berhasil dibuat", "data": line})
}

func (h *LineProduksiHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.LineProduksi
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	line, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Line produksi tidak ditemukan"})
	}

	line.KodeLine = req.KodeLine
	line.NamaLine = req.NamaLine
	line.KapasitasHarian = req.KapasitasHarian
	line.IsActive = req.IsActive

	if err := h.repo.Update(line); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update line produksi"})
	}
	return c.JSON(fiber.Map{"message": "Line produksi berhasil diupdate", "data": line})
}

func (h *LineProduksiHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus line produksi"})
	}
	return c.JSON(fiber.Map{"message": "Line produksi berhasil dihapus"})
}

type CustomerHandler struct {
	repo repository.CustomerRepository
}

func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

func (h *CustomerHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data customer"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if customer.KodeCustomer == "" || customer.NamaCustomer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode dan nama customer wajib diisi"})
	}
	if err := h.repo.Create(&customer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat customer"})
	}
	return c.JSON(fiber.Map{"message": "Customer berhasil dibuat", "data": customer})
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	customer, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer tidak ditemukan"})
	}

	customer.KodeCustomer = req.KodeCustomer
	customer.NamaCustomer = req.NamaCustomer
	customer.Kontak = req.Kontak
	customer.Alamat = req.Alamat
	customer.IsActive = req.IsActive

	if err := h.repo.Update(customer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update customer"})
	}
	return c.JSON(fiber.Map{"message": "Customer berhasil diupdate", "data": customer})
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus customer"})
	}
	return c.JSON(fiber.Map{"message": "Customer berhasil dihapus"})
}

type PolaHandler struct {
	repo repository.PolaRepository
}

func NewPolaHandler(repo repository.PolaRepository) *PolaHandler {
	return &PolaHandler{repo: repo}
}

func (h *PolaHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pola"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *PolaHandler) Create(c *fiber.Ctx) error {
	var pola model.Pola
	if err := c.BodyParser(&pola); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if pola.KodePola == "" || pola.NamaPola == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode dan nama pola wajib diisi"})
	}
	if err := h.repo.Create(&pola); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat pola"})
	}
	return c.JSON(fiber.Map{"message": "Pola berhasil dibuat", "data": pola})
}

func (h *PolaHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var req model.Pola
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	pola, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pola tidak ditemukan"})
	}

	pola.KodePola = req.KodePola
	pola.NamaPola = req.NamaPola
	pola.Kategori = req.Kategori
	pola.UkuranTersedia = req.UkuranTersedia
	pola.IsActive = req.IsActive

	if err := h.repo.Update(pola); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update pola"})
	}
	return c.JSON(fiber.Map{"message": "Pola berhasil diupdate", "data": pola})
}

func (h *PolaHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus pola"})
	}
	return c.JSON(fiber.Map{"message": "Pola berhasil dihapus"})
}
