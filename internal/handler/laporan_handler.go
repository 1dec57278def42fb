package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cutting-floor-backend/internal/helper"
	"cutting-floor-backend/internal/repository"
	"cutting-floor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	maxFoto       = 5
	maxUkuranFoto = 2 * 1024 * 1024 // 2MB per file
)

type LaporanHandler struct {
	usecase *usecase.LaporanUsecase
}

func NewLaporanHandler(u *usecase.LaporanUsecase) *LaporanHandler {
	return &LaporanHandler{usecase: u}
}

func (h *LaporanHandler) Create(c *fiber.Ctx) error {
	operatorID := uint(c.Locals("user_id").(float64))

	input, err := parseLaporanForm(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data form tidak valid")
	}

	// Foto disimpan dulu ke storage lokal; yang gagal/tidak valid dilewati
	// tanpa menggagalkan submit, hanya path yang sukses yang dicatat
	fotoPaths := h.simpanFoto(c)

	laporan, err := h.usecase.Create(input, operatorID, fotoPaths, metaDari(c))
	if err != nil {
		return balasErrorLaporan(c, err)
	}

	pesan := "Laporan berhasil disimpan sebagai draft"
	if input.StatusLaporan == "submitted" {
		pesan = "Laporan berhasil disubmit"
	}
	return helper.Success(c, pesan, fiber.Map{
		"id":            laporan.ID,
		"nomor_laporan": laporan.NomorLaporan,
	})
}

func (h *LaporanHandler) Update(c *fiber.Ctx) error {
	operatorID := uint(c.Locals("user_id").(float64))
	laporanID, _ := strconv.Atoi(c.Params("id"))

	input, err := parseLaporanForm(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data form tidak valid")
	}

	fotoPaths := h.simpanFoto(c)

	laporan, err := h.usecase.Update(uint(laporanID), input, operatorID, fotoPaths, metaDari(c))
	if err != nil {
		return balasErrorLaporan(c, err)
	}

	pesan := "Laporan berhasil diubah"
	if input.StatusLaporan == "submitted" {
		pesan = "Laporan berhasil disubmit"
	}
	return helper.Success(c, pesan, fiber.Map{
		"id":            laporan.ID,
		"nomor_laporan": laporan.NomorLaporan,
	})
}

func (h *LaporanHandler) Delete(c *fiber.Ctx) error {
	operatorID := uint(c.Locals("user_id").(float64))
	laporanID, _ := strconv.Atoi(c.Params("id"))

	if err := h.usecase.Delete(uint(laporanID), operatorID, metaDari(c)); err != nil {
		return balasErrorLaporan(c, err)
	}
	return helper.Success(c, "Laporan berhasil dihapus", nil)
}

func (h *LaporanHandler) GetByID(c *fiber.Ctx) error {
	operatorID := uint(c.Locals("user_id").(float64))
	laporanID, _ := strconv.Atoi(c.Params("id"))

	laporan, err := h.usecase.GetByID(uint(laporanID), operatorID)
	if err != nil {
		return balasErrorLaporan(c, err)
	}
	return helper.Success(c, "", laporan)
}

func (h *LaporanHandler) List(c *fiber.Ctx) error {
	operatorID := uint(c.Locals("user_id").(float64))
	filter := filterDari(c)

	list, total, err := h.usecase.List(operatorID, filter)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar laporan")
	}
	return helper.SuccessList(c, list, total, filter.Page, filter.Limit)
}

// ListSemua untuk admin/validator.
func (h *LaporanHandler) ListSemua(c *fiber.Ctx) error {
	filter := filterDari(c)

	list, total, err := h.usecase.ListSemua(filter)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar laporan")
	}
	return helper.SuccessList(c, list, total, filter.Page, filter.Limit)
}

func (h *LaporanHandler) GetDetailAdmin(c *fiber.Ctx) error {
	laporanID, _ := strconv.Atoi(c.Params("id"))

	laporan, err := h.usecase.GetDetailAdmin(uint(laporanID))
	if err != nil {
		return balasErrorLaporan(c, err)
	}
	return helper.Success(c, "", laporan)
}

// simpanFoto menyimpan maksimal 5 foto (masing-masing <= 2MB, tipe image/*)
// ke ./uploads/laporan dan mengembalikan path yang berhasil disimpan.
func (h *LaporanHandler) simpanFoto(c *fiber.Ctx) []string {
	paths := []string{}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return paths
	}

	files := form.File["foto_laporan"]
	if len(files) > maxFoto {
		files = files[:maxFoto]
	}

	uploadDir := "./uploads/laporan"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	for _, file := range files {
		if file.Size > maxUkuranFoto {
			continue
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			continue
		}

		ext := filepath.Ext(file.Filename)
		pathFile := fmt.Sprintf("uploads/laporan/%s%s", uuid.NewString(), ext)
		if err := c.SaveFile(file, "./"+pathFile); err != nil {
			continue
		}
		paths = append(paths, pathFile)
	}
	return paths
}

func parseLaporanForm(c *fiber.Ctx) (usecase.LaporanInput, error) {
	input := usecase.LaporanInput{
		NomorOrder:     c.FormValue("nomor_order"),
		NomorBatch:     c.FormValue("nomor_batch"),
		TanggalLaporan: c.FormValue("tanggal_laporan"),
		JamMulai:       c.FormValue("jam_mulai"),
		JamSelesai:     c.FormValue("jam_selesai"),
		KondisiMesin:   c.FormValue("kondisi_mesin"),
		KualitasHasil:  c.FormValue("kualitas_hasil"),
		StatusLaporan:  c.FormValue("status_laporan"),
		Catatan:        c.FormValue("catatan"),
	}

	input.ShiftID = formUint(c, "shift_id")
	input.MesinID = formUint(c, "mesin_id")
	input.LineID = formUint(c, "line_id")
	input.CustomerID = formUint(c, "customer_id")
	input.PolaID = formUint(c, "pola_id")
	input.KainID = formUint(c, "kain_id")
	input.TargetQuantityPcs = formInt(c, "target_quantity_pcs")
	input.ActualQuantityPcs = formInt(c, "actual_quantity_pcs")
	input.JumlahLayer = formInt(c, "jumlah_layer")
	input.JumlahDefect = formInt(c, "jumlah_defect")
	input.PanjangKainMeter = formFloat(c, "panjang_kain_meter")
	input.LebarKainCm = formFloat(c, "lebar_kain_cm")
	input.SuhuRuangan = formFloatPtr(c, "suhu_ruangan")
	input.Kelembaban = formFloatPtr(c, "kelembaban")

	// Detail cutting dan jenis defect dikirim sebagai JSON string di form
	if raw := c.FormValue("details"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Details); err != nil {
			return input, err
		}
	}
	if raw := c.FormValue("jenis_defect"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.JenisDefect); err != nil {
			return input, err
		}
	}

	return input, nil
}

func balasErrorLaporan(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return helper.ErrorFields(c, verr.Fields)
	}
	if errors.Is(err, usecase.ErrLaporanTidakDitemukan) {
		return helper.Error(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}
	return helper.Error(c, fiber.StatusInternalServerError, err.Error())
}

func metaDari(c *fiber.Ctx) usecase.RequestMeta {
	return usecase.RequestMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
}

func filterDari(c *fiber.Ctx) repository.LaporanFilter {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	return repository.LaporanFilter{
		Status:  c.Query("status"),
		Tanggal: c.Query("tanggal"),
		Page:    page,
		Limit:   limit,
	}
}

func formInt(c *fiber.Ctx, key string) int {
	v, _ := strconv.Atoi(c.FormValue(key))
	return v
}

func formUint(c *fiber.Ctx, key string) uint {
	v, _ := strconv.Atoi(c.FormValue(key))
	if v < 0 {
		return 0
	}
	return uint(v)
}

func formFloat(c *fiber.Ctx, key string) float64 {
	v, _ := strconv.ParseFloat(c.FormValue(key), 64)
	return v
}

func formFloatPtr(c *fiber.Ctx, key string) *float64 {
	raw := c.FormValue(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
