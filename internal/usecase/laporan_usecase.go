package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/notifier"
	"cutting-floor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrLaporanTidakDitemukan dipakai juga untuk laporan milik operator lain atau
// laporan yang sudah submitted: dari luar ketiganya tidak bisa dibedakan,
// supaya keberadaan laporan orang lain tidak bocor.
var ErrLaporanTidakDitemukan = errors.New("laporan tidak ditemukan")

// ValidationError membawa pesan per field untuk dikembalikan ke form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validasi gagal"
}

type DetailCuttingInput struct {
	NamaPola        string  `json:"nama_pola" validate:"required"`
	Ukuran          string  `json:"ukuran" validate:"required"`
	JumlahPotongan  int     `json:"jumlah_potongan" validate:"required,min=1"`
	PanjangPolaCm   float64 `json:"panjang_pola_cm" validate:"min=0"`
	LebarPolaCm     float64 `json:"lebar_pola_cm" validate:"min=0"`
	WastePercentage float64 `json:"waste_percentage" validate:"min=0,max=100"`
	Keterangan      string  `json:"keterangan"`
}

type LaporanInput struct {
	NomorOrder        string               `json:"nomor_order" validate:"required"`
	NomorBatch        string               `json:"nomor_batch" validate:"required"`
	TanggalLaporan    string               `json:"tanggal_laporan" validate:"required,datetime=2006-01-02"`
	ShiftID           uint                 `json:"shift_id" validate:"required"`
	MesinID           uint                 `json:"mesin_id" validate:"required"`
	LineID            uint                 `json:"line_id" validate:"required"`
	CustomerID        uint                 `json:"customer_id" validate:"required"`
	PolaID            uint                 `json:"pola_id" validate:"required"`
	KainID            uint                 `json:"kain_id" validate:"required"`
	TargetQuantityPcs int                  `json:"target_quantity_pcs" validate:"required,min=1"`
	ActualQuantityPcs int                  `json:"actual_quantity_pcs" validate:"min=0"`
	JumlahLayer       int                  `json:"jumlah_layer" validate:"required,min=1"`
	PanjangKainMeter  float64              `json:"panjang_kain_meter" validate:"min=0"`
	LebarKainCm       float64              `json:"lebar_kain_cm" validate:"min=0"`
	JamMulai          string               `json:"jam_mulai" validate:"required,datetime=15:04"`
	JamSelesai        string               `json:"jam_selesai" validate:"required,datetime=15:04"`
	KondisiMesin      string               `json:"kondisi_mesin" validate:"required,oneof=baik perlu_maintenance rusak"`
	KualitasHasil     string               `json:"kualitas_hasil" validate:"required,oneof=baik bagus cukup kurang"`
	JumlahDefect      int                  `json:"jumlah_defect" validate:"min=0"`
	JenisDefect       []string             `json:"jenis_defect"`
	SuhuRuangan       *float64             `json:"suhu_ruangan"`
	Kelembaban        *float64             `json:"kelembaban"`
	StatusLaporan     string               `json:"status_laporan" validate:"required,oneof=draft submitted"`
	Catatan           string               `json:"catatan"`
	Details           []DetailCuttingInput `json:"details" validate:"omitempty,dive"`
}

// RequestMeta metadata request untuk activity log.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type LaporanUsecase struct {
	db           *gorm.DB
	laporanRepo  repository.LaporanRepository
	nomorRepo    repository.NomorLaporanRepository
	logRepo      repository.ActivityLogRepository
	shiftRepo    repository.ShiftRepository
	mesinRepo    repository.MesinRepository
	kainRepo     repository.JenisKainRepository
	lineRepo     repository.LineProduksiRepository
	customerRepo repository.CustomerRepository
	polaRepo     repository.PolaRepository
	notif        notifier.Notifier
	validate     *validator.Validate
}

func NewLaporanUsecase(
	db *gorm.DB,
	laporanRepo repository.LaporanRepository,
	nomorRepo repository.NomorLaporanRepository,
	logRepo repository.ActivityLogRepository,
	shiftRepo repository.ShiftRepository,
	mesinRepo repository.MesinRepository,
	kainRepo repository.JenisKainRepository,
	lineRepo repository.LineProduksiRepository,
	customerRepo repository.CustomerRepository,
	polaRepo repository.PolaRepository,
	notif notifier.Notifier,
) *LaporanUsecase {
	v := validator.New()
	// Pakai nama di tag json sebagai key error, bukan nama field struct
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &LaporanUsecase{
		db:           db,
		laporanRepo:  laporanRepo,
		nomorRepo:    nomorRepo,
		logRepo:      logRepo,
		shiftRepo:    shiftRepo,
		mesinRepo:    mesinRepo,
		kainRepo:     kainRepo,
		lineRepo:     lineRepo,
		customerRepo: customerRepo,
		polaRepo:     polaRepo,
		notif:        notif,
		validate:     v,
	}
}

// Create memvalidasi input, menghitung field turunan, lalu menyimpan laporan,
// detail cutting, dan satu baris activity log dalam SATU transaksi. Nomor
// laporan diambil dari counter per tanggal di dalam transaksi yang sama.
func (u *LaporanUsecase) Create(input LaporanInput, operatorID uint, fotoPaths []string, meta RequestMeta) (*model.LaporanCutting, error) {
	if verr := u.validasi(input); verr != nil {
		return nil, verr
	}

	mulai, selesai, durasi, err := HitungDurasi(input.TanggalLaporan, input.JamMulai, input.JamSelesai)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"jam_mulai": "Format jam tidak valid"}}
	}

	laporan := u.buatModel(input, operatorID)
	laporan.WaktuMulai = mulai
	laporan.WaktuSelesai = selesai
	laporan.DurasiMenit = durasi
	laporan.FotoLaporan = mustJSON(fotoPaths)

	aksi := "create draft"
	if laporan.StatusLaporan == model.StatusSubmitted {
		aksi = "create submit"
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		nomor, err := u.nomorRepo.NextTx(tx, compactTanggal(input.TanggalLaporan))
		if err != nil {
			return err
		}
		laporan.NomorLaporan = nomor

		if err := u.laporanRepo.CreateTx(tx, laporan); err != nil {
			return err
		}

		details := buatDetails(input.Details)
		if err := u.laporanRepo.ReplaceDetailsTx(tx, laporan.ID, details); err != nil {
			return err
		}
		laporan.Details = details

		return u.logRepo.CreateTx(tx, &model.ActivityLog{
			UserID:      &operatorID,
			Aksi:        aksi,
			Modul:       model.ModulLaporan,
			DataSesudah: snapshot(laporan),
			IPAddress:   meta.IPAddress,
			UserAgent:   meta.UserAgent,
			Keterangan:  fmt.Sprintf("Laporan %s dibuat", laporan.NomorLaporan),
		})
	})
	if err != nil {
		log.Printf("create laporan gagal (operator=%d order=%s): %v", operatorID, input.NomorOrder, err)
		return nil, errors.New("gagal menyimpan laporan")
	}

	if laporan.StatusLaporan == model.StatusSubmitted && u.notif != nil {
		go u.notif.LaporanDisubmit(laporan)
	}

	return laporan, nil
}

// Update hanya boleh untuk laporan draft milik operator sendiri. Seluruh set
// detail cutting diganti (hapus semua, insert ulang), bukan di-diff.
func (u *LaporanUsecase) Update(laporanID uint, input LaporanInput, operatorID uint, fotoPaths []string, meta RequestMeta) (*model.LaporanCutting, error) {
	existing, err := u.laporanRepo.GetByIDAndOperator(laporanID, operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLaporanTidakDitemukan
		}
		log.Printf("update laporan gagal saat ambil data (id=%d): %v", laporanID, err)
		return nil, errors.New("gagal mengambil laporan")
	}
	if existing.StatusLaporan != model.StatusDraft {
		return nil, ErrLaporanTidakDitemukan
	}

	if verr := u.validasi(input); verr != nil {
		return nil, verr
	}

	mulai, selesai, durasi, err := HitungDurasi(input.TanggalLaporan, input.JamMulai, input.JamSelesai)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"jam_mulai": "Format jam tidak valid"}}
	}

	sebelum := snapshot(existing)

	laporan := u.buatModel(input, operatorID)
	laporan.Model = existing.Model
	laporan.NomorLaporan = existing.NomorLaporan // Nomor tidak pernah di-assign ulang
	laporan.WaktuMulai = mulai
	laporan.WaktuSelesai = selesai
	laporan.DurasiMenit = durasi
	laporan.FotoLaporan = gabungFoto(existing.FotoLaporan, fotoPaths)

	aksi := "update draft"
	if laporan.StatusLaporan == model.StatusSubmitted {
		aksi = "update submit"
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		laporan.Details = nil
		if err := u.laporanRepo.UpdateTx(tx, laporan); err != nil {
			return err
		}

		details := buatDetails(input.Details)
		if err := u.laporanRepo.ReplaceDetailsTx(tx, laporan.ID, details); err != nil {
			return err
		}
		laporan.Details = details

		return u.logRepo.CreateTx(tx, &model.ActivityLog{
			UserID:      &operatorID,
			Aksi:        aksi,
			Modul:       model.ModulLaporan,
			DataSebelum: sebelum,
			DataSesudah: snapshot(laporan),
			IPAddress:   meta.IPAddress,
			UserAgent:   meta.UserAgent,
			Keterangan:  fmt.Sprintf("Laporan %s diubah", laporan.NomorLaporan),
		})
	})
	if err != nil {
		log.Printf("update laporan gagal (id=%d operator=%d): %v", laporanID, operatorID, err)
		return nil, errors.New("gagal menyimpan laporan")
	}

	if laporan.StatusLaporan == model.StatusSubmitted && u.notif != nil {
		go u.notif.LaporanDisubmit(laporan)
	}

	return laporan, nil
}

// Delete hanya boleh untuk laporan draft milik operator sendiri. Detail ikut
// terhapus, lalu satu baris activity log ditulis, semuanya satu transaksi.
func (u *LaporanUsecase) Delete(laporanID uint, operatorID uint, meta RequestMeta) error {
	existing, err := u.laporanRepo.GetByIDAndOperator(laporanID, operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLaporanTidakDitemukan
		}
		log.Printf("delete laporan gagal saat ambil data (id=%d): %v", laporanID, err)
		return errors.New("gagal mengambil laporan")
	}
	if existing.StatusLaporan != model.StatusDraft {
		return ErrLaporanTidakDitemukan
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		if err := u.laporanRepo.DeleteTx(tx, laporanID); err != nil {
			return err
		}
		return u.logRepo.CreateTx(tx, &model.ActivityLog{
			UserID:      &operatorID,
			Aksi:        "delete draft",
			Modul:       model.ModulLaporan,
			DataSebelum: snapshot(existing),
			IPAddress:   meta.IPAddress,
			UserAgent:   meta.UserAgent,
			Keterangan:  fmt.Sprintf("Laporan %s dihapus", existing.NomorLaporan),
		})
	})
	if err != nil {
		log.Printf("delete laporan gagal (id=%d operator=%d): %v", laporanID, operatorID, err)
		return errors.New("gagal menghapus laporan")
	}
	return nil
}

// GetByID mengembalikan laporan hanya kalau milik operator yang meminta.
func (u *LaporanUsecase) GetByID(laporanID uint, operatorID uint) (*model.LaporanCutting, error) {
	laporan, err := u.laporanRepo.GetByIDAndOperator(laporanID, operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLaporanTidakDitemukan
		}
		return nil, err
	}
	return laporan, nil
}

// List mengembalikan laporan milik operator sendiri.
func (u *LaporanUsecase) List(operatorID uint, filter repository.LaporanFilter) ([]model.LaporanCutting, int64, error) {
	return u.laporanRepo.GetByOperator(operatorID, filter)
}

// ListSemua untuk admin/validator: semua laporan tanpa scoping operator.
func (u *LaporanUsecase) ListSemua(filter repository.LaporanFilter) ([]model.LaporanCutting, int64, error) {
	return u.laporanRepo.GetAll(filter)
}

// GetDetailAdmin untuk admin/validator: detail lengkap dengan relasinya.
func (u *LaporanUsecase) GetDetailAdmin(laporanID uint) (*model.LaporanCutting, error) {
	laporan, err := u.laporanRepo.GetByID(laporanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLaporanTidakDitemukan
		}
		return nil, err
	}
	return laporan, nil
}

// validasi menjalankan cek field lalu cek keberadaan semua referensi master
// data. Tidak ada transaksi yang dimulai sebelum semuanya lolos.
func (u *LaporanUsecase) validasi(input LaporanInput) *ValidationError {
	fields := map[string]string{}

	if err := u.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = pesanValidasi(fe)
			}
		} else {
			fields["input"] = "Input tidak valid"
		}
	}

	// Cek referensi hanya kalau field id-nya sendiri lolos
	if _, ada := fields["shift_id"]; !ada && !u.shiftRepo.Exists(input.ShiftID) {
		fields["shift_id"] = "Shift tidak ditemukan"
	}
	if _, ada := fields["mesin_id"]; !ada && !u.mesinRepo.Exists(input.MesinID) {
		fields["mesin_id"] = "Mesin tidak ditemukan"
	}
	if _, ada := fields["line_id"]; !ada && !u.lineRepo.Exists(input.LineID) {
		fields["line_id"] = "Line produksi tidak ditemukan"
	}
	if _, ada := fields["customer_id"]; !ada && !u.customerRepo.Exists(input.CustomerID) {
		fields["customer_id"] = "Customer tidak ditemukan"
	}
	if _, ada := fields["pola_id"]; !ada && !u.polaRepo.Exists(input.PolaID) {
		fields["pola_id"] = "Pola tidak ditemukan"
	}
	if _, ada := fields["kain_id"]; !ada && !u.kainRepo.Exists(input.KainID) {
		fields["kain_id"] = "Jenis kain tidak ditemukan"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (u *LaporanUsecase) buatModel(input LaporanInput, operatorID uint) *model.LaporanCutting {
	return &model.LaporanCutting{
		NomorOrder:        input.NomorOrder,
		NomorBatch:        input.NomorBatch,
		TanggalLaporan:    input.TanggalLaporan,
		OperatorID:        operatorID,
		ShiftID:           input.ShiftID,
		MesinID:           input.MesinID,
		LineID:            input.LineID,
		CustomerID:        input.CustomerID,
		PolaID:            input.PolaID,
		KainID:            input.KainID,
		TargetQuantityPcs: input.TargetQuantityPcs,
		ActualQuantityPcs: input.ActualQuantityPcs,
		JumlahLayer:       input.JumlahLayer,
		PanjangKainMeter:  input.PanjangKainMeter,
		LebarKainCm:       input.LebarKainCm,
		TotalAreaM2:       HitungTotalArea(input.PanjangKainMeter, input.LebarKainCm, input.JumlahLayer),
		JamMulai:          input.JamMulai,
		JamSelesai:        input.JamSelesai,
		EfisiensiCutting:  HitungEfisiensi(input.TargetQuantityPcs, input.ActualQuantityPcs),
		KualitasHasil:     model.KualitasHasil(input.KualitasHasil),
		JumlahDefect:      input.JumlahDefect,
		JenisDefect:       mustJSON(input.JenisDefect),
		KondisiMesin:      model.KondisiMesin(input.KondisiMesin),
		SuhuRuangan:       input.SuhuRuangan,
		Kelembaban:        input.Kelembaban,
		StatusLaporan:     model.StatusLaporan(input.StatusLaporan),
		Catatan:           input.Catatan,
	}
}

func buatDetails(inputs []DetailCuttingInput) []model.DetailCutting {
	details := make([]model.DetailCutting, 0, len(inputs))
	for _, d := range inputs {
		details = append(details, model.DetailCutting{
			NamaPola:        d.NamaPola,
			Ukuran:          d.Ukuran,
			JumlahPotongan:  d.JumlahPotongan,
			PanjangPolaCm:   d.PanjangPolaCm,
			LebarPolaCm:     d.LebarPolaCm,
			WastePercentage: d.WastePercentage,
			Keterangan:      d.Keterangan,
		})
	}
	return details
}

func pesanValidasi(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Wajib diisi"
	case "min":
		return "Minimal " + fe.Param()
	case "max":
		return "Maksimal " + fe.Param()
	case "oneof":
		return "Nilai harus salah satu dari: " + fe.Param()
	case "datetime":
		return "Format tidak valid"
	}
	return "Tidak valid"
}

// compactTanggal mengubah 2024-01-15 menjadi 20240115 untuk nomor laporan.
func compactTanggal(tanggal string) string {
	return strings.ReplaceAll(tanggal, "-", "")
}

func snapshot(laporan *model.LaporanCutting) datatypes.JSON {
	b, err := json.Marshal(laporan)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// gabungFoto menambahkan path foto baru ke daftar yang sudah tersimpan.
func gabungFoto(existing datatypes.JSON, baru []string) datatypes.JSON {
	var paths []string
	if len(existing) > 0 {
		_ = json.Unmarshal(existing, &paths)
	}
	paths = append(paths, baru...)
	if paths == nil {
		paths = []string{}
	}
	return mustJSON(paths)
}
