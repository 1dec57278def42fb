package usecase

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite in-memory: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("gagal ambil sql.DB: %v", err)
	}
	// Satu koneksi: transaksi paralel antre di pool, perilaku setara row lock
	// MySQL pada baris counter
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Mesin{},
		&model.Shift{},
		&model.JenisKain{},
		&model.LineProduksi{},
		&model.Customer{},
		&model.Pola{},
		&model.LaporanCutting{},
		&model.DetailCutting{},
		&model.NomorLaporanCounter{},
		&model.ActivityLog{},
	); err != nil {
		t.Fatalf("gagal migrate: %v", err)
	}

	role := model.Role{NamaRole: model.RoleOperator}
	db.Create(&role)
	db.Create(&model.User{RoleID: role.ID, Nama: "Operator Satu", NIK: "OP-0001", IsActive: true})
	db.Create(&model.User{RoleID: role.ID, Nama: "Operator Dua", NIK: "OP-0002", IsActive: true})

	db.Create(&model.Shift{NamaShift: "Shift Pagi", JamMulai: "07:00", JamSelesai: "15:00", IsActive: true})
	db.Create(&model.Mesin{KodeMesin: "MC-001", NamaMesin: "Straight Knife 1", StatusMesin: model.MesinAktif})
	db.Create(&model.JenisKain{KodeKain: "KN-001", NamaKain: "Cotton Combed", IsActive: true})
	db.Create(&model.LineProduksi{KodeLine: "LINE-A", NamaLine: "Line A", IsActive: true})
	db.Create(&model.Customer{KodeCustomer: "CUST-001", NamaCustomer: "PT Sandang Jaya", IsActive: true})
	db.Create(&model.Pola{KodePola: "PL-001", NamaPola: "Kemeja Basic", IsActive: true})

	return db
}

func newTestUsecase(db *gorm.DB) *LaporanUsecase {
	return NewLaporanUsecase(
		db,
		repository.NewLaporanRepository(db),
		repository.NewNomorLaporanRepository(db),
		repository.NewActivityLogRepository(db),
		repository.NewShiftRepository(db),
		repository.NewMesinRepository(db),
		repository.NewJenisKainRepository(db),
		repository.NewLineProduksiRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewPolaRepository(db),
		nil,
	)
}

func inputValid() LaporanInput {
	return LaporanInput{
		NomorOrder:        "ORD-2024-001",
		NomorBatch:        "BATCH-01",
		TanggalLaporan:    "2024-01-15",
		ShiftID:           1,
		MesinID:           1,
		LineID:            1,
		CustomerID:        1,
		PolaID:            1,
		KainID:            1,
		TargetQuantityPcs: 100,
		ActualQuantityPcs: 95,
		JumlahLayer:       10,
		PanjangKainMeter:  50,
		LebarKainCm:       150,
		JamMulai:          "08:00",
		JamSelesai:        "10:30",
		KondisiMesin:      "baik",
		KualitasHasil:     "baik",
		JumlahDefect:      2,
		JenisDefect:       []string{"sobek", "miring"},
		StatusLaporan:     "submitted",
		Details: []DetailCuttingInput{
			{NamaPola: "Kemeja Basic", Ukuran: "M", JumlahPotongan: 50, PanjangPolaCm: 70, LebarPolaCm: 55, WastePercentage: 5},
			{NamaPola: "Kemeja Basic", Ukuran: "L", JumlahPotongan: 45, PanjangPolaCm: 75, LebarPolaCm: 58, WastePercentage: 6.5},
		},
	}
}

func TestCreateLaporanSubmit(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)
	meta := RequestMeta{IPAddress: "10.0.0.1", UserAgent: "test-agent"}

	laporan, err := uc.Create(inputValid(), 1, []string{"uploads/laporan/foto1.jpg"}, meta)
	if err != nil {
		t.Fatalf("Create gagal: %v", err)
	}

	if laporan.NomorLaporan != "LC-20240115-0001" {
		t.Errorf("nomor laporan = %s, want LC-20240115-0001", laporan.NomorLaporan)
	}
	if laporan.EfisiensiCutting != 95 {
		t.Errorf("efisiensi = %v, want 95", laporan.EfisiensiCutting)
	}
	if laporan.TotalAreaM2 != 750 {
		t.Errorf("total area = %v, want 750", laporan.TotalAreaM2)
	}
	if laporan.DurasiMenit != 150 {
		t.Errorf("durasi = %d, want 150", laporan.DurasiMenit)
	}

	// Field turunan tidak dihitung ulang saat dibaca kembali
	tersimpan, err := uc.GetByID(laporan.ID, 1)
	if err != nil {
		t.Fatalf("GetByID gagal: %v", err)
	}
	if tersimpan.EfisiensiCutting != laporan.EfisiensiCutting ||
		tersimpan.TotalAreaM2 != laporan.TotalAreaM2 ||
		tersimpan.DurasiMenit != laporan.DurasiMenit {
		t.Errorf("field turunan berubah setelah dibaca ulang: %+v vs %+v", tersimpan, laporan)
	}
	if len(tersimpan.Details) != 2 {
		t.Errorf("jumlah detail = %d, want 2", len(tersimpan.Details))
	}

	var logCount int64
	db.Model(&model.ActivityLog{}).
		Where("modul = ? AND aksi = ?", model.ModulLaporan, "create submit").
		Count(&logCount)
	if logCount != 1 {
		t.Errorf("activity log create submit = %d baris, want 1", logCount)
	}
}

func TestNomorLaporanUrutPerTanggal(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	for i, want := range []string{"LC-20240115-0001", "LC-20240115-0002", "LC-20240115-0003"} {
		input := inputValid()
		input.NomorOrder = fmt.Sprintf("ORD-%d", i)
		laporan, err := uc.Create(input, 1, nil, RequestMeta{})
		if err != nil {
			t.Fatalf("Create ke-%d gagal: %v", i, err)
		}
		if laporan.NomorLaporan != want {
			t.Errorf("nomor laporan ke-%d = %s, want %s", i, laporan.NomorLaporan, want)
		}
	}

	// Tanggal lain mulai lagi dari 0001
	input := inputValid()
	input.TanggalLaporan = "2024-01-16"
	laporan, err := uc.Create(input, 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Create tanggal baru gagal: %v", err)
	}
	if laporan.NomorLaporan != "LC-20240116-0001" {
		t.Errorf("nomor laporan tanggal baru = %s, want LC-20240116-0001", laporan.NomorLaporan)
	}
}

func TestNomorLaporanParalelSelaluUnik(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	const n = 10
	var wg sync.WaitGroup
	nomorCh := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := inputValid()
			input.NomorOrder = fmt.Sprintf("ORD-PARALEL-%d", i)
			laporan, err := uc.Create(input, 1, nil, RequestMeta{})
			if err != nil {
				t.Errorf("Create paralel ke-%d gagal: %v", i, err)
				return
			}
			nomorCh <- laporan.NomorLaporan
		}(i)
	}
	wg.Wait()
	close(nomorCh)

	terpakai := map[string]bool{}
	for nomor := range nomorCh {
		if terpakai[nomor] {
			t.Errorf("nomor laporan kembar: %s", nomor)
		}
		terpakai[nomor] = true
	}
	if len(terpakai) != n {
		t.Errorf("jumlah nomor unik = %d, want %d", len(terpakai), n)
	}
}

func TestValidasiFieldWajib(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	_, err := uc.Create(LaporanInput{}, 1, nil, RequestMeta{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	for _, field := range []string{"nomor_order", "nomor_batch", "tanggal_laporan", "target_quantity_pcs", "status_laporan"} {
		if _, ada := verr.Fields[field]; !ada {
			t.Errorf("field %s tidak ada di error validasi: %v", field, verr.Fields)
		}
	}

	// Validasi gagal berarti tidak ada transaksi yang dimulai sama sekali
	var laporanCount, counterCount int64
	db.Model(&model.LaporanCutting{}).Count(&laporanCount)
	db.Model(&model.NomorLaporanCounter{}).Count(&counterCount)
	if laporanCount != 0 || counterCount != 0 {
		t.Errorf("ada mutasi setelah validasi gagal: laporan=%d counter=%d", laporanCount, counterCount)
	}
}

func TestValidasiEnum(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	input := inputValid()
	input.KondisiMesin = "hancur"
	input.KualitasHasil = "lumayan"

	_, err := uc.Create(input, 1, nil, RequestMeta{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if _, ada := verr.Fields["kondisi_mesin"]; !ada {
		t.Errorf("kondisi_mesin tidak ada di error validasi: %v", verr.Fields)
	}
	if _, ada := verr.Fields["kualitas_hasil"]; !ada {
		t.Errorf("kualitas_hasil tidak ada di error validasi: %v", verr.Fields)
	}
}

func TestValidasiReferensiMaster(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	input := inputValid()
	input.ShiftID = 99
	input.PolaID = 42

	_, err := uc.Create(input, 1, nil, RequestMeta{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Fields["shift_id"] == "" {
		t.Errorf("shift_id tidak ada di error validasi: %v", verr.Fields)
	}
	if verr.Fields["pola_id"] == "" {
		t.Errorf("pola_id tidak ada di error validasi: %v", verr.Fields)
	}
}

func TestUpdateGantiSeluruhDetail(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	input := inputValid()
	input.StatusLaporan = "draft"
	laporan, err := uc.Create(input, 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Create gagal: %v", err)
	}

	var detailCount int64
	db.Model(&model.DetailCutting{}).Where("laporan_id = ?", laporan.ID).Count(&detailCount)
	if detailCount != 2 {
		t.Fatalf("jumlah detail awal = %d, want 2", detailCount)
	}

	// Update dengan detail kosong: seluruh set diganti, bukan di-merge
	input.Details = nil
	diubah, err := uc.Update(laporan.ID, input, 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Update gagal: %v", err)
	}

	db.Model(&model.DetailCutting{}).Where("laporan_id = ?", laporan.ID).Count(&detailCount)
	if detailCount != 0 {
		t.Errorf("jumlah detail setelah update kosong = %d, want 0", detailCount)
	}

	// Nomor laporan tidak pernah di-assign ulang
	if diubah.NomorLaporan != laporan.NomorLaporan {
		t.Errorf("nomor laporan berubah: %s -> %s", laporan.NomorLaporan, diubah.NomorLaporan)
	}
}

func TestUpdateHanyaDraftMilikSendiri(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	input := inputValid()
	input.StatusLaporan = "draft"
	draft, err := uc.Create(input, 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Create draft gagal: %v", err)
	}

	// Operator lain: jatuh ke "tidak ditemukan", bukan "forbidden"
	if _, err := uc.Update(draft.ID, input, 2, nil, RequestMeta{}); !errors.Is(err, ErrLaporanTidakDitemukan) {
		t.Errorf("update milik orang lain: err = %v, want ErrLaporanTidakDitemukan", err)
	}

	// Submit lewat update lalu coba ubah lagi
	input.StatusLaporan = "submitted"
	if _, err := uc.Update(draft.ID, input, 1, nil, RequestMeta{}); err != nil {
		t.Fatalf("submit via update gagal: %v", err)
	}
	if _, err := uc.Update(draft.ID, input, 1, nil, RequestMeta{}); !errors.Is(err, ErrLaporanTidakDitemukan) {
		t.Errorf("update laporan submitted: err = %v, want ErrLaporanTidakDitemukan", err)
	}
}

func TestDeleteDraft(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	input := inputValid()
	input.StatusLaporan = "draft"
	draft, err := uc.Create(input, 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Create draft gagal: %v", err)
	}

	if err := uc.Delete(draft.ID, 1, RequestMeta{}); err != nil {
		t.Fatalf("Delete draft gagal: %v", err)
	}

	if _, err := uc.GetByID(draft.ID, 1); !errors.Is(err, ErrLaporanTidakDitemukan) {
		t.Errorf("laporan masih bisa diambil setelah dihapus: %v", err)
	}

	var detailCount int64
	db.Model(&model.DetailCutting{}).Where("laporan_id = ?", draft.ID).Count(&detailCount)
	if detailCount != 0 {
		t.Errorf("detail tersisa setelah delete = %d, want 0", detailCount)
	}

	var logCount int64
	db.Model(&model.ActivityLog{}).
		Where("modul = ? AND aksi = ?", model.ModulLaporan, "delete draft").
		Count(&logCount)
	if logCount != 1 {
		t.Errorf("activity log delete draft = %d baris, want 1", logCount)
	}
}

func TestDeleteSubmittedDitolak(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	laporan, err := uc.Create(inputValid(), 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Create gagal: %v", err)
	}

	if err := uc.Delete(laporan.ID, 1, RequestMeta{}); !errors.Is(err, ErrLaporanTidakDitemukan) {
		t.Errorf("delete laporan submitted: err = %v, want ErrLaporanTidakDitemukan", err)
	}

	// Laporan tetap utuh
	if _, err := uc.GetByID(laporan.ID, 1); err != nil {
		t.Errorf("laporan submitted hilang setelah delete ditolak: %v", err)
	}
}

func TestGetByIDMilikOperatorLain(t *testing.T) {
	db := setupTestDB(t)
	uc := newTestUsecase(db)

	laporan, err := uc.Create(inputValid(), 1, nil, RequestMeta{})
	if err != nil {
		t.Fatalf("Create gagal: %v", err)
	}

	if _, err := uc.GetByID(laporan.ID, 2); !errors.Is(err, ErrLaporanTidakDitemukan) {
		t.Errorf("laporan operator lain terbaca: err = %v, want ErrLaporanTidakDitemukan", err)
	}
}
