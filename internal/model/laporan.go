package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StatusLaporan string

const (
	StatusDraft     StatusLaporan = "draft"
	StatusSubmitted StatusLaporan = "submitted"
)

func (s StatusLaporan) Valid() bool {
	return s == StatusDraft || s == StatusSubmitted
}

type KondisiMesin string

const (
	KondisiBaik             KondisiMesin = "baik"
	KondisiPerluMaintenance KondisiMesin = "perlu_maintenance"
	KondisiRusak            KondisiMesin = "rusak"
)

func (k KondisiMesin) Valid() bool {
	switch k {
	case KondisiBaik, KondisiPerluMaintenance, KondisiRusak:
		return true
	}
	return false
}

type KualitasHasil string

const (
	KualitasBaik   KualitasHasil = "baik"
	KualitasBagus  KualitasHasil = "bagus"
	KualitasCukup  KualitasHasil = "cukup"
	KualitasKurang KualitasHasil = "kurang"
)

func (k KualitasHasil) Valid() bool {
	switch k {
	case KualitasBaik, KualitasBagus, KualitasCukup, KualitasKurang:
		return true
	}
	return false
}

type LaporanCutting struct {
	gorm.Model
	NomorLaporan   string `json:"nomor_laporan" gorm:"unique;not null"` // Format LC-YYYYMMDD-NNNN
	NomorOrder     string `json:"nomor_order" gorm:"not null"`
	NomorBatch     string `json:"nomor_batch" gorm:"not null"`
	TanggalLaporan string `json:"tanggal_laporan" gorm:"index"` // Format YYYY-MM-DD

	OperatorID uint `json:"operator_id" gorm:"index"`
	ShiftID    uint `json:"shift_id"`
	MesinID    uint `json:"mesin_id"`
	LineID     uint `json:"line_id"`
	CustomerID uint `json:"customer_id"`
	PolaID     uint `json:"pola_id"`
	KainID     uint `json:"kain_id"`

	TargetQuantityPcs int     `json:"target_quantity_pcs"`
	ActualQuantityPcs int     `json:"actual_quantity_pcs"`
	JumlahLayer       int     `json:"jumlah_layer"`
	PanjangKainMeter  float64 `json:"panjang_kain_meter"`
	LebarKainCm       float64 `json:"lebar_kain_cm"`

	// Field turunan, dihitung saat create/update lalu disimpan apa adanya
	TotalAreaM2      float64   `json:"total_area_m2"`
	JamMulai         string    `json:"jam_mulai"`   // Format HH:MM
	JamSelesai       string    `json:"jam_selesai"` // Format HH:MM
	WaktuMulai       time.Time `json:"waktu_mulai"`
	WaktuSelesai     time.Time `json:"waktu_selesai"`
	DurasiMenit      int       `json:"durasi_menit"`
	EfisiensiCutting float64   `json:"efisiensi_cutting"`

	KualitasHasil KualitasHasil  `json:"kualitas_hasil" gorm:"type:varchar(20)"`
	JumlahDefect  int            `json:"jumlah_defect"`
	JenisDefect   datatypes.JSON `json:"jenis_defect"` // Array tag bebas, contoh: ["sobek","miring"]
	KondisiMesin  KondisiMesin   `json:"kondisi_mesin" gorm:"type:varchar(20)"`
	SuhuRuangan   *float64       `json:"suhu_ruangan"`
	Kelembaban    *float64       `json:"kelembaban"`

	FotoLaporan   datatypes.JSON `json:"foto_laporan"` // Array path file di storage lokal
	StatusLaporan StatusLaporan  `json:"status_laporan" gorm:"type:varchar(10);default:draft;index"`
	Catatan       string         `json:"catatan"`

	// Relasi
	Operator User            `json:"operator" gorm:"foreignKey:OperatorID"`
	Shift    Shift           `json:"shift" gorm:"foreignKey:ShiftID"`
	Mesin    Mesin           `json:"mesin" gorm:"foreignKey:MesinID"`
	Line     LineProduksi    `json:"line" gorm:"foreignKey:LineID"`
	Customer Customer        `json:"customer" gorm:"foreignKey:CustomerID"`
	Pola     Pola            `json:"pola" gorm:"foreignKey:PolaID"`
	Kain     JenisKain       `json:"kain" gorm:"foreignKey:KainID"`
	Details  []DetailCutting `json:"details" gorm:"foreignKey:LaporanID"`
}

// DetailCutting dimiliki penuh oleh laporan induknya: dibuat/diganti satu set
// penuh saat create/update, ikut terhapus saat laporan dihapus.
type DetailCutting struct {
	gorm.Model
	LaporanID       uint    `json:"laporan_id" gorm:"index;not null"`
	NamaPola        string  `json:"nama_pola"`
	Ukuran          string  `json:"ukuran"` // Contoh: S, M, L, XL
	JumlahPotongan  int     `json:"jumlah_potongan"`
	PanjangPolaCm   float64 `json:"panjang_pola_cm"`
	LebarPolaCm     float64 `json:"lebar_pola_cm"`
	WastePercentage float64 `json:"waste_percentage"`
	Keterangan      string  `json:"keterangan"`
}

// NomorLaporanCounter menyimpan urutan terakhir per tanggal. Increment dilakukan
// atomik di dalam transaksi submit sehingga dua create bersamaan pada tanggal
// yang sama tidak pernah mendapat nomor kembar.
type NomorLaporanCounter struct {
	gorm.Model
	Tanggal        string `json:"tanggal" gorm:"unique;not null"` // Format YYYYMMDD
	UrutanTerakhir int    `json:"urutan_terakhir"`
}
