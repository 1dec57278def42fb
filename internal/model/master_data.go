package model

import "gorm.io/gorm"

type StatusMesin string

const (
	MesinAktif       StatusMesin = "aktif"
	MesinMaintenance StatusMesin = "maintenance"
	MesinRusak       StatusMesin = "rusak"
)

func (s StatusMesin) Valid() bool {
	switch s {
	case MesinAktif, MesinMaintenance, MesinRusak:
		return true
	}
	return false
}

type Mesin struct {
	gorm.Model
	KodeMesin   string      `json:"kode_mesin" gorm:"unique;not null"`
	NamaMesin   string      `json:"nama_mesin" gorm:"not null"`
	TipeMesin   string      `json:"tipe_mesin"` // Contoh: Straight Knife, Band Knife, Auto Cutter
	TahunBeli   int         `json:"tahun_beli"`
	StatusMesin StatusMesin `json:"status_mesin" gorm:"type:varchar(20);default:aktif"`
}

type Shift struct {
	gorm.Model
	NamaShift  string `json:"nama_shift" gorm:"not null"`
	JamMulai   string `json:"jam_mulai"`   // Format HH:MM
	JamSelesai string `json:"jam_selesai"` // Format HH:MM
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}

type JenisKain struct {
	gorm.Model
	KodeKain       string  `json:"kode_kain" gorm:"unique;not null"`
	NamaKain       string  `json:"nama_kain" gorm:"not null"`
	Gramasi        float64 `json:"gramasi"` // gsm
	LebarStandarCm float64 `json:"lebar_standar_cm"`
	IsActive       bool    `json:"is_active" gorm:"default:true"`
}

type LineProduksi struct {
	gorm.Model
	KodeLine        string `json:"kode_line" gorm:"unique;not null"`
	NamaLine        string `json:"nama_line" gorm:"not null"`
	KapasitasHarian int    `json:"kapasitas_harian"` // pcs per hari
	IsActive        bool   `json:"is_active" gorm:"default:true"`
}

type Customer struct {
	gorm.Model
	KodeCustomer string `json:"kode_customer" gorm:"unique;not null"`
	NamaCustomer string `json:"nama_customer" gorm:"not null"`
	Kontak       string `json:"kontak"`
	Alamat       string `json:"alamat"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

type Pola struct {
	gorm.Model
	KodePola       string `json:"kode_pola" gorm:"unique;not null"`
	NamaPola       string `json:"nama_pola" gorm:"not null"`
	Kategori       string `json:"kategori"`        // Contoh: Kemeja, Celana, Jaket
	UkuranTersedia string `json:"ukuran_tersedia"` // Contoh: "S,M,L,XL"
	IsActive       bool   `json:"is_active" gorm:"default:true"`
}
