package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog bersifat append-only: tidak pernah di-update atau dihapus lewat
// alur normal. UserID nullable untuk kasus login gagal (aktor belum dikenal).
type ActivityLog struct {
	gorm.Model
	UserID      *uint          `json:"user_id" gorm:"index"`
	Aksi        string         `json:"aksi" gorm:"size:50;not null"` // Contoh: create submit, update draft, login
	Modul       string         `json:"modul" gorm:"size:50;index"`   // Contoh: laporan_cutting, auth, mesin
	DataSebelum datatypes.JSON `json:"data_sebelum"`
	DataSesudah datatypes.JSON `json:"data_sesudah"`
	IPAddress   string         `json:"ip_address" gorm:"size:45"`
	UserAgent   string         `json:"user_agent" gorm:"size:255"`
	Keterangan  string         `json:"keterangan"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

const (
	ModulLaporan = "laporan_cutting"
	ModulAuth    = "auth"
	ModulMesin   = "mesin"
	ModulShift   = "shift"
	ModulKain    = "jenis_kain"
	ModulLine    = "line_produksi"
	ModulCust    = "customer"
	ModulPola    = "pola"
)
