package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	RoleID   uint   `json:"role_id"`
	Nama     string `json:"nama" gorm:"not null"`
	NIK      string `json:"nik" gorm:"column:nik;unique;not null"` // Nomor Induk Karyawan
	Password string `json:"-"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Role    Role             `json:"role" gorm:"foreignKey:RoleID"`
	Laporan []LaporanCutting `json:"laporan,omitempty" gorm:"foreignKey:OperatorID"`
}
