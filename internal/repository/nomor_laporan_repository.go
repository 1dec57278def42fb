package repository

import (
	"fmt"

	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NomorLaporanRepository interface {
	NextTx(tx *gorm.DB, tanggal string) (string, error)
}

type nomorLaporanRepository struct {
	db *gorm.DB
}

func NewNomorLaporanRepository(db *gorm.DB) NomorLaporanRepository {
	return &nomorLaporanRepository{db}
}

// NextTx mengambil nomor urut berikutnya untuk satu tanggal (format YYYYMMDD)
// dan mengembalikan nomor laporan lengkap LC-YYYYMMDD-NNNN.
//
// Increment dilakukan lewat satu UPDATE atomik pada baris counter, bukan
// "cari max lalu tambah satu". UPDATE mengunci baris sampai transaksi pemanggil
// commit, jadi dua submit bersamaan pada tanggal yang sama selalu mendapat
// urutan yang berbeda.
func (r *nomorLaporanRepository) NextTx(tx *gorm.DB, tanggal string) (string, error) {
	// Pastikan baris counter tanggal ini ada. OnConflict DoNothing aman
	// dipanggil berulang dari transaksi paralel.
	counter := model.NomorLaporanCounter{Tanggal: tanggal, UrutanTerakhir: 0}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tanggal"}},
		DoNothing: true,
	}).Create(&counter).Error; err != nil {
		return "", err
	}

	result := tx.Model(&model.NomorLaporanCounter{}).
		Where("tanggal = ?", tanggal).
		UpdateColumn("urutan_terakhir", gorm.Expr("urutan_terakhir + ?", 1))
	if result.Error != nil {
		return "", result.Error
	}

	// Baca balik di transaksi yang sama: nilai yang terlihat adalah hasil
	// increment milik transaksi ini
	var current model.NomorLaporanCounter
	if err := tx.Where("tanggal = ?", tanggal).First(&current).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("LC-%s-%04d", tanggal, current.UrutanTerakhir), nil
}
