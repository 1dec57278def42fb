package repository

import (
	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LaporanFilter struct {
	Status  string
	Tanggal string // Format YYYY-MM-DD
	Page    int
	Limit   int
}

type LaporanRepository interface {
	CreateTx(tx *gorm.DB, laporan *model.LaporanCutting) error
	UpdateTx(tx *gorm.DB, laporan *model.LaporanCutting) error
	DeleteTx(tx *gorm.DB, laporanID uint) error
	ReplaceDetailsTx(tx *gorm.DB, laporanID uint, details []model.DetailCutting) error
	GetByIDAndOperator(laporanID uint, operatorID uint) (*model.LaporanCutting, error)
	GetByID(laporanID uint) (*model.LaporanCutting, error)
	GetByOperator(operatorID uint, filter LaporanFilter) ([]model.LaporanCutting, int64, error)
	GetAll(filter LaporanFilter) ([]model.LaporanCutting, int64, error)
}

type laporanRepository struct {
	db *gorm.DB
}

func NewLaporanRepository(db *gorm.DB) LaporanRepository {
	return &laporanRepository{db}
}

func (r *laporanRepository) CreateTx(tx *gorm.DB, laporan *model.LaporanCutting) error {
	// Relasi diisi repo lain, jangan ikut di-upsert dari sini
	return tx.Omit(clause.Associations).Create(laporan).Error
}

func (r *laporanRepository) UpdateTx(tx *gorm.DB, laporan *model.LaporanCutting) error {
	return tx.Omit(clause.Associations).Save(laporan).Error
}

func (r *laporanRepository) DeleteTx(tx *gorm.DB, laporanID uint) error {
	// Detail dihapus dulu, baru induknya
	if err := tx.Unscoped().Where("laporan_id = ?", laporanID).Delete(&model.DetailCutting{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.LaporanCutting{}, laporanID).Error
}

// ReplaceDetailsTx mengganti seluruh set detail: hapus semua lalu insert ulang,
// bukan diff/merge. Urutan insert mengikuti urutan slice dari pemanggil.
func (r *laporanRepository) ReplaceDetailsTx(tx *gorm.DB, laporanID uint, details []model.DetailCutting) error {
	if err := tx.Unscoped().Where("laporan_id = ?", laporanID).Delete(&model.DetailCutting{}).Error; err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}
	for i := range details {
		details[i].LaporanID = laporanID
	}
	return tx.Create(&details).Error
}

func (r *laporanRepository) GetByIDAndOperator(laporanID uint, operatorID uint) (*model.LaporanCutting, error) {
	var laporan model.LaporanCutting
	// Query digabung id + operator_id agar "bukan milikmu" dan "tidak ada"
	// sama-sama jatuh ke ErrRecordNotFound
	err := r.db.Preload("Details").
		Where("id = ? AND operator_id = ?", laporanID, operatorID).
		First(&laporan).Error
	if err != nil {
		return nil, err
	}
	return &laporan, nil
}

func (r *laporanRepository) GetByID(laporanID uint) (*model.LaporanCutting, error) {
	var laporan model.LaporanCutting
	err := r.db.Preload("Details").Preload("Operator").Preload("Shift").
		Preload("Mesin").Preload("Line").Preload("Customer").
		Preload("Pola").Preload("Kain").
		First(&laporan, laporanID).Error
	if err != nil {
		return nil, err
	}
	return &laporan, nil
}

func (r *laporanRepository) GetByOperator(operatorID uint, filter LaporanFilter) ([]model.LaporanCutting, int64, error) {
	query := r.db.Model(&model.LaporanCutting{}).Where("operator_id = ?", operatorID)
	return r.list(query, filter)
}

func (r *laporanRepository) GetAll(filter LaporanFilter) ([]model.LaporanCutting, int64, error) {
	query := r.db.Model(&model.LaporanCutting{})
	return r.list(query, filter)
}

func (r *laporanRepository) list(query *gorm.DB, filter LaporanFilter) ([]model.LaporanCutting, int64, error) {
	if filter.Status != "" {
		query = query.Where("status_laporan = ?", filter.Status)
	}
	if filter.Tanggal != "" {
		query = query.Where("tanggal_laporan = ?", filter.Tanggal)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	var list []model.LaporanCutting
	err := query.Preload("Details").
		Order("created_at desc").
		Limit(filter.Limit).Offset(offset).
		Find(&list).Error
	return list, total, err
}
