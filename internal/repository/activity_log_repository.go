package repository

import (
	"log"

	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
)

type ActivityLogFilter struct {
	Modul  string
	UserID uint
	Page   int
	Limit  int
}

type ActivityLogRepository interface {
	CreateTx(tx *gorm.DB, entry *model.ActivityLog) error
	Record(entry *model.ActivityLog)
	GetAll(filter ActivityLogFilter) ([]model.ActivityLog, int64, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db}
}

// CreateTx menulis log di dalam transaksi pemanggil. Dipakai alur laporan:
// kalau log gagal, seluruh transaksi ikut rollback.
func (r *activityLogRepository) CreateTx(tx *gorm.DB, entry *model.ActivityLog) error {
	return tx.Create(entry).Error
}

// Record menulis log best-effort di luar transaksi. Dipakai login/logout:
// kegagalan log tidak boleh menggagalkan alur utamanya.
func (r *activityLogRepository) Record(entry *model.ActivityLog) {
	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("activity log gagal disimpan (aksi=%s modul=%s): %v", entry.Aksi, entry.Modul, err)
	}
}

func (r *activityLogRepository) GetAll(filter ActivityLogFilter) ([]model.ActivityLog, int64, error) {
	query := r.db.Model(&model.ActivityLog{})
	if filter.Modul != "" {
		query = query.Where("modul = ?", filter.Modul)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	var list []model.ActivityLog
	err := query.Preload("User").
		Order("created_at desc").
		Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit).
		Find(&list).Error
	return list, total, err
}
