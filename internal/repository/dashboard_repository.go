package repository

import (
	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(date string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// 1. Total operator aktif
	var totalOperator int64
	r.db.Table("users").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.nama_role = ? AND users.is_active = ?", model.RoleOperator, true).
		Count(&totalOperator)
	stats["total_operator"] = totalOperator

	// 2. Laporan hari ini per status
	var daily []struct {
		StatusLaporan string
		Count         int64
	}
	r.db.Model(&model.LaporanCutting{}).
		Where("tanggal_laporan = ?", date).
		Group("status_laporan").Select("status_laporan, count(*) as count").Scan(&daily)

	dailyMap := map[string]int64{string(model.StatusDraft): 0, string(model.StatusSubmitted): 0}
	for _, d := range daily {
		dailyMap[d.StatusLaporan] = d.Count
	}
	stats["hari_ini"] = dailyMap

	// 3. Output per mesin hari ini
	var perMesin []struct {
		MesinID uint
		Total   int64
		Laporan int64
	}
	r.db.Model(&model.LaporanCutting{}).
		Where("tanggal_laporan = ?", date).
		Group("mesin_id").
		Select("mesin_id, sum(actual_quantity_pcs) as total, count(*) as laporan").
		Scan(&perMesin)
	stats["per_mesin"] = perMesin

	// 4. Output per line hari ini
	var perLine []struct {
		LineID  uint
		Total   int64
		Laporan int64
	}
	r.db.Model(&model.LaporanCutting{}).
		Where("tanggal_laporan = ?", date).
		Group("line_id").
		Select("line_id, sum(actual_quantity_pcs) as total, count(*) as laporan").
		Scan(&perLine)
	stats["per_line"] = perLine

	// 5. Rata-rata efisiensi laporan submitted hari ini
	var avgEfisiensi float64
	r.db.Model(&model.LaporanCutting{}).
		Where("tanggal_laporan = ? AND status_laporan = ?", date, model.StatusSubmitted).
		Select("COALESCE(avg(efisiensi_cutting), 0)").Scan(&avgEfisiensi)
	stats["rata_rata_efisiensi"] = avgEfisiensi

	// 6. Total defect hari ini
	var totalDefect int64
	r.db.Model(&model.LaporanCutting{}).
		Where("tanggal_laporan = ?", date).
		Select("COALESCE(sum(jumlah_defect), 0)").Scan(&totalDefect)
	stats["total_defect"] = totalDefect

	return stats, nil
}
