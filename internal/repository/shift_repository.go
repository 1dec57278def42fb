package repository

import (
	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetAll() ([]model.Shift, error)
	GetByID(id uint) (*model.Shift, error)
	Create(shift *model.Shift) error
	Update(shift *model.Shift) error
	Delete(id uint) error
	Exists(id uint) bool
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) GetAll() ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.First(&shift, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return r.db.Save(shift).Error
}

func (r *shiftRepository) Delete(id uint) error {
	return r.db.Delete(&model.Shift{}, id).Error
}

func (r *shiftRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.Shift{}).Where("id = ?", id).Count(&count)
	return count > 0
}
