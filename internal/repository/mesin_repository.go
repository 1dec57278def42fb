package repository

import (
	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
)

type MesinRepository interface {
	GetAll() ([]model.Mesin, error)
	GetByID(id uint) (*model.Mesin, error)
	Create(mesin *model.Mesin) error
	Update(mesin *model.Mesin) error
	Delete(id uint) error
	Exists(id uint) bool
}

type mesinRepository struct {
	db *gorm.DB
}

func NewMesinRepository(db *gorm.DB) MesinRepository {
	return &mesinRepository{db}
}

func (r *mesinRepository) GetAll() ([]model.Mesin, error) {
	var list []model.Mesin
	err := r.db.Order("kode_mesin").Find(&list).Error
	return list, err
}

func (r *mesinRepository) GetByID(id uint) (*model.Mesin, error) {
	var mesin model.Mesin
	err := r.db.First(&mesin, id).Error
	if err != nil {
		return nil, err
	}
	return &mesin, nil
}

func (r *mesinRepository) Create(mesin *model.Mesin) error {
	return r.db.Create(mesin).Error
}

func (r *mesinRepository) Update(mesin *model.Mesin) error {
	return r.db.Save(mesin).Error
}

func (r *mesinRepository) Delete(id uint) error {
	return r.db.Delete(&model.Mesin{}, id).Error
}

func (r *mesinRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.Mesin{}).Where("id = ?", id).Count(&count)
	return count > 0
}
