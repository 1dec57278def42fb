package repository

import (
	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
)

// Repository untuk master data sederhana (kain, line, customer, pola).
// Semuanya CRUD lookup table biasa, dikelompokkan satu file seperti modelnya.

type JenisKainRepository interface {
	GetAll() ([]model.JenisKain, error)
	GetByID(id uint) (*model.JenisKain, error)
	Create(kain *model.JenisKain) error
	Update(kain *model.JenisKain) error
	Delete(id uint) error
	Exists(id uint) bool
}

type jenisKainRepository struct {
	db *gorm.DB
}

func NewJenisKainRepository(db *gorm.DB) JenisKainRepository {
	return &jenisKainRepository{db}
}

func (r *jenisKainRepository) GetAll() ([]model.JenisKain, error) {
	var list []model.JenisKain
	err := r.db.Order("kode_kain").Find(&list).Error
	return list, err
}

func (r *jenisKainRepository) GetByID(id uint) (*model.JenisKain, error) {
	var kain model.JenisKain
	if err := r.db.First(&kain, id).Error; err != nil {
		return nil, err
	}
	return &kain, nil
}

func (r *jenisKainRepository) Create(kain *model.JenisKain) error { return r.db.Create(kain).Error }
func (r *jenisKainRepository) Update(kain *model.JenisKain) error { return r.db.Save(kain).Error }
func (r *jenisKainRepository) Delete(id uint) error {
	return r.db.Delete(&model.JenisKain{}, id).Error
}

func (r *jenisKainRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.JenisKain{}).Where("id = ?", id).Count(&count)
	return count > 0
}

type LineProduksiRepository interface {
	GetAll() ([]model.LineProduksi, error)
	GetByID(id uint) (*model.LineProduksi, error)
	Create(line *model.LineProduksi) error
	Update(line *model.LineProduksi) error
	Delete(id uint) error
	Exists(id uint) bool
}

type lineProduksiRepository struct {
	db *gorm.DB
}

func NewLineProduksiRepository(db *gorm.DB) LineProduksiRepository {
	return &lineProduksiRepository{db}
}

func (r *lineProduksiRepository) GetAll() ([]model.LineProduksi, error) {
	var list []model.LineProduksi
	err := r.db.Order("kode_line").Find(&list).Error
	return list, err
}

func (r *lineProduksiRepository) GetByID(id uint) (*model.LineProduksi, error) {
	var line model.LineProduksi
	if err := r.db.First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *lineProduksiRepository) Create(line *model.LineProduksi) error {
	return r.db.Create(line).Error
}
func (r *lineProduksiRepository) Update(line *model.LineProduksi) error {
	return r.db.Save(line).Error
}
func (r *lineProduksiRepository) Delete(id uint) error {
	return r.db.Delete(&model.LineProduksi{}, id).Error
}

func (r *lineProduksiRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.LineProduksi{}).Where("id = ?", id).Count(&count)
	return count > 0
}

type CustomerRepository interface {
	GetAll() ([]model.Customer, error)
	GetByID(id uint) (*model.Customer, error)
	Create(customer *model.Customer) error
	Update(customer *model.Customer) error
	Delete(id uint) error
	Exists(id uint) bool
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db}
}

func (r *customerRepository) GetAll() ([]model.Customer, error) {
	var list []model.Customer
	err := r.db.Order("kode_customer").Find(&list).Error
	return list, err
}

func (r *customerRepository) GetByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}
func (r *customerRepository) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}
func (r *customerRepository) Delete(id uint) error {
	return r.db.Delete(&model.Customer{}, id).Error
}

func (r *customerRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.Customer{}).Where("id = ?", id).Count(&count)
	return count > 0
}

type PolaRepository interface {
	GetAll() ([]model.Pola, error)
	GetByID(id uint) (*model.Pola, error)
	Create(pola *model.Pola) error
	Update(pola *model.Pola) error
	Delete(id uint) error
	Exists(id uint) bool
}

type polaRepository struct {
	db *gorm.DB
}

func NewPolaRepository(db *gorm.DB) PolaRepository {
	return &polaRepository{db}
}

func (r *polaRepository) GetAll() ([]model.Pola, error) {
	var list []model.Pola
	err := r.db.Order("kode_pola").Find(&list).Error
	return list, err
}

func (r *polaRepository) GetByID(id uint) (*model.Pola, error) {
	var pola model.Pola
	if err := r.db.First(&pola, id).Error; err != nil {
		return nil, err
	}
	return &pola, nil
}

func (r *polaRepository) Create(pola *model.Pola) error { return r.db.Create(pola).Error }
func (r *polaRepository) Update(pola *model.Pola) error { return r.db.Save(pola).Error }
func (r *polaRepository) Delete(id uint) error {
	return r.db.Delete(&model.Pola{}, id).Error
}

func (r *polaRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.Pola{}).Where("id = ?", id).Count(&count)
	return count > 0
}
