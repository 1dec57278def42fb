package repository

import (
	"cutting-floor-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	GetByNIK(nik string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	GetAll() ([]model.User, error)
	Update(user *model.User) error
	GetRoleByNama(nama string) (*model.Role, error)
	GetUsersByRole(namaRole string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByNIK(nik string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Role").Where("nik = ?", nik).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Role").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Preload("Role").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) GetRoleByNama(nama string) (*model.Role, error) {
	var role model.Role
	err := r.db.Where("nama_role = ?", nama).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) GetUsersByRole(namaRole string) ([]model.User, error) {
	var users []model.User
	err := r.db.Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.nama_role = ? AND users.is_active = ?", namaRole, true).
		Find(&users).Error
	return users, err
}
