package model

import "gorm.io/gorm"

const (
	RoleAdmin     = "admin"
	RoleOperator  = "operator"
	RoleValidator = "validator"
)

type Role struct {
	gorm.Model
	NamaRole string `json:"nama_role" gorm:"unique;not null"`
	Users    []User `json:"users,omitempty"`
}
