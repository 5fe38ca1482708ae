package models

import "time"

// Admin statuses.
const (
	AdminStatusActive   = "Active"
	AdminStatusInactive = "Inactive"
)

// Admin is a back-office account. It is a separate table from User in this
// system; the role field is free text (e.g. "Super Admin"), not the coarse
// customer/admin user type.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	Role      string    `json:"role" gorm:"type:varchar(100)"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:Active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
