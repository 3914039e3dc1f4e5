package models

import "time"

const (
	RoleEmployer   = "Employer"
	RoleAgent      = "Agent"
	RoleWorker     = "Worker"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:120;not null"`
	Phone        string `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	Email        string `json:"email,omitempty" gorm:"size:120"`
	Password     string `json:"-" gorm:"not null"` // bcrypt hash
	Role         string `json:"role" gorm:"size:20;not null"`
	EmployerType string `json:"employerType,omitempty" gorm:"size:40"`
	State        string `json:"state,omitempty" gorm:"size:60"`
	District     string `json:"district,omitempty" gorm:"size:60"`
	Address      string `json:"address,omitempty" gorm:"type:text"`
	PinCode      string `json:"pinCode,omitempty" gorm:"size:10"`
	ProfilePhoto string `json:"profilePhoto,omitempty" gorm:"size:255"`
	KycDoc       string `json:"kycDoc,omitempty" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleEmployer, RoleAgent, RoleWorker, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
