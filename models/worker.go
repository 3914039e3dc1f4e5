package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerProfile is a worker listed by an agent (or employer) in the
// directory. Either a fixed wage or a from/to range is set, never both.
type WorkerProfile struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	Name           string           `json:"name" gorm:"size:120;not null"`
	AreasOfWork    string           `json:"areasOfWork" gorm:"size:160;not null"`
	WorkExperience string           `json:"workExperience,omitempty" gorm:"size:80"`
	Description    string           `json:"description" gorm:"type:text;not null"`
	FixedSalary    *decimal.Decimal `json:"fixedSalary,omitempty" gorm:"type:numeric(12,2)"`
	SalaryFrom     *decimal.Decimal `json:"salaryFrom,omitempty" gorm:"type:numeric(12,2)"`
	SalaryTo       *decimal.Decimal `json:"salaryTo,omitempty" gorm:"type:numeric(12,2)"`
	DOB            string           `json:"dob,omitempty" gorm:"size:10"`
	Phone          string           `json:"phone,omitempty" gorm:"size:20"`
	Aadhar         string           `json:"aadhar,omitempty" gorm:"size:20"`
	IFSCCode       string           `json:"ifscCode,omitempty" gorm:"size:15"`
	BankAccount    string           `json:"bankAccount,omitempty" gorm:"size:25"`
	PinCode        string           `json:"pinCode,omitempty" gorm:"size:10"`
	Address        string           `json:"address,omitempty" gorm:"type:text"`
	Profile        string           `json:"profile,omitempty" gorm:"size:255"` // uploaded photo path
	PostedBy       uint             `json:"postedBy" gorm:"index;not null"`
	Expired        bool             `json:"expired" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
