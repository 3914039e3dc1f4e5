package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Attendance statuses. Independent of the sent/accepted booleans except that
// moving to Accepted also flips the employer booleans (see handler).
const (
	AttendancePending  = "Pending"
	AttendanceSent     = "Sent"
	AttendanceAccepted = "Accepted"
	AttendanceRejected = "Rejected"
)

// WorkerAttendance is one ledger entry for workers an agent sent against a
// requirement. Records accumulate per submission; nothing is upserted.
type WorkerAttendance struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	AgentID         uint            `json:"agent_id" gorm:"index;not null"`
	EmployerID      *uint           `json:"employer_id,omitempty" gorm:"index"`
	RequirementID   uint            `json:"requirement_id" gorm:"index;not null"`
	NumberOfWorkers int             `json:"number_of_worker" gorm:"not null"`
	PerWorkerRate   decimal.Decimal `json:"per_worker_rates" gorm:"type:numeric(12,2);not null"`

	SentByAgent        bool       `json:"sent_by_agent"`
	ReceivedByEmployer bool       `json:"received_by_employer"`
	EmployerAccepted   bool       `json:"employer_accepted"`
	SendDateTime       *time.Time `json:"send_date_time,omitempty"`
	ReceivedDateTime   *time.Time `json:"received_date_time,omitempty"`

	Status       string `json:"status" gorm:"size:20;not null;default:Pending"`
	AgentName    string `json:"agent_name" gorm:"size:120;not null"`
	EmployerName string `json:"employer_name" gorm:"size:120;not null"`
	WorkLocation string `json:"work_location,omitempty" gorm:"size:160"`
	ERNNumber    string `json:"ern_number" gorm:"size:12;index;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave stamps the first transition of each flag. Both timestamps are
// write-once: once set they survive any later toggling of the booleans.
func (a *WorkerAttendance) BeforeSave(tx *gorm.DB) error {
	now := time.Now().UTC()
	if a.SentByAgent && a.SendDateTime == nil {
		a.SendDateTime = &now
	}
	if a.EmployerAccepted && a.ReceivedDateTime == nil {
		a.ReceivedDateTime = &now
	}
	return nil
}

func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePending, AttendanceSent, AttendanceAccepted, AttendanceRejected:
		return true
	}
	return false
}

// ValidAttendanceTransition: Pending -> Sent -> Accepted | Rejected. A
// Pending record may be decided directly; decided records are final.
func ValidAttendanceTransition(from, to string) bool {
	switch from {
	case AttendancePending:
		return to == AttendanceSent || to == AttendanceAccepted || to == AttendanceRejected
	case AttendanceSent:
		return to == AttendanceAccepted || to == AttendanceRejected
	}
	return false
}
