package models

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Requirement statuses. The status column is a closed enum; writes go
// through ValidRequirementTransition.
const (
	RequirementPending   = "Pending"
	RequirementAssigned  = "Assigned"
	RequirementFulfilled = "Fulfilled"
	RequirementCancelled = "Cancelled"
)

const (
	ernMin         = 100000
	ernSpan        = 900000
	ernMaxAttempts = 5
)

// ErrERNExhausted is returned when every allocation attempt collided with an
// existing ERN. With 900k possible values this needs a near-full table.
var ErrERNExhausted = errors.New("ern allocation exhausted")

// Requirement is an employer's posted need for workers. The employer fields
// are a snapshot of the authenticated creator, the assigned* fields a
// snapshot of the agent chosen at assignment time.
type Requirement struct {
	ID                      uint             `json:"id" gorm:"primaryKey"`
	ERN                     int              `json:"ERN_NUMBER" gorm:"column:ern;uniqueIndex;not null"`
	WorkType                string           `json:"workType" gorm:"size:80;not null"`
	WorkerQuantitySkilled   int              `json:"workerQuantitySkilled" gorm:"not null"`
	WorkerQuantityUnskilled int              `json:"workerQuantityUnskilled" gorm:"not null"`
	WorkLocation            string           `json:"workLocation" gorm:"size:160;not null"`
	WorkerNeedDate          time.Time        `json:"workerNeedDate" gorm:"not null"`
	State                   string           `json:"state" gorm:"size:60;not null"`
	District                string           `json:"district" gorm:"size:60;index;not null"`
	AgeGroup                string           `json:"ageGroup,omitempty" gorm:"size:40"`
	BudgetPerWorker         *decimal.Decimal `json:"budgetPerWorker,omitempty" gorm:"type:numeric(12,2)"`
	MinBudgetPerWorker      *decimal.Decimal `json:"minBudgetPerWorker,omitempty" gorm:"type:numeric(12,2)"`
	MaxBudgetPerWorker      *decimal.Decimal `json:"maxBudgetPerWorker,omitempty" gorm:"type:numeric(12,2)"`
	InTime                  string           `json:"inTime,omitempty" gorm:"size:10"`
	OutTime                 string           `json:"outTime,omitempty" gorm:"size:10"`
	Remarks                 string           `json:"remarks,omitempty" gorm:"type:text"`
	SelectedCategories      []string         `json:"selectedCategories" gorm:"serializer:json"`

	EmployerID    uint   `json:"employerId" gorm:"index;not null"`
	EmployerName  string `json:"employerName" gorm:"size:120;not null"`
	EmployerPhone string `json:"employerPhone" gorm:"size:20;not null"`

	Status             string                `json:"status" gorm:"size:20;not null;default:Pending"`
	AssignedAgentID    *uint                 `json:"assignedAgentId,omitempty"`
	AssignedAgentName  string                `json:"assignedAgentName,omitempty" gorm:"size:120"`
	AssignedAgentPhone string                `json:"assignedAgentPhone,omitempty" gorm:"size:20"`
	InterestedAgents   []RequirementInterest `json:"intrestedAgents" gorm:"foreignKey:RequirementID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeNeedDate discards the time-of-day: need dates compare at day
// granularity regardless of what the client sent.
func NormalizeNeedDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *Requirement) BeforeSave(tx *gorm.DB) error {
	if !r.WorkerNeedDate.IsZero() {
		r.WorkerNeedDate = NormalizeNeedDate(r.WorkerNeedDate)
	}
	return nil
}

// RandomERN draws a candidate code; uniqueness is enforced by the unique
// index on requirements.ern, not by the generator.
func RandomERN() int {
	return ernMin + rand.IntN(ernSpan)
}

// CreateRequirement persists a new requirement, allocating its ERN. A
// duplicate-key error means another writer won the same random code, so we
// redraw and retry; the attempt count is bounded for correctness even though
// a collision streak is astronomically unlikely.
func CreateRequirement(db *gorm.DB, r *Requirement) error {
	for attempt := 0; attempt < ernMaxAttempts; attempt++ {
		r.ERN = RandomERN()
		err := db.Create(r).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.ID = 0
			continue
		}
		return err
	}
	return ErrERNExhausted
}

func ValidRequirementStatus(s string) bool {
	switch s {
	case RequirementPending, RequirementAssigned, RequirementFulfilled, RequirementCancelled:
		return true
	}
	return false
}

// ValidRequirementTransition encodes the requirement lifecycle:
// Pending -> Assigned -> Fulfilled | Cancelled. Re-assignment is allowed
// (last writer wins); a Pending requirement may also be cancelled outright.
func ValidRequirementTransition(from, to string) bool {
	switch from {
	case RequirementPending:
		return to == RequirementAssigned || to == RequirementCancelled
	case RequirementAssigned:
		return to == RequirementAssigned || to == RequirementFulfilled || to == RequirementCancelled
	}
	return false
}
