package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequirementInterest is one agent's wage bid against a requirement. The
// composite unique index is what guarantees at most one row per
// (requirement, agent) pair no matter how many submissions race.
type RequirementInterest struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	RequirementID     uint            `json:"requirementId" gorm:"uniqueIndex:idx_requirement_agent;not null"`
	AgentID           uint            `json:"agentId" gorm:"uniqueIndex:idx_requirement_agent;not null"`
	AgentName         string          `json:"agentName" gorm:"size:120"`
	AgentRequiredWage decimal.Decimal `json:"agentRequiredWage" gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time `json:"created_at"`
}

// ExpressInterest appends a bid as a single atomic insert-if-absent. The
// reported bool is false when the agent already had a row; the caller turns
// that into the soft "already interested" outcome, never an error.
func ExpressInterest(db *gorm.DB, entry *RequirementInterest) (bool, error) {
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "requirement_id"}, {Name: "agent_id"}},
		DoNothing: true,
	}).Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasInterest is a read-only fast path used for the friendlier duplicate
// message; ExpressInterest's ON CONFLICT clause remains the source of truth.
func HasInterest(db *gorm.DB, requirementID, agentID uint) (bool, error) {
	var n int64
	err := db.Model(&RequirementInterest{}).
		Where("requirement_id = ? AND agent_id = ?", requirementID, agentID).
		Count(&n).Error
	return n > 0, err
}
