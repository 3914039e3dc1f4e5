package models

import "errors"

// Caller is the authenticated identity, as extracted from JWT claims by the
// auth middleware. District matters only for agents.
type Caller struct {
	ID       uint
	Role     string
	Name     string
	Phone    string
	District string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// ErrScopeFilterRequired: an unrestricted (admin) caller must name at least
// one explicit filter instead of silently dumping the whole collection.
var ErrScopeFilterRequired = errors.New("explicit filter required")

// ScopeCondition narrows a query to what the caller may see. A nil condition
// means unrestricted.
type ScopeCondition struct {
	Column string
	Value  any
}

// RequirementScope: employers see their own postings, agents see their
// district's labor market, admins see everything but must filter.
func RequirementScope(caller Caller, hasFilter bool) (*ScopeCondition, error) {
	switch caller.Role {
	case RoleEmployer:
		return &ScopeCondition{Column: "employer_id", Value: caller.ID}, nil
	case RoleAgent:
		return &ScopeCondition{Column: "district", Value: caller.District}, nil
	case RoleAdmin, RoleSuperAdmin:
		if !hasFilter {
			return nil, ErrScopeFilterRequired
		}
		return nil, nil
	}
	return nil, errors.New("role not allowed")
}

// AttendanceScope: employers and agents each see their own ledger rows,
// admins see everything but must filter.
func AttendanceScope(caller Caller, hasFilter bool) (*ScopeCondition, error) {
	switch caller.Role {
	case RoleEmployer:
		return &ScopeCondition{Column: "employer_id", Value: caller.ID}, nil
	case RoleAgent:
		return &ScopeCondition{Column: "agent_id", Value: caller.ID}, nil
	case RoleAdmin, RoleSuperAdmin:
		if !hasFilter {
			return nil, ErrScopeFilterRequired
		}
		return nil, nil
	}
	return nil, errors.New("role not allowed")
}
