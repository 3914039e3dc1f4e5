package models

import (
	"errors"
	"testing"
)

func TestRequirementScopeEmployer(t *testing.T) {
	cond, err := RequirementScope(Caller{ID: 7, Role: RoleEmployer}, false)
	if err != nil {
		t.Fatalf("RequirementScope: %v", err)
	}
	if cond == nil || cond.Column != "employer_id" || cond.Value != uint(7) {
		t.Fatalf("unexpected condition: %+v", cond)
	}
}

func TestRequirementScopeAgentUsesDistrict(t *testing.T) {
	cond, err := RequirementScope(Caller{ID: 3, Role: RoleAgent, District: "Lucknow"}, false)
	if err != nil {
		t.Fatalf("RequirementScope: %v", err)
	}
	if cond == nil || cond.Column != "district" || cond.Value != "Lucknow" {
		t.Fatalf("unexpected condition: %+v", cond)
	}
}

func TestRequirementScopeAdminRequiresFilter(t *testing.T) {
	if _, err := RequirementScope(Caller{ID: 1, Role: RoleAdmin}, false); !errors.Is(err, ErrScopeFilterRequired) {
		t.Fatalf("want ErrScopeFilterRequired, got %v", err)
	}
	cond, err := RequirementScope(Caller{ID: 1, Role: RoleSuperAdmin}, true)
	if err != nil {
		t.Fatalf("RequirementScope with filter: %v", err)
	}
	if cond != nil {
		t.Fatalf("admin scope should be unrestricted, got %+v", cond)
	}
}

func TestAttendanceScopeAgentUsesOwnID(t *testing.T) {
	cond, err := AttendanceScope(Caller{ID: 9, Role: RoleAgent, District: "Kanpur"}, false)
	if err != nil {
		t.Fatalf("AttendanceScope: %v", err)
	}
	if cond == nil || cond.Column != "agent_id" || cond.Value != uint(9) {
		t.Fatalf("unexpected condition: %+v", cond)
	}
}

func TestAttendanceScopeEmployer(t *testing.T) {
	cond, err := AttendanceScope(Caller{ID: 4, Role: RoleEmployer}, false)
	if err != nil {
		t.Fatalf("AttendanceScope: %v", err)
	}
	if cond == nil || cond.Column != "employer_id" || cond.Value != uint(4) {
		t.Fatalf("unexpected condition: %+v", cond)
	}
}

func TestScopeRejectsUnknownRole(t *testing.T) {
	if _, err := RequirementScope(Caller{Role: RoleWorker}, true); err == nil {
		t.Fatal("worker role should not query requirements")
	}
	if _, err := AttendanceScope(Caller{Role: "Visitor"}, true); err == nil {
		t.Fatal("unknown role should be rejected")
	}
}
