package handlers

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shvendra/bookmyworker-back/models"
)

func TestWorkerWageRules(t *testing.T) {
	fixed := decimal.NewFromInt(500)
	from := decimal.NewFromInt(400)
	to := decimal.NewFromInt(600)

	r := workerReq{}
	if msg := r.validateWages(); msg != "Please either provide fixed wages or ranged wages." {
		t.Fatalf("no wages: %q", msg)
	}

	r = workerReq{FixedSalary: &fixed, SalaryFrom: &from, SalaryTo: &to}
	if msg := r.validateWages(); msg != "Cannot Enter Fixed and Ranged wages together." {
		t.Fatalf("both wages: %q", msg)
	}

	r = workerReq{FixedSalary: &fixed}
	if msg := r.validateWages(); msg != "" {
		t.Fatalf("fixed only should pass: %q", msg)
	}
	r = workerReq{SalaryFrom: &from, SalaryTo: &to}
	if msg := r.validateWages(); msg != "" {
		t.Fatalf("range only should pass: %q", msg)
	}
}

func TestCreateWorkerRequiresCoreFields(t *testing.T) {
	h := NewWorkerHandler()
	agent := &models.Caller{ID: 2, Role: models.RoleAgent}

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/job/post", `{"name":"R Kumar"}`, agent)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	out := decodeBody(t, rec)
	if msg, _ := out["message"].(string); msg != "Please provide complete worker details." {
		t.Fatalf("unexpected message %q", msg)
	}
}
