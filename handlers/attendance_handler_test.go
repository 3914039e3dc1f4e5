package handlers

import (
	"net/http"
	"testing"

	"github.com/shvendra/bookmyworker-back/models"
)

func TestAddAttendanceRequiresAllFields(t *testing.T) {
	h := NewAttendanceHandler()
	agent := &models.Caller{ID: 9, Role: models.RoleAgent}

	for _, body := range []string{
		`{}`,
		`{"agentId":9}`,
		`{"agentId":9,"streamId":1,"numberOfWorkers":0,"perWorkerRate":"500","agentName":"A","employerName":"E","ern":"123456"}`,
		`{"agentId":9,"streamId":1,"numberOfWorkers":5,"perWorkerRate":"0","agentName":"A","employerName":"E","ern":"123456"}`,
		`{"agentId":9,"streamId":1,"numberOfWorkers":5,"perWorkerRate":"500","agentName":"","employerName":"E","ern":"123456"}`,
		`{"agentId":9,"streamId":1,"numberOfWorkers":5,"perWorkerRate":"500","agentName":"A","employerName":"E","ern":""}`,
	} {
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/attendance/add-attendance", body, agent)
		if err := h.Add(c); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status %d, want 400", body, rec.Code)
		}
		out := decodeBody(t, rec)
		if msg, _ := out["message"].(string); msg != "All fields are required" {
			t.Fatalf("body %s: unexpected message %q", body, msg)
		}
	}
}

func TestUpdateStatusRejectsMissingAndUnknownStatus(t *testing.T) {
	h := NewAttendanceHandler()
	employer := &models.Caller{ID: 1, Role: models.RoleEmployer}

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/attendance/update-requ/1", `{}`, employer)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty status: status %d, want 400", rec.Code)
	}
	out := decodeBody(t, rec)
	if msg, _ := out["message"].(string); msg != "Status is required" {
		t.Fatalf("unexpected message %q", msg)
	}

	c, rec = newTestContext(t, http.MethodPut, "/api/v1/attendance/update-requ/1", `{"status":"Approved"}`, employer)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: status %d, want 400", rec.Code)
	}
	out = decodeBody(t, rec)
	if out["error"] != "INVALID_STATUS" {
		t.Fatalf("unexpected error %v", out["error"])
	}
}

func TestAttendanceListAdminWithoutFilterForbidden(t *testing.T) {
	h := NewAttendanceHandler()
	admin := &models.Caller{ID: 1, Role: models.RoleSuperAdmin}

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/attendance/get-by-requirement", "", admin)
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", rec.Code)
	}
	out := decodeBody(t, rec)
	if msg, _ := out["message"].(string); msg != "Access denied. Only Admin/SuperAdmin can fetch all data." {
		t.Fatalf("unexpected message %q", msg)
	}
}
