package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/models"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

type addAttendanceReq struct {
	AgentID         uint            `json:"agentId"`
	StreamID        uint            `json:"streamId"` // requirement id; field name kept for the FE
	NumberOfWorkers int             `json:"numberOfWorkers"`
	PerWorkerRate   decimal.Decimal `json:"perWorkerRate"`
	AgentName       string          `json:"agentName"`
	EmployerName    string          `json:"employerName"`
	WorkLocation    string          `json:"workLocation"`
	ERN             string          `json:"ern"`
	EmployerID      *uint           `json:"employer_id"`
}

// POST /api/v1/attendance/add-attendance (Agent)
func (h *AttendanceHandler) Add(c echo.Context) error {
	var req addAttendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.AgentID == 0 || req.StreamID == 0 || req.NumberOfWorkers < 1 ||
		!req.PerWorkerRate.IsPositive() ||
		strings.TrimSpace(req.AgentName) == "" || strings.TrimSpace(req.EmployerName) == "" ||
		strings.TrimSpace(req.ERN) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "All fields are required",
		})
	}

	attendance := models.WorkerAttendance{
		AgentID:         req.AgentID,
		EmployerID:      req.EmployerID,
		RequirementID:   req.StreamID,
		NumberOfWorkers: req.NumberOfWorkers,
		PerWorkerRate:   req.PerWorkerRate,
		SentByAgent:     true, // the submission itself is the send event
		AgentName:       strings.TrimSpace(req.AgentName),
		EmployerName:    strings.TrimSpace(req.EmployerName),
		WorkLocation:    strings.TrimSpace(req.WorkLocation),
		ERNNumber:       strings.TrimSpace(req.ERN),
		Status:          models.AttendancePending,
	}
	if err := database.DB.Create(&attendance).Error; err != nil {
		config.LogError(config.GetLogger(), "handlers", "Add", "create attendance", req.AgentID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Worker attendance added successfully",
		"data":    attendance,
	})
}

// scopedAttendanceQuery builds the role-narrowed ledger query shared by
// List and Export.
func scopedAttendanceQuery(c echo.Context, caller models.Caller) (*gorm.DB, error) {
	requirementID := strings.TrimSpace(c.QueryParam("requirement_id"))
	agentID := strings.TrimSpace(c.QueryParam("agent_id"))
	employerID := strings.TrimSpace(c.QueryParam("employer_id"))
	hasFilter := requirementID != "" || agentID != "" || employerID != ""

	scope, err := models.AttendanceScope(caller, hasFilter)
	if err != nil {
		return nil, err
	}

	tx := database.DB.Model(&models.WorkerAttendance{})
	if scope != nil {
		tx = tx.Where(scope.Column+" = ?", scope.Value)
	}
	if requirementID != "" {
		tx = tx.Where("requirement_id = ?", requirementID)
	}
	// agent/employer filters widen nothing for scoped roles, so only admins
	// get to use them
	if caller.IsAdmin() {
		if agentID != "" {
			tx = tx.Where("agent_id = ?", agentID)
		}
		if employerID != "" {
			tx = tx.Where("employer_id = ?", employerID)
		}
	}
	return tx, nil
}

// GET /api/v1/attendance/get-by-requirement?requirement_id=&agent_id=&employer_id=
func (h *AttendanceHandler) List(c echo.Context) error {
	caller := callerFrom(c)
	tx, err := scopedAttendanceQuery(c, caller)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]any{
			"success": false,
			"message": "Access denied. Only Admin/SuperAdmin can fetch all data.",
		})
	}

	var rows []models.WorkerAttendance
	if err := tx.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		config.LogError(config.GetLogger(), "handlers", "List", "query attendance", caller.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": rows})
}

type updateAttendanceStatusReq struct {
	Status string `json:"status"`
}

// PUT /api/v1/attendance/update-requ/:id (Employer/Admin)
//
// Status moves through the closed enum only. Accepted additionally flips the
// employer booleans so the write-once received timestamp gets stamped.
func (h *AttendanceHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateAttendanceStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Status is required",
		})
	}
	if !models.ValidAttendanceStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
	}

	var row models.WorkerAttendance
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{
				"success": false,
				"message": "Attendance not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !models.ValidAttendanceTransition(row.Status, status) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_TRANSITION"})
	}

	row.Status = status
	if status == models.AttendanceAccepted {
		row.EmployerAccepted = true
		row.ReceivedByEmployer = true
	}
	// Save runs the BeforeSave hook so received_date_time is stamped once
	if err := database.DB.Save(&row).Error; err != nil {
		config.LogError(config.GetLogger(), "handlers", "UpdateStatus", "update attendance", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": row})
}

// GET /api/v1/attendance/export (Admin/SuperAdmin)
func (h *AttendanceHandler) Export(c echo.Context) error {
	caller := callerFrom(c)
	tx, err := scopedAttendanceQuery(c, caller)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]any{
			"success": false,
			"message": "Access denied. Only Admin/SuperAdmin can fetch all data.",
		})
	}

	var rows []models.WorkerAttendance
	if err := tx.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"ID", "ERN", "Agent", "Employer", "Workers", "Rate", "Status", "Sent At", "Received At", "Location"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for i, r := range rows {
		values := []any{
			r.ID, r.ERNNumber, r.AgentName, r.EmployerName,
			r.NumberOfWorkers, r.PerWorkerRate.String(), r.Status,
			formatTimePtr(r.SendDateTime), formatTimePtr(r.ReceivedDateTime),
			r.WorkLocation,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		config.LogError(config.GetLogger(), "handlers", "Export", "write xlsx", caller.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "EXPORT_FAILED"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="attendance.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
