package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/models"
)

type RequirementHandler struct{}

func NewRequirementHandler() *RequirementHandler { return &RequirementHandler{} }

type createRequirementReq struct {
	WorkType                string           `json:"workType"`
	WorkerQuantitySkilled   *int             `json:"workerQuantitySkilled"`
	WorkerQuantityUnskilled *int             `json:"workerQuantityUnskilled"`
	WorkLocation            string           `json:"workLocation"`
	WorkerNeedDate          time.Time        `json:"workerNeedDate"`
	State                   string           `json:"state"`
	District                string           `json:"district"`
	AgeGroup                string           `json:"ageGroup"`
	BudgetPerWorker         *decimal.Decimal `json:"budgetPerWorker"`
	MinBudgetPerWorker      *decimal.Decimal `json:"minBudgetPerWorker"`
	MaxBudgetPerWorker      *decimal.Decimal `json:"maxBudgetPerWorker"`
	InTime                  string           `json:"inTime"`
	OutTime                 string           `json:"outTime"`
	Remarks                 string           `json:"remarks"`
	SelectedCategories      []string         `json:"selectedCategories"`
}

// missingField names the first absent required field, matching the API's
// original error texts.
func (r *createRequirementReq) missingField() string {
	switch {
	case strings.TrimSpace(r.WorkType) == "":
		return "workType"
	case r.WorkerQuantityUnskilled == nil || *r.WorkerQuantityUnskilled < 0:
		return "workerQuantityUnskilled"
	case r.WorkerQuantitySkilled == nil || *r.WorkerQuantitySkilled < 0:
		return "workerQuantitySkilled"
	case strings.TrimSpace(r.WorkLocation) == "":
		return "workLocation"
	case r.WorkerNeedDate.IsZero():
		return "workerNeedDate"
	case strings.TrimSpace(r.State) == "":
		return "state"
	case strings.TrimSpace(r.District) == "":
		return "district"
	}
	return ""
}

// POST /api/v1/requirement/insert (Employer only)
//
// Employer identity is stamped from the JWT, never from the body, so one
// employer cannot post requirements as another.
func (h *RequirementHandler) Create(c echo.Context) error {
	caller := callerFrom(c)

	var req createRequirementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if f := req.missingField(); f != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Missing required field: " + f,
		})
	}

	requirement := models.Requirement{
		WorkType:                strings.TrimSpace(req.WorkType),
		WorkerQuantitySkilled:   *req.WorkerQuantitySkilled,
		WorkerQuantityUnskilled: *req.WorkerQuantityUnskilled,
		WorkLocation:            strings.TrimSpace(req.WorkLocation),
		WorkerNeedDate:          req.WorkerNeedDate,
		State:                   strings.TrimSpace(req.State),
		District:                strings.TrimSpace(req.District),
		AgeGroup:                req.AgeGroup,
		BudgetPerWorker:         req.BudgetPerWorker,
		MinBudgetPerWorker:      req.MinBudgetPerWorker,
		MaxBudgetPerWorker:      req.MaxBudgetPerWorker,
		InTime:                  req.InTime,
		OutTime:                 req.OutTime,
		Remarks:                 req.Remarks,
		SelectedCategories:      req.SelectedCategories,
		EmployerID:              caller.ID,
		EmployerName:            caller.Name,
		EmployerPhone:           caller.Phone,
		Status:                  models.RequirementPending,
	}

	if err := models.CreateRequirement(database.DB, &requirement); err != nil {
		if errors.Is(err, models.ErrERNExhausted) {
			return c.JSON(http.StatusConflict, map[string]any{"error": "ERN_ALLOCATION_EXHAUSTED"})
		}
		config.LogError(config.GetLogger(), "handlers", "Create", "create requirement", caller.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":     true,
		"message":     "Requirement posted successfully!",
		"requirement": requirement,
	})
}

// GET /api/v1/requirement?ERN_NUMBER=&state=&district=&status=&workType=
func (h *RequirementHandler) List(c echo.Context) error {
	caller := callerFrom(c)

	ern := strings.TrimSpace(c.QueryParam("ERN_NUMBER"))
	state := strings.TrimSpace(c.QueryParam("state"))
	district := strings.TrimSpace(c.QueryParam("district"))
	status := strings.TrimSpace(c.QueryParam("status"))
	workType := strings.TrimSpace(c.QueryParam("workType"))
	hasFilter := ern != "" || state != "" || district != "" || status != "" || workType != ""

	scope, err := models.RequirementScope(caller, hasFilter)
	if err != nil {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "FORBIDDEN", "message": err.Error()})
	}

	tx := database.DB.Model(&models.Requirement{})
	if scope != nil {
		tx = tx.Where(scope.Column+" = ?", scope.Value)
	}
	if ern != "" {
		tx = tx.Where("ern = ?", atoiOr(ern, -1))
	}
	if state != "" {
		tx = tx.Where("state = ?", state)
	}
	if district != "" {
		tx = tx.Where("district = ?", district)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if workType != "" {
		tx = tx.Where("work_type = ?", workType)
	}

	var requirements []models.Requirement
	if err := tx.Preload("InterestedAgents").Find(&requirements).Error; err != nil {
		config.LogError(config.GetLogger(), "handlers", "List", "query requirements", caller.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "requirements": requirements})
}

type assignReq struct {
	AgentID            uint   `json:"agentId"`
	ERN                int    `json:"ern"`
	AssignedAgentName  string `json:"assignedAgentName"`
	AssignedAgentPhone string `json:"assignedAgentPhone"`
}

// PUT /api/v1/requirement/assign (Employer/Admin)
//
// One atomic UPDATE keyed on the ERN; concurrent assigns race with
// last-writer-wins semantics by design.
func (h *RequirementHandler) Assign(c echo.Context) error {
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.AgentID == 0 || req.ERN == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Missing agentId or ern",
		})
	}

	res := database.DB.Model(&models.Requirement{}).
		Where("ern = ?", req.ERN).
		Updates(map[string]any{
			"status":               models.RequirementAssigned,
			"assigned_agent_id":    req.AgentID,
			"assigned_agent_name":  strings.TrimSpace(req.AssignedAgentName),
			"assigned_agent_phone": strings.TrimSpace(req.AssignedAgentPhone),
		})
	if res.Error != nil {
		config.LogError(config.GetLogger(), "handlers", "Assign", "assign agent", req.ERN, res.Error)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Requirement not found with given ERN",
		})
	}

	var requirement models.Requirement
	if err := database.DB.Preload("InterestedAgents").
		Where("ern = ?", req.ERN).First(&requirement).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Agent assigned successfully",
		"requirement": requirement,
	})
}

type updateRequirementStatusReq struct {
	Status string `json:"status"`
}

// PUT /api/v1/requirement/status/:ern (Employer/Admin)
//
// Closes out a requirement. Unlike Assign this is guarded: the update is
// conditional on the status we read, so two racing transitions cannot both
// apply.
func (h *RequirementHandler) UpdateStatus(c echo.Context) error {
	ern := atoiOr(c.Param("ern"), 0)
	if ern == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ERN"})
	}

	var req updateRequirementStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	status := strings.TrimSpace(req.Status)
	if !models.ValidRequirementStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
	}

	var requirement models.Requirement
	if err := database.DB.Where("ern = ?", ern).First(&requirement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{
				"success": false,
				"message": "Requirement not found with given ERN",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !models.ValidRequirementTransition(requirement.Status, status) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_TRANSITION"})
	}

	res := database.DB.Model(&models.Requirement{}).
		Where("ern = ? AND status = ?", ern, requirement.Status).
		Update("status", status)
	if res.Error != nil {
		config.LogError(config.GetLogger(), "handlers", "UpdateStatus", "update requirement", ern, res.Error)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if res.RowsAffected == 0 {
		// status moved underneath us
		return c.JSON(http.StatusConflict, map[string]any{"error": "STATUS_CHANGED"})
	}

	requirement.Status = status
	return c.JSON(http.StatusOK, map[string]any{"success": true, "requirement": requirement})
}
