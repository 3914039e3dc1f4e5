package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/models"
)

type WorkerHandler struct{}

func NewWorkerHandler() *WorkerHandler { return &WorkerHandler{} }

type workerReq struct {
	Name           string           `json:"name"`
	AreasOfWork    string           `json:"areasOfWork"`
	WorkExperience string           `json:"workExperience"`
	Description    string           `json:"description"`
	FixedSalary    *decimal.Decimal `json:"fixedSalary"`
	SalaryFrom     *decimal.Decimal `json:"salaryFrom"`
	SalaryTo       *decimal.Decimal `json:"salaryTo"`
	DOB            string           `json:"dob"`
	Phone          string           `json:"phone"`
	Aadhar         string           `json:"aadhar"`
	IFSCCode       string           `json:"ifscCode"`
	BankAccount    string           `json:"bankAccount"`
	PinCode        string           `json:"pinCode"`
	Address        string           `json:"address"`
	Profile        string           `json:"profile"`
}

func (r *workerReq) validateWages() string {
	hasRange := r.SalaryFrom != nil && r.SalaryTo != nil
	if !hasRange && r.FixedSalary == nil {
		return "Please either provide fixed wages or ranged wages."
	}
	if hasRange && r.FixedSalary != nil {
		return "Cannot Enter Fixed and Ranged wages together."
	}
	return ""
}

// POST /api/v1/job/post (Agent/Employer)
func (h *WorkerHandler) Create(c echo.Context) error {
	caller := callerFrom(c)

	var req workerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.AreasOfWork) == "" ||
		strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Please provide complete worker details.",
		})
	}
	if msg := req.validateWages(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": msg})
	}

	worker := models.WorkerProfile{
		Name:           strings.TrimSpace(req.Name),
		AreasOfWork:    strings.TrimSpace(req.AreasOfWork),
		WorkExperience: req.WorkExperience,
		Description:    req.Description,
		FixedSalary:    req.FixedSalary,
		SalaryFrom:     req.SalaryFrom,
		SalaryTo:       req.SalaryTo,
		DOB:            req.DOB,
		Phone:          req.Phone,
		Aadhar:         req.Aadhar,
		IFSCCode:       req.IFSCCode,
		BankAccount:    req.BankAccount,
		PinCode:        req.PinCode,
		Address:        req.Address,
		Profile:        req.Profile,
		PostedBy:       caller.ID,
	}
	if err := database.DB.Create(&worker).Error; err != nil {
		config.LogError(config.GetLogger(), "handlers", "Create", "create worker", caller.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Worker added Successfully!",
		"job":     worker,
	})
}

// GET /api/v1/job/getall
func (h *WorkerHandler) List(c echo.Context) error {
	var workers []models.WorkerProfile
	if err := database.DB.Where("expired = ?", false).Find(&workers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "jobs": workers})
}

// GET /api/v1/job/getmyjobs
func (h *WorkerHandler) Mine(c echo.Context) error {
	caller := callerFrom(c)
	var workers []models.WorkerProfile
	if err := database.DB.Where("posted_by = ?", caller.ID).Find(&workers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "myJobs": workers})
}

// GET /api/v1/job/:id
func (h *WorkerHandler) Get(c echo.Context) error {
	var worker models.WorkerProfile
	if err := database.DB.First(&worker, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Worker not found."})
		}
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Invalid ID / CastError"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "job": worker})
}

// PUT /api/v1/job/update/:id
func (h *WorkerHandler) Update(c echo.Context) error {
	caller := callerFrom(c)

	var worker models.WorkerProfile
	if err := database.DB.First(&worker, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "OOPS! Worker not found."})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !caller.IsAdmin() && worker.PostedBy != caller.ID {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}

	var req workerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	updates := map[string]any{}
	if strings.TrimSpace(req.Name) != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if strings.TrimSpace(req.AreasOfWork) != "" {
		updates["areas_of_work"] = strings.TrimSpace(req.AreasOfWork)
	}
	if strings.TrimSpace(req.Description) != "" {
		updates["description"] = req.Description
	}
	if req.WorkExperience != "" {
		updates["work_experience"] = req.WorkExperience
	}
	if req.FixedSalary != nil {
		updates["fixed_salary"] = req.FixedSalary
	}
	if req.SalaryFrom != nil {
		updates["salary_from"] = req.SalaryFrom
	}
	if req.SalaryTo != nil {
		updates["salary_to"] = req.SalaryTo
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&worker).Updates(updates).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Worker Updated!"})
}

// DELETE /api/v1/job/delete/:id
func (h *WorkerHandler) Delete(c echo.Context) error {
	caller := callerFrom(c)

	var worker models.WorkerProfile
	if err := database.DB.First(&worker, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "OOPS! Worker not found."})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !caller.IsAdmin() && worker.PostedBy != caller.ID {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}
	if err := database.DB.Delete(&worker).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Worker Deleted!"})
}
