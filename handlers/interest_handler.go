package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/models"
)

type InterestHandler struct{}

func NewInterestHandler() *InterestHandler { return &InterestHandler{} }

type expressInterestReq struct {
	AgentRequiredWage decimal.Decimal `json:"agentRequiredWage"`
}

// POST /api/v1/requirement/:id/interest (Agent only)
//
// Duplicate interest is a business outcome, not a fault: the response is
// 200 with success=false. The unique index behind ExpressInterest decides;
// the HasInterest pre-check only produces the friendlier message when the
// duplicate is already visible.
func (h *InterestHandler) Express(c echo.Context) error {
	caller := callerFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_REQUIREMENT_ID"})
	}

	var req expressInterestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if !req.AgentRequiredWage.IsPositive() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "agentRequiredWage must be a positive amount",
		})
	}

	var requirement models.Requirement
	if err := database.DB.First(&requirement, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{
				"success": false,
				"message": "Requirement not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}

	if dup, err := models.HasInterest(database.DB, requirement.ID, caller.ID); err == nil && dup {
		return c.JSON(http.StatusOK, map[string]any{
			"success": false,
			"message": "already interested",
		})
	}

	entry := models.RequirementInterest{
		RequirementID:     requirement.ID,
		AgentID:           caller.ID,
		AgentName:         caller.Name,
		AgentRequiredWage: req.AgentRequiredWage,
	}
	inserted, err := models.ExpressInterest(database.DB, &entry)
	if err != nil {
		config.LogError(config.GetLogger(), "handlers", "Express", "insert interest", caller.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !inserted {
		// lost the race between the pre-check and the insert
		return c.JSON(http.StatusOK, map[string]any{
			"success": false,
			"message": "already interested",
		})
	}

	var entries []models.RequirementInterest
	if err := database.DB.Where("requirement_id = ?", requirement.ID).
		Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"message":         "Interest recorded",
		"intrestedAgents": entries,
	})
}
