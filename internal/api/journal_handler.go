package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/service"

	"github.com/gin-gonic/gin"
)

// JournalHandler holds the journal service dependency.
type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// AnalyzeRequest wraps one day's workout log.
type AnalyzeRequest struct {
	Log domain.WorkoutLog `json:"log" binding:"required"`
}

// WeeklyPatternRequest wraps up to a week of workout logs.
type WeeklyPatternRequest struct {
	Logs []domain.WorkoutLog `json:"logs" binding:"required"`
}

// Analyze handles POST /api/v1/workout-log/analyze. The optional model query
// parameter overrides the configured LLM model for this call.
func (h *JournalHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.journalService.Analyze(c.Request.Context(), req.Log, c.Query("model"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to analyze workout log.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecommendRoutine handles POST /api/v1/workout-log/recommend. days and
// frequency are query parameters with sensible defaults.
func (h *JournalHandler) RecommendRoutine(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	frequency, _ := strconv.Atoi(c.DefaultQuery("frequency", "3"))

	plan, err := h.journalService.RecommendRoutine(
		c.Request.Context(), req.Log, days, frequency, c.Query("model"),
	)
	if err != nil {
		if errors.Is(err, service.ErrLLMUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "LLM provider is not configured.")
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to generate routine plan.")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// WeeklyPattern handles POST /api/v1/workout-log/weekly-pattern. Only the first
// seven logs are considered.
func (h *JournalHandler) WeeklyPattern(c *gin.Context) {
	var req WeeklyPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.journalService.AnalyzeWeeklyPattern(c.Request.Context(), req.Logs, c.Query("model"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to analyze weekly pattern.")
		return
	}

	c.JSON(http.StatusOK, result)
}
