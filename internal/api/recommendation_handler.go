package api

import (
	"errors"
	"net/http"

	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler holds the routine service dependency.
type RecommendationHandler struct {
	routineService service.RoutineService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(routineService service.RoutineService) *RecommendationHandler {
	return &RecommendationHandler{routineService: routineService}
}

// RecommendRoutineRequest is the goal profile as posted by the caller.
// Binding stays loose here; the domain validation produces field-level
// messages the client can act on.
type RecommendRoutineRequest struct {
	WeeklyFrequency      int    `json:"weeklyFrequency"`
	SplitType            string `json:"splitType"`
	PrimaryGoal          string `json:"primaryGoal"`
	ExperienceLevel      string `json:"experienceLevel"`
	AvailableTimeMinutes int    `json:"availableTimeMinutes"`
}

// RecommendRoutine handles POST /api/v1/recommendations. The optional
// enrich query flag annotates selected exercises with provider videos.
func (h *RecommendationHandler) RecommendRoutine(c *gin.Context) {
	var req RecommendRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile := domain.UserGoalProfile{
		WeeklyFrequency:      req.WeeklyFrequency,
		SplitType:            domain.SplitType(req.SplitType),
		PrimaryGoal:          domain.Goal(req.PrimaryGoal),
		ExperienceLevel:      domain.Difficulty(req.ExperienceLevel),
		AvailableTimeMinutes: req.AvailableTimeMinutes,
	}

	enrich := c.Query("enrich") == "true"

	routine, err := h.routineService.BuildRoutine(c.Request.Context(), profile, enrich)
	if err != nil {
		var fieldErr *domain.FieldError
		switch {
		case errors.As(err, &fieldErr):
			abortWithError(c, http.StatusBadRequest, fieldErr.Error())
		case errors.Is(err, catalog.ErrEmptyCatalog):
			abortWithError(c, http.StatusServiceUnavailable, "Exercise catalog is empty; load the catalog and refresh.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to build routine.")
		}
		return
	}

	c.JSON(http.StatusOK, routine)
}
