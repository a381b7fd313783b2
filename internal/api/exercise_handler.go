package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/repository"
	"github.com/Team2Kim/exerciesRecord-AI/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the catalog service dependency.
type ExerciseHandler struct {
	catalogService service.CatalogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(catalogService service.CatalogService) *ExerciseHandler {
	return &ExerciseHandler{catalogService: catalogService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for adding a catalog entry.
type CreateExerciseRequest struct {
	ExerciseID int64  `json:"exerciseId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	BodyPart   string `json:"bodyPart" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Duration   int    `json:"durationMinutes" binding:"required,gt=0"`
	Equipment  string `json:"equipment"`
	TargetGoal string `json:"targetGoal" binding:"required"`
}

// UpdateExerciseRequest defines the JSON for a display/media update.
// Only the display name and object keys can change after creation; scoring
// attributes are immutable.
type UpdateExerciseRequest struct {
	Name     string `json:"name"`
	VideoKey string `json:"videoKey"`
	ImageKey string `json:"imageKey"`
}

// MediaUploadURLRequest asks for a presigned PUT URL for demo media.
type MediaUploadURLRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=video image"`
	ContentType string `json:"contentType" binding:"required"`
}

// ExerciseResponse is the DTO for returning catalog entries.
type ExerciseResponse struct {
	ExerciseID int64     `json:"exerciseId"`
	Name       string    `json:"name"`
	BodyPart   string    `json:"bodyPart"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	Duration   int       `json:"durationMinutes"`
	Equipment  string    `json:"equipment,omitempty"`
	TargetGoal string    `json:"targetGoal"`
	VideoURL   string    `json:"videoUrl,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func mapExerciseToResponse(ex *domain.Exercise, media service.ExerciseMedia) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ExerciseID: ex.ExerciseID,
		Name:       ex.Name,
		BodyPart:   string(ex.BodyPart),
		Category:   string(ex.Category),
		Difficulty: string(ex.Difficulty),
		Duration:   ex.Duration,
		Equipment:  ex.Equipment,
		TargetGoal: string(ex.TargetGoal),
		VideoURL:   media.VideoURL,
		ImageURL:   media.ImageURL,
		CreatedAt:  ex.CreatedAt,
		UpdatedAt:  ex.UpdatedAt,
	}
}

// --- Handler Methods ---

// ListExercises handles GET /api/v1/exercises with paging and name search.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	opts := repository.ListOptions{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}

	exercises, total, err := h.catalogService.ListExercises(c.Request.Context(), opts)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises.")
		return
	}

	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		media := h.catalogService.MediaFor(c.Request.Context(), &exercises[i])
		responses[i] = mapExerciseToResponse(&exercises[i], media)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    responses,
		"total":    total,
		"page":     opts.Page,
		"pageSize": opts.PageSize,
	})
}

// GetExercise handles GET /api/v1/exercises/:exerciseId.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, err := strconv.ParseInt(c.Param("exerciseId"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.catalogService.GetExercise(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to get exercise.")
		}
		return
	}

	media := h.catalogService.MediaFor(c.Request.Context(), exercise)
	c.JSON(http.StatusOK, mapExerciseToResponse(exercise, media))
}

// CreateExercise handles POST /api/v1/exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise := &domain.Exercise{
		ExerciseID: req.ExerciseID,
		Name:       req.Name,
		BodyPart:   domain.BodyPart(req.BodyPart),
		Category:   domain.Category(req.Category),
		Difficulty: domain.Difficulty(req.Difficulty),
		Duration:   req.Duration,
		Equipment:  req.Equipment,
		TargetGoal: domain.Goal(req.TargetGoal),
	}
	if fieldErr := exercise.Validate(); fieldErr != nil {
		abortWithError(c, http.StatusBadRequest, fieldErr.Error())
		return
	}

	if err := h.catalogService.CreateExercise(c.Request.Context(), exercise); err != nil {
		if errors.Is(err, service.ErrDuplicateExercise) {
			abortWithError(c, http.StatusConflict, "An exercise with this ID already exists.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	media := h.catalogService.MediaFor(c.Request.Context(), exercise)
	c.JSON(http.StatusCreated, mapExerciseToResponse(exercise, media))
}

// UpdateExercise handles PUT /api/v1/exercises/:exerciseId.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	exerciseID, err := strconv.ParseInt(c.Param("exerciseId"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.UpdateExerciseMedia(
		c.Request.Context(), exerciseID, req.Name, req.VideoKey, req.ImageKey,
	)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	media := h.catalogService.MediaFor(c.Request.Context(), exercise)
	c.JSON(http.StatusOK, mapExerciseToResponse(exercise, media))
}

// MediaUploadURL handles POST /api/v1/exercises/:exerciseId/media/upload-url.
func (h *ExerciseHandler) MediaUploadURL(c *gin.Context) {
	exerciseID, err := strconv.ParseInt(c.Param("exerciseId"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	var req MediaUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uploadURL, objectKey, err := h.catalogService.MediaUploadURL(
		c.Request.Context(), exerciseID, req.Kind, req.ContentType,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrStorageUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, "Object storage is not configured.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": uploadURL,
		"objectKey": objectKey,
	})
}

// RefreshCatalog handles POST /api/v1/exercises/refresh. It rebuilds the
// in-memory snapshot the recommender works from.
func (h *ExerciseHandler) RefreshCatalog(c *gin.Context) {
	size, err := h.catalogService.RefreshCatalog(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to refresh catalog.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"catalogSize": size})
}
