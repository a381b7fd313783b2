package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/videoapi"

	"github.com/gin-gonic/gin"
)

// VideoHandler proxies search requests to the external video provider.
type VideoHandler struct {
	videos *videoapi.Client
}

// NewVideoHandler creates a new VideoHandler. videos may be nil when no
// provider is configured; the handler then answers 503.
func NewVideoHandler(videos *videoapi.Client) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// Search handles GET /api/v1/videos/search.
func (h *VideoHandler) Search(c *gin.Context) {
	if h.videos == nil {
		abortWithError(c, http.StatusServiceUnavailable, "Video provider is not configured.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	result, err := h.videos.Search(c.Request.Context(), videoapi.SearchParams{
		Page:          page,
		Size:          size,
		Keyword:       c.Query("keyword"),
		TargetGroup:   c.Query("targetGroup"),
		FitnessFactor: c.Query("fitnessFactorName"),
		Tool:          c.Query("exerciseTool"),
	})
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Video provider request failed.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchByMuscle handles GET /api/v1/videos/search/muscles. muscles is a
// comma-separated list.
func (h *VideoHandler) SearchByMuscle(c *gin.Context) {
	if h.videos == nil {
		abortWithError(c, http.StatusServiceUnavailable, "Video provider is not configured.")
		return
	}

	raw := c.Query("muscles")
	if raw == "" {
		abortWithError(c, http.StatusBadRequest, "muscles query parameter is required.")
		return
	}
	var muscles []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			muscles = append(muscles, m)
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	result, err := h.videos.SearchByMuscle(c.Request.Context(), muscles, page, size)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Video provider request failed.")
		return
	}

	c.JSON(http.StatusOK, result)
}
