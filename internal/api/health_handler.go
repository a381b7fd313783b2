package api

import (
	"net/http"
	"time"

	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const serviceVersion = "1.0.0"

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	mongoClient *mongo.Client
	store       *catalog.Store
	startedAt   time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(mongoClient *mongo.Client, store *catalog.Store) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		store:       store,
		startedAt:   time.Now(),
	}
}

// Health handles GET /health. A failing database ping degrades the status
// but still answers 200; the recommender keeps serving from its snapshot.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if err := h.mongoClient.Ping(c.Request.Context(), readpref.Primary()); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        status,
		"version":       serviceVersion,
		"database":      dbStatus,
		"catalogSize":   h.store.Snapshot().Len(),
		"uptimeSeconds": int(time.Since(h.startedAt).Seconds()),
	})
}
