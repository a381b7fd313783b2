package api

import (
	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/videoapi"
	"github.com/Team2Kim/exerciesRecord-AI/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(
	router *gin.Engine,
	mongoClient *mongo.Client,
	store *catalog.Store,
	catalogService service.CatalogService,
	routineService service.RoutineService,
	journalService service.JournalService,
	videos *videoapi.Client,
) {
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())

	exerciseHandler := NewExerciseHandler(catalogService)
	recommendationHandler := NewRecommendationHandler(routineService)
	journalHandler := NewJournalHandler(journalService)
	videoHandler := NewVideoHandler(videos)
	healthHandler := NewHealthHandler(mongoClient, store)

	router.GET("/health", healthHandler.Health)

	apiV1 := router.Group("/api/v1")
	{
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.POST("/refresh", exerciseHandler.RefreshCatalog)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:exerciseId", exerciseHandler.UpdateExercise)
			exerciseGroup.POST("/:exerciseId/media/upload-url", exerciseHandler.MediaUploadURL)
		}

		apiV1.POST("/recommendations", recommendationHandler.RecommendRoutine)

		journalGroup := apiV1.Group("/workout-log")
		{
			journalGroup.POST("/analyze", journalHandler.Analyze)
			journalGroup.POST("/recommend", journalHandler.RecommendRoutine)
			journalGroup.POST("/weekly-pattern", journalHandler.WeeklyPattern)
		}

		videoGroup := apiV1.Group("/videos")
		{
			videoGroup.GET("/search", videoHandler.Search)
			videoGroup.GET("/search/muscles", videoHandler.SearchByMuscle)
		}
	}
}
