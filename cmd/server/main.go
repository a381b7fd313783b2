package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Team2Kim/exerciesRecord-AI/internal/api"
	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/openai"
	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/videoapi"
	"github.com/Team2Kim/exerciesRecord-AI/internal/config"
	"github.com/Team2Kim/exerciesRecord-AI/internal/recommend"
	"github.com/Team2Kim/exerciesRecord-AI/internal/repository/mongo"
	"github.com/Team2Kim/exerciesRecord-AI/internal/service"
	"github.com/Team2Kim/exerciesRecord-AI/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Exercise Recommendation Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	// Object storage is optional; without it, exercise records simply carry
	// no presigned media URLs.
	var mediaStorage storage.MediaStorage
	if cfg.S3.BucketName != "" {
		mediaStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		log.Println("S3 media storage initialized.")
	} else {
		log.Println("S3 media storage not configured, presigned media disabled.")
	}

	// --- Initialize Repositories and Catalog Snapshot ---
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	store := catalog.NewStore(exerciseRepo)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := store.Refresh(ctx); err != nil {
			log.Printf("WARN: initial catalog load failed, starting with an empty snapshot: %v", err)
		} else {
			log.Printf("Catalog snapshot loaded: %d exercises.", store.Snapshot().Len())
		}
		cancel()
	}

	// --- Initialize Clients ---
	llmClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	if !llmClient.Available() {
		log.Println("OpenAI API key not configured, journal analysis falls back to rule-based output.")
	}
	var videoClient *videoapi.Client
	if cfg.VideoAPI.BaseURL != "" {
		videoClient = videoapi.NewClient(cfg.VideoAPI.BaseURL, cfg.VideoAPI.Timeout, cfg.VideoAPI.CacheTTL)
	} else {
		log.Println("Video API base URL not configured, video search and enrichment disabled.")
	}

	// --- Initialize Services ---
	assembler := recommend.NewAssembler(recommend.Options{
		GoalPartialCredit: cfg.Recommend.GoalPartialCredit,
		MinCandidates:     cfg.Recommend.MinCandidates,
		MaxPerBodyPart:    cfg.Recommend.MaxPerBodyPart,
		MaxPerDay:         cfg.Recommend.MaxPerDay,
		WarmUpMinutes:     cfg.Recommend.WarmUpMinutes,
		CoolDownMinutes:   cfg.Recommend.CoolDownMinutes,
	})
	catalogService := service.NewCatalogService(exerciseRepo, store, mediaStorage)
	routineService := service.NewRoutineService(store, assembler, videoClient)
	journalService := service.NewJournalService(llmClient)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(router, dbClient, store, catalogService, routineService, journalService, videoClient)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
