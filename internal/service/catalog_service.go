package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/repository"
	"github.com/Team2Kim/exerciesRecord-AI/internal/storage"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrDuplicateExercise  = errors.New("an exercise with this catalog identifier already exists")
	ErrStorageUnavailable = errors.New("media storage is not configured")
)

// ExerciseMedia carries presigned URLs for a record's demo media.
type ExerciseMedia struct {
	VideoURL string `json:"videoUrl,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// CatalogService owns catalog reads/writes and keeps the in-memory
// snapshot in sync after every write.
type CatalogService interface {
	ListExercises(ctx context.Context, opts repository.ListOptions) ([]domain.Exercise, int64, error)
	GetExercise(ctx context.Context, exerciseID int64) (*domain.Exercise, error)
	CreateExercise(ctx context.Context, exercise *domain.Exercise) error
	UpdateExerciseMedia(ctx context.Context, exerciseID int64, name, videoKey, imageKey string) (*domain.Exercise, error)
	RefreshCatalog(ctx context.Context) (int, error)
	MediaFor(ctx context.Context, exercise *domain.Exercise) ExerciseMedia
	MediaUploadURL(ctx context.Context, exerciseID int64, kind, contentType string) (uploadURL, objectKey string, err error)
}

type catalogService struct {
	repo    repository.ExerciseRepository
	store   *catalog.Store
	media   storage.MediaStorage
}

// NewCatalogService creates a new catalog service. media may be nil when no
// object storage is configured; MediaFor then returns empty URLs.
func NewCatalogService(repo repository.ExerciseRepository, store *catalog.Store, media storage.MediaStorage) CatalogService {
	return &catalogService{repo: repo, store: store, media: media}
}

func (s *catalogService) ListExercises(ctx context.Context, opts repository.ListOptions) ([]domain.Exercise, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *catalogService) GetExercise(ctx context.Context, exerciseID int64) (*domain.Exercise, error) {
	exercise, err := s.repo.GetByExerciseID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *catalogService) CreateExercise(ctx context.Context, exercise *domain.Exercise) error {
	if err := exercise.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return ErrDuplicateExercise
		}
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

func (s *catalogService) UpdateExerciseMedia(ctx context.Context, exerciseID int64, name, videoKey, imageKey string) (*domain.Exercise, error) {
	before, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMedia(ctx, exerciseID, name, videoKey, imageKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	// A replaced object key orphans the old object; remove it.
	if s.media != nil {
		if videoKey != "" && before.VideoObjectKey != "" && before.VideoObjectKey != videoKey {
			if err := s.media.DeleteObject(ctx, before.VideoObjectKey); err != nil {
				log.Printf("WARN: delete replaced video object %q: %v", before.VideoObjectKey, err)
			}
		}
		if imageKey != "" && before.ImageObjectKey != "" && before.ImageObjectKey != imageKey {
			if err := s.media.DeleteObject(ctx, before.ImageObjectKey); err != nil {
				log.Printf("WARN: delete replaced image object %q: %v", before.ImageObjectKey, err)
			}
		}
	}

	s.refreshSnapshot(ctx)
	return s.repo.GetByExerciseID(ctx, exerciseID)
}

// RefreshCatalog reloads the snapshot from the database and returns the new
// catalog size.
func (s *catalogService) RefreshCatalog(ctx context.Context) (int, error) {
	if err := s.store.Refresh(ctx); err != nil {
		return 0, err
	}
	return s.store.Snapshot().Len(), nil
}

// MediaFor produces presigned download URLs for a record's media keys.
// Presigning failures degrade to an absent URL; media is decoration, not
// part of the record's correctness.
func (s *catalogService) MediaFor(ctx context.Context, exercise *domain.Exercise) ExerciseMedia {
	var media ExerciseMedia
	if s.media == nil {
		return media
	}

	if exercise.VideoObjectKey != "" {
		url, err := s.media.GeneratePresignedDownloadURL(ctx, exercise.VideoObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Printf("WARN: presign video for exercise %d: %v", exercise.ExerciseID, err)
		} else {
			media.VideoURL = url
		}
	}
	if exercise.ImageObjectKey != "" {
		url, err := s.media.GeneratePresignedDownloadURL(ctx, exercise.ImageObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Printf("WARN: presign image for exercise %d: %v", exercise.ExerciseID, err)
		} else {
			media.ImageURL = url
		}
	}
	return media
}

// MediaUploadURL presigns a PUT for new demo media. kind is "video" or
// "image" and determines the object key layout.
func (s *catalogService) MediaUploadURL(ctx context.Context, exerciseID int64, kind, contentType string) (string, string, error) {
	if s.media == nil {
		return "", "", ErrStorageUnavailable
	}
	if kind != "video" && kind != "image" {
		return "", "", &domain.FieldError{Field: "kind", Reason: "must be video or image"}
	}

	// Verify the record exists before handing out an upload URL.
	if _, err := s.GetExercise(ctx, exerciseID); err != nil {
		return "", "", err
	}

	objectKey := fmt.Sprintf("exercises/%d/%s", exerciseID, kind)
	url, err := s.media.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}
	return url, objectKey, nil
}

func (s *catalogService) refreshSnapshot(ctx context.Context) {
	if err := s.store.Refresh(ctx); err != nil {
		log.Printf("WARN: catalog snapshot refresh failed after write: %v", err)
	}
}
