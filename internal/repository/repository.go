package repository

import (
	"context"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateID  = RepositoryError("duplicate catalog identifier")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ListOptions narrows and pages a catalog listing.
type ListOptions struct {
	Page     int    // 1-based
	PageSize int
	Search   string // matches against the exercise name
}

// ExerciseRepository defines the interface for catalog persistence.
// The recommendation path only uses All: it reads the whole catalog into an
// immutable snapshot and never writes.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByExerciseID(ctx context.Context, exerciseID int64) (*domain.Exercise, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Exercise, int64, error)
	All(ctx context.Context) ([]domain.Exercise, error)
	UpdateMedia(ctx context.Context, exerciseID int64, name, videoKey, imageKey string) error
	Count(ctx context.Context) (int64, error)
}
