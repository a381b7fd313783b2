// Package catalog holds the in-memory exercise catalog snapshot.
//
// The recommendation core never touches the database: it reads from an
// immutable Snapshot loaded once at startup and replaced wholesale on
// refresh. In-flight requests keep the snapshot pointer they started with,
// so a refresh never exposes a half-updated catalog.
package catalog

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/repository"
)

var ErrEmptyCatalog = errors.New("catalog snapshot is empty")

// Snapshot is an immutable view of the exercise catalog, ordered by catalog
// identifier. Callers must not mutate the returned slices.
type Snapshot struct {
	exercises []domain.Exercise
}

// NewSnapshot copies and orders the given records into a snapshot.
func NewSnapshot(exercises []domain.Exercise) *Snapshot {
	owned := make([]domain.Exercise, len(exercises))
	copy(owned, exercises)
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].ExerciseID < owned[j].ExerciseID
	})
	return &Snapshot{exercises: owned}
}

// Exercises returns all records in ascending catalog-identifier order.
func (s *Snapshot) Exercises() []domain.Exercise {
	return s.exercises
}

// Len returns the catalog size.
func (s *Snapshot) Len() int {
	return len(s.exercises)
}

// Store keeps the current snapshot and swaps it atomically on refresh.
type Store struct {
	repo    repository.ExerciseRepository
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store bound to the given repository. The store is
// unusable until the first Refresh succeeds.
func NewStore(repo repository.ExerciseRepository) *Store {
	s := &Store{repo: repo}
	s.current.Store(NewSnapshot(nil))
	return s
}

// Refresh loads the full catalog and swaps it in. On error the previous
// snapshot stays active.
func (s *Store) Refresh(ctx context.Context) error {
	exercises, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	s.current.Store(NewSnapshot(exercises))
	return nil
}

// Snapshot returns the current catalog view.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}
