package service

import (
	"context"
	"log"
	"time"

	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/videoapi"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/recommend"

	"github.com/google/uuid"
)

// RoutineService exposes routine building to the API layer.
type RoutineService interface {
	// BuildRoutine assembles a weekly routine for the profile. With enrich
	// set, each selected exercise is annotated with video metadata from the
	// external provider; enrichment failures degrade silently.
	BuildRoutine(ctx context.Context, profile domain.UserGoalProfile, enrich bool) (*domain.WeeklyRoutine, error)
}

type routineService struct {
	store     *catalog.Store
	assembler *recommend.Assembler
	videos    *videoapi.Client
}

// NewRoutineService creates a routine service. videos may be nil when no
// video provider is configured; enrichment is then a no-op.
func NewRoutineService(store *catalog.Store, assembler *recommend.Assembler, videos *videoapi.Client) RoutineService {
	return &routineService{store: store, assembler: assembler, videos: videos}
}

func (s *routineService) BuildRoutine(ctx context.Context, profile domain.UserGoalProfile, enrich bool) (*domain.WeeklyRoutine, error) {
	// The assembler works on whatever snapshot is current when the request
	// starts; a concurrent catalog refresh never affects this build.
	snap := s.store.Snapshot()
	if snap.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	routine, err := s.assembler.Build(snap, profile)
	if err != nil {
		return nil, err
	}

	// Identity and timestamp are stamped here, outside the assembler, so
	// the assembly itself stays a deterministic pure function.
	routine.RoutineID = uuid.NewString()
	routine.CreatedAt = time.Now().UTC()

	if enrich && s.videos != nil {
		s.enrich(ctx, routine)
	}

	return routine, nil
}

// enrich looks up one video per selected exercise by name. Lookups are
// memoized inside the client, so repeated exercises across the week cost a
// single provider call.
func (s *routineService) enrich(ctx context.Context, routine *domain.WeeklyRoutine) {
	for di := range routine.Days {
		day := &routine.Days[di]
		for ei := range day.Exercises {
			ex := &day.Exercises[ei]

			page, err := s.videos.Search(ctx, videoapi.SearchParams{Keyword: ex.Name, Size: 1})
			if err != nil {
				log.Printf("WARN: video enrichment for %q failed: %v", ex.Name, err)
				continue
			}
			if len(page.Content) == 0 {
				continue
			}

			hit := page.Content[0]
			ex.Video = &domain.VideoInfo{
				VideoID:     hit.ExerciseID,
				Title:       hit.Title,
				URL:         hit.VideoURL,
				ImageURL:    hit.ImageURL,
				LengthSecs:  hit.LengthSeconds,
				TargetGroup: hit.TargetGroup,
			}
		}
	}
}
