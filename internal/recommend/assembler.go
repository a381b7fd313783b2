package recommend

import (
	"fmt"
	"math"

	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
)

// Options are the assembler tuning constants. All have sensible defaults;
// deployments override them through the recommend section of the config.
type Options struct {
	GoalPartialCredit float64 // goal_match credit for a non-matching target goal
	MinCandidates     int     // per body part, below which the goal filter relaxes
	MaxPerBodyPart    int     // exercise cap per body part per day
	MaxPerDay         int     // exercise cap per day
	WarmUpMinutes     int
	CoolDownMinutes   int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		GoalPartialCredit: 0.3,
		MinCandidates:     3,
		MaxPerBodyPart:    2,
		MaxPerDay:         6,
		WarmUpMinutes:     10,
		CoolDownMinutes:   10,
	}
}

// phase tracks the assembler's progress through a build. The machine is
// strictly linear: Initializing -> SelectingDay(0..n-1) -> Finalizing -> Done.
type phase int

const (
	phaseInitializing phase = iota
	phaseSelectingDay
	phaseFinalizing
	phaseDone
)

// Assembler builds weekly routines from a catalog snapshot. It is stateless
// between calls and safe for concurrent use; all per-request state lives in
// the build struct.
type Assembler struct {
	opts Options
}

func NewAssembler(opts Options) *Assembler {
	if opts.GoalPartialCredit <= 0 || opts.GoalPartialCredit >= 1 {
		opts.GoalPartialCredit = DefaultOptions().GoalPartialCredit
	}
	if opts.MinCandidates < 1 {
		opts.MinCandidates = DefaultOptions().MinCandidates
	}
	if opts.MaxPerBodyPart < 1 {
		opts.MaxPerBodyPart = DefaultOptions().MaxPerBodyPart
	}
	if opts.MaxPerDay < 1 {
		opts.MaxPerDay = DefaultOptions().MaxPerDay
	}
	return &Assembler{opts: opts}
}

// build is the per-request state of one assembly run.
type build struct {
	phase        phase
	profile      domain.UserGoalProfile
	exercises    []domain.Exercise
	days         []domain.RoutineDay
	seenThisWeek map[int64]bool
}

// Build validates the profile and assembles the full weekly routine.
// The output is deterministic: an identical profile over an unchanged
// snapshot always yields an identical routine. The only error is an invalid
// profile; data sparsity degrades the output (shorter days, notes, the
// time-constrained flag) instead of failing.
func (a *Assembler) Build(snap *catalog.Snapshot, profile domain.UserGoalProfile) (*domain.WeeklyRoutine, error) {
	b := &build{
		phase:        phaseInitializing,
		profile:      profile,
		exercises:    snap.Exercises(),
		seenThisWeek: make(map[int64]bool),
	}

	// Initializing: validation is the only failure point of the whole run.
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	b.phase = phaseSelectingDay

	for day := 0; day < profile.WeeklyFrequency; day++ {
		b.days = append(b.days, a.selectDay(b, day))
	}

	b.phase = phaseFinalizing
	routine := a.finalize(b)
	b.phase = phaseDone
	return routine, nil
}

// selectDay runs filtering and greedy scored selection for one day.
func (a *Assembler) selectDay(b *build, dayIndex int) domain.RoutineDay {
	targets := TargetsFor(b.profile.SplitType, dayIndex)
	candidates := Candidates(b.exercises, targets, b.profile.ExperienceLevel, b.profile.PrimaryGoal, a.opts.MinCandidates)

	// Warm-up and cool-down are carved out of the budget only when the
	// session is long enough to afford them.
	warmUp, coolDown := a.opts.WarmUpMinutes, a.opts.CoolDownMinutes
	budget := b.profile.AvailableTimeMinutes - warmUp - coolDown
	if budget <= 0 {
		warmUp, coolDown = 0, 0
		budget = b.profile.AvailableTimeMinutes
	}

	day := domain.RoutineDay{
		Day:             dayIndex + 1,
		TargetBodyParts: targets,
	}

	remaining := budget
	picked := make(map[int64]bool)

	for _, part := range targets {
		pool := candidates[part]
		if len(pool) == 0 {
			day.Notes = append(day.Notes, fmt.Sprintf("no catalog match for %s at this difficulty", part))
			continue
		}

		partPicks := 0
		for partPicks < a.opts.MaxPerBodyPart && len(day.Exercises) < a.opts.MaxPerDay {
			sc := scoreContext{
				goal:             b.profile.PrimaryGoal,
				partialCredit:    a.opts.GoalPartialCredit,
				remainingMinutes: remaining,
				samePartPicks:    partPicks,
				seenThisWeek:     b.seenThisWeek,
			}

			best, ok := pickBest(pool, picked, sc)
			if !ok {
				// Nothing fits the remaining budget. If this body part has
				// no pick yet, take the shortest candidate anyway and flag
				// the day rather than dropping the part.
				if partPicks == 0 {
					if fallback, found := shortestUnpicked(pool, picked); found {
						a.take(b, &day, fallback, picked, &remaining)
						day.TimeConstrained = true
					}
				}
				break
			}

			a.take(b, &day, best, picked, &remaining)
			partPicks++
		}
	}

	for _, ex := range day.Exercises {
		day.Duration += ex.Duration
	}
	if len(day.Exercises) > 0 {
		day.Duration += warmUp + coolDown
	}

	return day
}

// take appends an exercise to the day and updates all running state.
func (a *Assembler) take(b *build, day *domain.RoutineDay, ex domain.Exercise, picked map[int64]bool, remaining *int) {
	day.Exercises = append(day.Exercises, domain.RoutineExercise{
		ExerciseID:   ex.ExerciseID,
		Name:         ex.Name,
		BodyPart:     ex.BodyPart,
		Category:     ex.Category,
		Difficulty:   ex.Difficulty,
		Duration:     ex.Duration,
		Equipment:    ex.Equipment,
		Prescription: prescriptionFor(ex, b.profile.PrimaryGoal, b.profile.ExperienceLevel),
	})
	picked[ex.ExerciseID] = true
	b.seenThisWeek[ex.ExerciseID] = true
	*remaining -= ex.Duration
	if *remaining < 0 {
		*remaining = 0
	}
}

// pickBest returns the highest-scoring unchosen candidate that fits the
// remaining budget. Candidates arrive in ascending catalog-identifier order
// and only a strictly greater score displaces the current best, which is
// exactly the "ties break by ascending identifier" rule.
func pickBest(pool []domain.Exercise, picked map[int64]bool, sc scoreContext) (domain.Exercise, bool) {
	var best domain.Exercise
	bestScore := -1.0
	found := false

	for _, ex := range pool {
		if picked[ex.ExerciseID] {
			continue
		}
		s, fits := score(ex, sc)
		if !fits {
			continue
		}
		if s > bestScore {
			best, bestScore, found = ex, s, true
		}
	}
	return best, found
}

// shortestUnpicked returns the lowest-duration unchosen candidate, ties by
// ascending catalog identifier.
func shortestUnpicked(pool []domain.Exercise, picked map[int64]bool) (domain.Exercise, bool) {
	var best domain.Exercise
	found := false
	for _, ex := range pool {
		if picked[ex.ExerciseID] {
			continue
		}
		if !found || ex.Duration < best.Duration {
			best, found = ex, true
		}
	}
	return best, found
}

// finalize computes the aggregate fields over the assembled days.
func (a *Assembler) finalize(b *build) *domain.WeeklyRoutine {
	routine := &domain.WeeklyRoutine{
		Days: b.days,
		Tips: tipsFor(b.profile),
	}

	totalRank, totalExercises := 0, 0
	for _, day := range b.days {
		routine.TotalDuration += day.Duration
		for _, ex := range day.Exercises {
			totalRank += ex.Difficulty.Rank()
			totalExercises++
		}
	}

	if totalExercises == 0 {
		routine.DifficultyScore = 3.0
	} else {
		// Mean rank in [1,3] mapped onto the 1-5 display scale.
		mean := float64(totalRank) / float64(totalExercises)
		routine.DifficultyScore = math.Round((1+(mean-1)*2)*10) / 10
	}

	return routine
}
