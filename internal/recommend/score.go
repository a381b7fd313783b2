package recommend

import "github.com/Team2Kim/exerciesRecord-AI/internal/domain"

// Sub-score weights. They sum to 1 so the total stays in [0,1].
const (
	weightGoalMatch = 0.4
	weightBalance   = 0.3
	weightTimeFit   = 0.2
	weightVariety   = 0.1
)

// scoreContext is the running state a candidate is scored against. It is
// rebuilt after every pick so balance and variety always reflect the current
// selection, as required by the greedy loop.
type scoreContext struct {
	goal             domain.Goal
	partialCredit    float64 // goal_match credit for a non-matching goal
	remainingMinutes int
	samePartPicks    int            // exercises already picked for this body part today
	seenThisWeek     map[int64]bool // catalog IDs selected on earlier days (or earlier today)
}

// goalMatch is 1.0 for an exact goal match and the configured partial
// credit otherwise. Every non-matching goal earns the same credit; a finer
// cross-goal table would be possible but needs no more than this.
func goalMatch(ex domain.Exercise, sc scoreContext) float64 {
	if ex.TargetGoal == sc.goal {
		return 1.0
	}
	return sc.partialCredit
}

// balanceScore decays with the number of same-body-part exercises already
// selected today: 1, 1/2, 1/3, ... Strictly monotone decreasing, so the
// first pick for a body part always scores 1.0.
func balanceScore(sc scoreContext) float64 {
	return 1.0 / float64(1+sc.samePartPicks)
}

// timeFit scores how well a duration fits the remaining day budget:
// 1.0 up to half the remaining budget, then linearly down to 0.2 at the
// full budget. Anything over the budget scores 0 and is excluded from the
// normal selection path.
func timeFit(duration, remaining int) float64 {
	if remaining <= 0 || duration > remaining {
		return 0
	}
	half := float64(remaining) / 2
	d := float64(duration)
	if d <= half {
		return 1.0
	}
	return 1.0 - 0.8*(d-half)/(float64(remaining)-half)
}

// varietyScore is 1.0 the first time an exercise appears in the weekly
// routine and 0 afterwards.
func varietyScore(ex domain.Exercise, sc scoreContext) float64 {
	if sc.seenThisWeek[ex.ExerciseID] {
		return 0
	}
	return 1.0
}

// score computes the weighted suitability of a candidate. fits reports
// whether the exercise can be placed in the remaining budget at all; when
// false the score is meaningless and the candidate must be excluded (the
// time-constrained fallback handles the case where nothing fits).
func score(ex domain.Exercise, sc scoreContext) (total float64, fits bool) {
	tf := timeFit(ex.Duration, sc.remainingMinutes)
	if tf == 0 {
		return 0, false
	}
	total = weightGoalMatch*goalMatch(ex, sc) +
		weightBalance*balanceScore(sc) +
		weightTimeFit*tf +
		weightVariety*varietyScore(ex, sc)
	return total, true
}
