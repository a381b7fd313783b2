package recommend

import (
	"testing"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/stretchr/testify/assert"
)

func baseContext() scoreContext {
	return scoreContext{
		goal:             domain.GoalMuscleGain,
		partialCredit:    0.3,
		remainingMinutes: 60,
		seenThisWeek:     map[int64]bool{},
	}
}

func TestGoalMatch_ExactAndPartial(t *testing.T) {
	sc := baseContext()
	match := makeExercise(1, domain.BodyPartChest, domain.DifficultyBeginner, domain.GoalMuscleGain, 10)
	miss := makeExercise(2, domain.BodyPartChest, domain.DifficultyBeginner, domain.GoalFatLoss, 10)

	assert.Equal(t, 1.0, goalMatch(match, sc))
	assert.Equal(t, 0.3, goalMatch(miss, sc))
}

func TestBalanceScore_DecaysWithPicks(t *testing.T) {
	sc := baseContext()
	assert.Equal(t, 1.0, balanceScore(sc))

	sc.samePartPicks = 1
	assert.Equal(t, 0.5, balanceScore(sc))

	sc.samePartPicks = 2
	assert.InDelta(t, 1.0/3.0, balanceScore(sc), 1e-9)
}

func TestTimeFit_Thresholds(t *testing.T) {
	// At or under half the remaining budget: full score.
	assert.Equal(t, 1.0, timeFit(30, 60))
	assert.Equal(t, 1.0, timeFit(10, 60))

	// Exactly the full budget: the floor of the linear ramp.
	assert.InDelta(t, 0.2, timeFit(60, 60), 1e-9)

	// Midpoint of the ramp.
	assert.InDelta(t, 0.6, timeFit(45, 60), 1e-9)

	// Over budget: excluded.
	assert.Equal(t, 0.0, timeFit(61, 60))
	assert.Equal(t, 0.0, timeFit(10, 0))
}

func TestVarietyScore_ZeroWhenSeen(t *testing.T) {
	sc := baseContext()
	ex := makeExercise(7, domain.BodyPartBack, domain.DifficultyBeginner, domain.GoalMuscleGain, 10)

	assert.Equal(t, 1.0, varietyScore(ex, sc))

	sc.seenThisWeek[7] = true
	assert.Equal(t, 0.0, varietyScore(ex, sc))
}

func TestScore_WeightedSum(t *testing.T) {
	sc := baseContext()
	ex := makeExercise(1, domain.BodyPartChest, domain.DifficultyBeginner, domain.GoalMuscleGain, 10)

	total, fits := score(ex, sc)
	assert.True(t, fits)
	// Perfect on all four axes: 0.4 + 0.3 + 0.2 + 0.1.
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestScore_GoalMatchDominatesOtherAxes(t *testing.T) {
	sc := baseContext()
	match := makeExercise(1, domain.BodyPartChest, domain.DifficultyBeginner, domain.GoalMuscleGain, 10)
	miss := makeExercise(2, domain.BodyPartChest, domain.DifficultyBeginner, domain.GoalFatLoss, 10)

	matchScore, _ := score(match, sc)
	missScore, _ := score(miss, sc)
	assert.Greater(t, matchScore, missScore)
}

func TestScore_OverBudgetDoesNotFit(t *testing.T) {
	sc := baseContext()
	sc.remainingMinutes = 5
	ex := makeExercise(1, domain.BodyPartChest, domain.DifficultyBeginner, domain.GoalMuscleGain, 10)

	total, fits := score(ex, sc)
	assert.False(t, fits)
	assert.Equal(t, 0.0, total)
}
