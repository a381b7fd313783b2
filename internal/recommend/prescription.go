package recommend

import (
	"fmt"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
)

// Fixed sets/reps/rest tables, keyed by goal and experience level. Cardio
// and stretching are timed, not repped, so they bypass the tables.

var repRanges = map[domain.Goal]map[domain.Difficulty]string{
	domain.GoalMuscleGain: {
		domain.DifficultyBeginner:     "8-12",
		domain.DifficultyIntermediate: "8-12",
		domain.DifficultyAdvanced:     "6-12",
	},
	domain.GoalFatLoss: {
		domain.DifficultyBeginner:     "12-15",
		domain.DifficultyIntermediate: "12-18",
		domain.DifficultyAdvanced:     "15-20",
	},
	domain.GoalFitness: {
		domain.DifficultyBeginner:     "10-15",
		domain.DifficultyIntermediate: "12-18",
		domain.DifficultyAdvanced:     "15-25",
	},
}

var restTimes = map[domain.Goal]string{
	domain.GoalMuscleGain: "2-3 min",
	domain.GoalFatLoss:    "1-2 min",
	domain.GoalFitness:    "1-2 min",
}

var weightGuidance = map[domain.Difficulty]string{
	domain.DifficultyBeginner:     "start light, focus on form",
	domain.DifficultyIntermediate: "70-80% of 1RM",
	domain.DifficultyAdvanced:     "75-85% of 1RM",
}

// prescriptionFor builds the templated sets/reps/rest for a selected
// exercise given the user's goal and experience level.
func prescriptionFor(ex domain.Exercise, goal domain.Goal, level domain.Difficulty) domain.Prescription {
	switch ex.Category {
	case domain.CategoryCardio:
		return domain.Prescription{
			Sets: 1,
			Reps: fmt.Sprintf("%d min", ex.Duration),
			Rest: "none",
		}
	case domain.CategoryStretch:
		return domain.Prescription{
			Sets: 1,
			Reps: "30 sec hold",
			Rest: "10 sec",
		}
	}

	sets := 3
	if level == domain.DifficultyAdvanced {
		sets = 4
	}

	p := domain.Prescription{
		Sets: sets,
		Reps: repRanges[goal][level],
		Rest: restTimes[goal],
	}
	if ex.Category == domain.CategoryWeight {
		p.Weight = weightGuidance[level]
	}
	return p
}
