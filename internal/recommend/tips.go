package recommend

import "github.com/Team2Kim/exerciesRecord-AI/internal/domain"

const maxTips = 5

// tipsFor produces the per-routine coaching tips. Purely table-driven on
// the profile, capped at maxTips.
func tipsFor(profile domain.UserGoalProfile) []string {
	var tips []string

	switch profile.ExperienceLevel {
	case domain.DifficultyBeginner:
		tips = append(tips,
			"Form comes first: prioritise technique over weight.",
			"Warm up before and cool down after every session.",
			"Listen to your body and avoid pushing through pain.",
		)
	case domain.DifficultyAdvanced:
		tips = append(tips,
			"Keep progressing through progressive overload and exercise variation.",
			"Invest in mobility and recovery work to stay injury-free.",
		)
	}

	switch profile.PrimaryGoal {
	case domain.GoalMuscleGain:
		tips = append(tips,
			"Muscle growth needs adequate protein intake and rest.",
			"Lead with compound movements, then finish with isolation work.",
		)
	case domain.GoalFatLoss:
		tips = append(tips,
			"Combine cardio and strength work for effective calorie burn.",
			"Pair the routine with consistent nutrition for best results.",
		)
	}

	if profile.AvailableTimeMinutes < 45 {
		tips = append(tips, "Short sessions work: keep the intensity high and rests tight.")
	} else if profile.AvailableTimeMinutes > 90 {
		tips = append(tips, "With this much time, be thorough with warm-up and cool-down.")
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
