package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
)

// WorkoutStatistics are the raw numbers derived from one workout log.
type WorkoutStatistics struct {
	TotalExercises      int                        `json:"totalExercises"`
	TotalTimeMinutes    int                        `json:"totalTimeMinutes"`
	AvgTimePerExercise  float64                    `json:"avgTimePerExercise"`
	IntensityCounts     map[domain.Intensity]int   `json:"intensityCounts"`
	IntensityPercentage map[domain.Intensity]float64 `json:"intensityPercentage"`
	BodyPartCounts      map[string]int             `json:"bodyPartCounts"`
	ToolCounts          map[string]int             `json:"toolCounts"`
	MusclesTargeted     []string                   `json:"musclesTargeted"`
}

// WorkoutHighlights are the standout facts of a session.
type WorkoutHighlights struct {
	MostFrequentBodyPart string `json:"mostFrequentBodyPart"`
	MostUsedTool         string `json:"mostUsedTool"`
	DominantIntensity    string `json:"dominantIntensity"`
}

// WorkoutAnalysis is the rule-based evaluation of one workout log. It is
// computed locally and serves as the fallback (and companion) to the LLM
// narrative.
type WorkoutAnalysis struct {
	Summary         string             `json:"summary"`
	Statistics      WorkoutStatistics  `json:"statistics"`
	Insights        []string           `json:"insights"`
	Recommendations []string           `json:"recommendations"`
	Warnings        []string           `json:"warnings"`
	Highlights      WorkoutHighlights  `json:"highlights"`
}

// AnalyzeWorkoutLog derives statistics and coaching observations from a
// single day's log. Pure and deterministic: map-derived output is emitted
// in sorted order.
func AnalyzeWorkoutLog(workoutLog domain.WorkoutLog) *WorkoutAnalysis {
	if len(workoutLog.Exercises) == 0 {
		return &WorkoutAnalysis{
			Summary: "No exercises recorded.",
			Statistics: WorkoutStatistics{
				IntensityCounts:     map[domain.Intensity]int{},
				IntensityPercentage: map[domain.Intensity]float64{},
				BodyPartCounts:      map[string]int{},
				ToolCounts:          map[string]int{},
			},
			Recommendations: []string{"Log a workout to get started!"},
		}
	}

	stats := collectStatistics(workoutLog)
	analysis := &WorkoutAnalysis{
		Summary: fmt.Sprintf("%s: %d exercises performed over %d minutes.",
			dateOr(workoutLog.Date), stats.TotalExercises, stats.TotalTimeMinutes),
		Statistics: stats,
		Highlights: WorkoutHighlights{
			MostFrequentBodyPart: maxKey(stats.BodyPartCounts),
			MostUsedTool:         maxKey(stats.ToolCounts),
			DominantIntensity:    maxIntensityKey(stats.IntensityCounts),
		},
	}

	analyzeIntensity(analysis, stats)
	analyzeSessionTime(analysis, stats)
	analyzeBalance(analysis, stats)
	analyzeMemo(analysis, workoutLog.Memo)

	return analysis
}

func collectStatistics(workoutLog domain.WorkoutLog) WorkoutStatistics {
	stats := WorkoutStatistics{
		TotalExercises:      len(workoutLog.Exercises),
		IntensityCounts:     map[domain.Intensity]int{},
		IntensityPercentage: map[domain.Intensity]float64{},
		BodyPartCounts:      map[string]int{},
		ToolCounts:          map[string]int{},
	}

	muscleSet := map[string]bool{}
	for _, ex := range workoutLog.Exercises {
		stats.TotalTimeMinutes += ex.ExerciseTime

		intensity := ex.Intensity
		if intensity == "" {
			intensity = domain.IntensityMedium
		}
		stats.IntensityCounts[intensity]++

		bodyPart := ex.Exercise.BodyPart
		if bodyPart == "" {
			bodyPart = "full body"
		}
		stats.BodyPartCounts[bodyPart]++

		tool := ex.Exercise.Tool
		if tool == "" {
			tool = "none"
		}
		stats.ToolCounts[tool]++

		for _, m := range ex.Exercise.Muscles {
			muscleSet[m] = true
		}
	}

	stats.AvgTimePerExercise = round1(float64(stats.TotalTimeMinutes) / float64(stats.TotalExercises))

	for intensity, count := range stats.IntensityCounts {
		stats.IntensityPercentage[intensity] = round1(float64(count) / float64(stats.TotalExercises) * 100)
	}

	for m := range muscleSet {
		stats.MusclesTargeted = append(stats.MusclesTargeted, m)
	}
	sort.Strings(stats.MusclesTargeted)

	return stats
}

func analyzeIntensity(a *WorkoutAnalysis, stats WorkoutStatistics) {
	high := stats.IntensityPercentage[domain.IntensityHigh]
	medium := stats.IntensityPercentage[domain.IntensityMedium]
	low := stats.IntensityPercentage[domain.IntensityLow]

	switch {
	case high > 70:
		a.Warnings = append(a.Warnings, fmt.Sprintf("High-intensity work makes up %.1f%% of the session. Allow extra recovery and protein intake.", high))
		a.Recommendations = append(a.Recommendations, "Dial the next session back to medium intensity to avoid overload.")
	case high > 50:
		a.Warnings = append(a.Warnings, fmt.Sprintf("High-intensity work makes up %.1f%% of the session. Stretch well and get enough sleep.", high))
	case low > 70:
		a.Recommendations = append(a.Recommendations, fmt.Sprintf("Low-intensity work makes up %.1f%% of the session. Gradually raise the intensity to keep progressing.", low))
	case medium > 60:
		a.Insights = append(a.Insights, fmt.Sprintf("Medium intensity at %.1f%% shows well-managed effort.", medium))
	}

	if high > 50 {
		a.Recommendations = append(a.Recommendations, "Consider protein supplementation after high-intensity sessions.")
	}
	if stats.TotalTimeMinutes > 90 {
		a.Recommendations = append(a.Recommendations, "After long sessions, rehydrate and replace electrolytes.")
	}
}

func analyzeSessionTime(a *WorkoutAnalysis, stats WorkoutStatistics) {
	avg := stats.AvgTimePerExercise
	switch {
	case avg > 45:
		a.Insights = append(a.Insights, fmt.Sprintf("Averaging %.1f minutes per exercise shows excellent focus.", avg))
	case avg > 30:
		a.Insights = append(a.Insights, fmt.Sprintf("Averaging %.1f minutes per exercise is a solid session pace.", avg))
	case avg > 15:
		a.Recommendations = append(a.Recommendations, fmt.Sprintf("Averaging %.1f minutes per exercise is a bit short; tighten rests and aim for 20-30 minutes.", avg))
	default:
		a.Warnings = append(a.Warnings, fmt.Sprintf("Averaging %.1f minutes per exercise is too short to be effective; extend the working time.", avg))
	}
}

func analyzeBalance(a *WorkoutAnalysis, stats WorkoutStatistics) {
	parts := sortedKeys(stats.BodyPartCounts)
	switch len(parts) {
	case 1:
		a.Warnings = append(a.Warnings, fmt.Sprintf("Only %s was trained today. Include other body parts next time to avoid imbalance.", parts[0]))
	case 2:
		a.Insights = append(a.Insights, fmt.Sprintf("%s and %s were trained in balance.", parts[0], parts[1]))
	default:
		a.Insights = append(a.Insights, fmt.Sprintf("%d body parts were covered, a well-rounded session.", len(parts)))
	}

	if len(stats.ToolCounts) == 1 {
		a.Recommendations = append(a.Recommendations, fmt.Sprintf("Only %s was used today; varying equipment adds new stimulus.", sortedKeys(stats.ToolCounts)[0]))
	}

	if len(stats.MusclesTargeted) > 0 {
		a.Insights = append(a.Insights, "Primary muscles targeted: "+joinComma(stats.MusclesTargeted))
	}
}

func analyzeMemo(a *WorkoutAnalysis, memo string) {
	if memo == "" {
		return
	}
	a.Insights = append(a.Insights, fmt.Sprintf("Workout memo: %q", memo))
}

// --- small helpers ---

func dateOr(date string) string {
	if date == "" {
		return "This session"
	}
	return date
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// maxKey returns the most frequent key, ties broken alphabetically.
func maxKey(m map[string]int) string {
	best, bestCount := "", -1
	for _, k := range sortedKeys(m) {
		if m[k] > bestCount {
			best, bestCount = k, m[k]
		}
	}
	return best
}

func maxIntensityKey(m map[domain.Intensity]int) string {
	// Fixed check order keeps ties deterministic.
	order := []domain.Intensity{domain.IntensityHigh, domain.IntensityMedium, domain.IntensityLow}
	best, bestCount := "", -1
	for _, k := range order {
		if m[k] > bestCount {
			best, bestCount = string(k), m[k]
		}
	}
	return best
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
