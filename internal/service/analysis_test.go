package service

import (
	"strings"
	"testing"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog() domain.WorkoutLog {
	return domain.WorkoutLog{
		Date: "2026-08-29",
		Memo: "felt strong",
		Exercises: []domain.LoggedExercise{
			{
				Exercise: domain.LoggedExerciseInfo{
					Title:    "Bench Press",
					BodyPart: "chest",
					Tool:     "barbell",
					Muscles:  []string{"pectoralis major", "triceps"},
				},
				ExerciseTime: 30,
				Intensity:    domain.IntensityHigh,
			},
			{
				Exercise: domain.LoggedExerciseInfo{
					Title:    "Squat",
					BodyPart: "legs",
					Tool:     "barbell",
					Muscles:  []string{"quadriceps"},
				},
				ExerciseTime: 40,
				Intensity:    domain.IntensityHigh,
			},
		},
	}
}

func TestAnalyzeWorkoutLog_EmptyLog(t *testing.T) {
	result := AnalyzeWorkoutLog(domain.WorkoutLog{})

	assert.Equal(t, "No exercises recorded.", result.Summary)
	assert.Zero(t, result.Statistics.TotalExercises)
	require.Len(t, result.Recommendations, 1)
}

func TestAnalyzeWorkoutLog_Statistics(t *testing.T) {
	result := AnalyzeWorkoutLog(sampleLog())
	stats := result.Statistics

	assert.Equal(t, 2, stats.TotalExercises)
	assert.Equal(t, 70, stats.TotalTimeMinutes)
	assert.Equal(t, 35.0, stats.AvgTimePerExercise)
	assert.Equal(t, 2, stats.IntensityCounts[domain.IntensityHigh])
	assert.Equal(t, 100.0, stats.IntensityPercentage[domain.IntensityHigh])
	assert.Equal(t, 1, stats.BodyPartCounts["chest"])
	assert.Equal(t, 1, stats.BodyPartCounts["legs"])
	assert.Equal(t, 2, stats.ToolCounts["barbell"])
	assert.Equal(t, []string{"pectoralis major", "quadriceps", "triceps"}, stats.MusclesTargeted)
}

func TestAnalyzeWorkoutLog_HighIntensityWarnings(t *testing.T) {
	result := AnalyzeWorkoutLog(sampleLog())

	// 100% high intensity crosses the 70% threshold.
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "High-intensity")
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeWorkoutLog_Highlights(t *testing.T) {
	result := AnalyzeWorkoutLog(sampleLog())

	// chest and legs tie at 1; alphabetical order wins.
	assert.Equal(t, "chest", result.Highlights.MostFrequentBodyPart)
	assert.Equal(t, "barbell", result.Highlights.MostUsedTool)
	assert.Equal(t, "high", result.Highlights.DominantIntensity)
}

func TestAnalyzeWorkoutLog_SingleBodyPartWarns(t *testing.T) {
	workoutLog := domain.WorkoutLog{
		Exercises: []domain.LoggedExercise{
			{Exercise: domain.LoggedExerciseInfo{Title: "Curl", BodyPart: "arms"}, ExerciseTime: 20, Intensity: domain.IntensityMedium},
			{Exercise: domain.LoggedExerciseInfo{Title: "Hammer Curl", BodyPart: "arms"}, ExerciseTime: 20, Intensity: domain.IntensityMedium},
		},
	}

	result := AnalyzeWorkoutLog(workoutLog)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Only arms") {
			found = true
		}
	}
	assert.True(t, found, "expected a single-body-part warning, got %v", result.Warnings)
}

func TestAnalyzeWorkoutLog_DefaultsForMissingFields(t *testing.T) {
	workoutLog := domain.WorkoutLog{
		Exercises: []domain.LoggedExercise{
			{Exercise: domain.LoggedExerciseInfo{Title: "Mystery Move"}, ExerciseTime: 20},
		},
	}

	result := AnalyzeWorkoutLog(workoutLog)

	assert.Equal(t, 1, result.Statistics.IntensityCounts[domain.IntensityMedium])
	assert.Equal(t, 1, result.Statistics.BodyPartCounts["full body"])
	assert.Equal(t, 1, result.Statistics.ToolCounts["none"])
}

func TestComputeWeeklyMetrics(t *testing.T) {
	logs := []domain.WorkoutLog{
		sampleLog(),
		{}, // rest day, not counted as a workout day
		{
			Exercises: []domain.LoggedExercise{
				{Exercise: domain.LoggedExerciseInfo{Title: "Plank", BodyPart: "core"}, ExerciseTime: 10, Intensity: domain.IntensityLow},
			},
		},
	}

	metrics := computeWeeklyMetrics(logs)

	assert.Equal(t, 2, metrics.WorkoutDays)
	assert.Equal(t, 3, metrics.TotalExercises)
	assert.Equal(t, 80, metrics.TotalTimeMinutes)
	assert.Equal(t, 40.0, metrics.AvgTimePerDay)
	assert.InDelta(t, 66.7, metrics.HighIntensityShare, 0.01)
	assert.Equal(t, 1, metrics.BodyPartFrequency["core"])
}

func TestBasicWeeklySummary(t *testing.T) {
	assert.Equal(t, "No workouts recorded this week.", basicWeeklySummary(WeeklyMetrics{}))

	metrics := computeWeeklyMetrics([]domain.WorkoutLog{sampleLog()})
	summary := basicWeeklySummary(metrics)
	assert.Contains(t, summary, "1 day(s)")
	assert.Contains(t, summary, "High-intensity work dominates")
}
