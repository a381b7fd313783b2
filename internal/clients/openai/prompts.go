package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
)

// Static prompt templates for the journal endpoints. The log payload is
// embedded as JSON; no per-user prompt engineering happens here.

const analysisSystemPrompt = `You are a professional fitness coach. Analyse the user's workout journal:
1. Evaluate intensity and time spent.
2. Assess which muscles were targeted and how effective the session was.
3. Suggest a routine for the next session.
4. Point out risks and improvement points.
Answer in a friendly, encouraging tone.`

const routineSystemPrompt = `You are a professional fitness coach. Based on the user's workout journal, design a workout routine for the requested period. For each day list the exercises with sets, reps and rest, and keep the plan balanced across body parts. Answer as a structured plan.`

const weeklyPatternSystemPrompt = `You are a professional fitness coach. You receive up to seven days of workout journals plus precomputed weekly metrics. Identify training patterns (frequency, intensity trends, body-part balance), call out risks, and recommend how the next week should look.`

// AnalysisMessages builds the chat turns for single-log analysis.
func AnalysisMessages(log domain.WorkoutLog) []Message {
	return []Message{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: "Here is my workout journal:\n" + mustJSON(log)},
	}
}

// RoutineMessages builds the chat turns for routine recommendation over a log.
func RoutineMessages(log domain.WorkoutLog, days, frequency int) []Message {
	user := fmt.Sprintf(
		"Here is my latest workout journal:\n%s\n\nPlease design a %d-day routine with %d sessions per week.",
		mustJSON(log), days, frequency,
	)
	return []Message{
		{Role: "system", Content: routineSystemPrompt},
		{Role: "user", Content: user},
	}
}

// WeeklyPatternMessages builds the chat turns for weekly pattern analysis.
func WeeklyPatternMessages(logs []domain.WorkoutLog, metricsSummary string) []Message {
	var sb strings.Builder
	sb.WriteString("Workout journals for the last week:\n")
	sb.WriteString(mustJSON(logs))
	sb.WriteString("\n\nPrecomputed weekly metrics:\n")
	sb.WriteString(metricsSummary)
	return []Message{
		{Role: "system", Content: weeklyPatternSystemPrompt},
		{Role: "user", Content: sb.String()},
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
