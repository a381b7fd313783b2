package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/openai"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
)

const maxWeeklyLogs = 7

// ErrLLMUnavailable is returned by operations that have no rule-based
// fallback when the LLM client is not configured.
var ErrLLMUnavailable = errors.New("llm provider is not configured")

// JournalAnalysis is the response of the analyze operation. Source
// indicates whether the narrative came from the LLM or from the local
// rule-based analyzer.
type JournalAnalysis struct {
	Source    string           `json:"source"` // "llm" or "basic"
	Narrative string           `json:"narrative,omitempty"`
	Analysis  *WorkoutAnalysis `json:"analysis"`
}

// RoutinePlan is the response of the LLM routine recommendation.
type RoutinePlan struct {
	Source    string `json:"source"`
	Days      int    `json:"days"`
	Frequency int    `json:"frequency"`
	Plan      string `json:"plan"`
}

// WeeklyPattern is the response of the weekly pattern operation.
type WeeklyPattern struct {
	Source         string        `json:"source"`
	LogsAnalyzed   int           `json:"logsAnalyzed"`
	Metrics        WeeklyMetrics `json:"metrics"`
	PatternSummary string        `json:"patternSummary"`
}

// WeeklyMetrics are aggregates over up to seven days of logs, computed
// locally and also handed to the LLM as grounding.
type WeeklyMetrics struct {
	WorkoutDays        int            `json:"workoutDays"`
	TotalExercises     int            `json:"totalExercises"`
	TotalTimeMinutes   int            `json:"totalTimeMinutes"`
	AvgTimePerDay      float64        `json:"avgTimePerDay"`
	BodyPartFrequency  map[string]int `json:"bodyPartFrequency"`
	HighIntensityShare float64        `json:"highIntensityShare"`
}

// JournalService forwards workout journals to the LLM and degrades to the
// rule-based analyzer when the LLM is unconfigured or fails.
type JournalService interface {
	Analyze(ctx context.Context, workoutLog domain.WorkoutLog, model string) (*JournalAnalysis, error)
	RecommendRoutine(ctx context.Context, workoutLog domain.WorkoutLog, days, frequency int, model string) (*RoutinePlan, error)
	AnalyzeWeeklyPattern(ctx context.Context, logs []domain.WorkoutLog, model string) (*WeeklyPattern, error)
}

type journalService struct {
	llm *openai.Client
}

func NewJournalService(llm *openai.Client) JournalService {
	return &journalService{llm: llm}
}

func (s *journalService) Analyze(ctx context.Context, workoutLog domain.WorkoutLog, model string) (*JournalAnalysis, error) {
	basic := AnalyzeWorkoutLog(workoutLog)

	if !s.llm.Available() {
		return &JournalAnalysis{Source: "basic", Analysis: basic}, nil
	}

	narrative, err := s.llm.Chat(ctx, model, openai.AnalysisMessages(workoutLog), 0.7, 1024)
	if err != nil {
		log.Printf("WARN: LLM analysis failed, falling back to basic analyzer: %v", err)
		return &JournalAnalysis{Source: "basic", Analysis: basic}, nil
	}

	return &JournalAnalysis{Source: "llm", Narrative: narrative, Analysis: basic}, nil
}

func (s *journalService) RecommendRoutine(ctx context.Context, workoutLog domain.WorkoutLog, days, frequency int, model string) (*RoutinePlan, error) {
	if days <= 0 {
		days = 7
	}
	if frequency <= 0 {
		frequency = 3
	}

	if !s.llm.Available() {
		return nil, ErrLLMUnavailable
	}

	plan, err := s.llm.Chat(ctx, model, openai.RoutineMessages(workoutLog, days, frequency), 0.7, 2048)
	if err != nil {
		return nil, fmt.Errorf("recommend routine: %w", err)
	}

	return &RoutinePlan{Source: "llm", Days: days, Frequency: frequency, Plan: plan}, nil
}

func (s *journalService) AnalyzeWeeklyPattern(ctx context.Context, logs []domain.WorkoutLog, model string) (*WeeklyPattern, error) {
	if len(logs) > maxWeeklyLogs {
		logs = logs[:maxWeeklyLogs]
	}

	metrics := computeWeeklyMetrics(logs)
	result := &WeeklyPattern{
		LogsAnalyzed: len(logs),
		Metrics:      metrics,
	}

	if !s.llm.Available() {
		result.Source = "basic"
		result.PatternSummary = basicWeeklySummary(metrics)
		return result, nil
	}

	summary, err := s.llm.Chat(ctx, model, openai.WeeklyPatternMessages(logs, formatWeeklyMetrics(metrics)), 0.7, 2048)
	if err != nil {
		log.Printf("WARN: LLM weekly pattern failed, falling back to basic summary: %v", err)
		result.Source = "basic"
		result.PatternSummary = basicWeeklySummary(metrics)
		return result, nil
	}

	result.Source = "llm"
	result.PatternSummary = summary
	return result, nil
}

func computeWeeklyMetrics(logs []domain.WorkoutLog) WeeklyMetrics {
	metrics := WeeklyMetrics{
		BodyPartFrequency: map[string]int{},
	}

	highCount, totalCount := 0, 0
	for _, workoutLog := range logs {
		if len(workoutLog.Exercises) == 0 {
			continue
		}
		metrics.WorkoutDays++
		for _, ex := range workoutLog.Exercises {
			metrics.TotalExercises++
			metrics.TotalTimeMinutes += ex.ExerciseTime
			totalCount++
			if ex.Intensity == domain.IntensityHigh {
				highCount++
			}
			part := ex.Exercise.BodyPart
			if part == "" {
				part = "full body"
			}
			metrics.BodyPartFrequency[part]++
		}
	}

	if metrics.WorkoutDays > 0 {
		metrics.AvgTimePerDay = round1(float64(metrics.TotalTimeMinutes) / float64(metrics.WorkoutDays))
	}
	if totalCount > 0 {
		metrics.HighIntensityShare = round1(float64(highCount) / float64(totalCount) * 100)
	}

	return metrics
}

func formatWeeklyMetrics(m WeeklyMetrics) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Workout days: %d\n", m.WorkoutDays)
	fmt.Fprintf(&sb, "Total exercises: %d\n", m.TotalExercises)
	fmt.Fprintf(&sb, "Total time: %d minutes (avg %.1f per day)\n", m.TotalTimeMinutes, m.AvgTimePerDay)
	fmt.Fprintf(&sb, "High-intensity share: %.1f%%\n", m.HighIntensityShare)
	sb.WriteString("Body part frequency:\n")
	for _, part := range sortedKeys(m.BodyPartFrequency) {
		fmt.Fprintf(&sb, "  %s: %d\n", part, m.BodyPartFrequency[part])
	}
	return sb.String()
}

func basicWeeklySummary(m WeeklyMetrics) string {
	if m.WorkoutDays == 0 {
		return "No workouts recorded this week."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You trained on %d day(s) this week, %d exercises over %d minutes.",
		m.WorkoutDays, m.TotalExercises, m.TotalTimeMinutes)

	parts := sortedKeys(m.BodyPartFrequency)
	if top := maxKey(m.BodyPartFrequency); top != "" && len(parts) > 1 {
		fmt.Fprintf(&sb, " %s was trained most often.", top)
	} else if len(parts) == 1 {
		fmt.Fprintf(&sb, " Only %s was trained; spread the load across more body parts.", parts[0])
	}

	switch {
	case m.HighIntensityShare > 60:
		sb.WriteString(" High-intensity work dominates; schedule deliberate recovery days.")
	case m.HighIntensityShare < 10 && m.TotalExercises > 0:
		sb.WriteString(" Intensity stayed low; add some harder sets if progress has stalled.")
	}

	return sb.String()
}
