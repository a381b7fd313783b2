package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Team2Kim/exerciesRecord-AI/internal/clients/openai"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLLMServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + reply + `"}}]}`))
	}))
}

func TestAnalyze_UsesLLMWhenAvailable(t *testing.T) {
	server := newLLMServer(t, "Great workout!")
	defer server.Close()

	llm := openai.NewClient("test-key", "gpt-4o-mini", 5*time.Second)
	llm.SetBaseURL(server.URL)
	svc := NewJournalService(llm)

	result, err := svc.Analyze(context.Background(), sampleLog(), "")
	require.NoError(t, err)
	assert.Equal(t, "llm", result.Source)
	assert.Equal(t, "Great workout!", result.Narrative)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, 2, result.Analysis.Statistics.TotalExercises)
}

func TestAnalyze_FallsBackWithoutAPIKey(t *testing.T) {
	svc := NewJournalService(openai.NewClient("", "gpt-4o-mini", 5*time.Second))

	result, err := svc.Analyze(context.Background(), sampleLog(), "")
	require.NoError(t, err)
	assert.Equal(t, "basic", result.Source)
	assert.Empty(t, result.Narrative)
	require.NotNil(t, result.Analysis)
}

func TestAnalyze_FallsBackOnLLMFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	llm := openai.NewClient("test-key", "gpt-4o-mini", 5*time.Second)
	llm.SetBaseURL(server.URL)
	svc := NewJournalService(llm)

	result, err := svc.Analyze(context.Background(), sampleLog(), "")
	require.NoError(t, err)
	assert.Equal(t, "basic", result.Source)
}

func TestRecommendRoutine_RequiresLLM(t *testing.T) {
	svc := NewJournalService(openai.NewClient("", "gpt-4o-mini", 5*time.Second))

	_, err := svc.RecommendRoutine(context.Background(), sampleLog(), 7, 3, "")
	assert.ErrorIs(t, err, ErrLLMUnavailable)
}

func TestRecommendRoutine_DefaultsDaysAndFrequency(t *testing.T) {
	server := newLLMServer(t, "Day 1: ...")
	defer server.Close()

	llm := openai.NewClient("test-key", "gpt-4o-mini", 5*time.Second)
	llm.SetBaseURL(server.URL)
	svc := NewJournalService(llm)

	plan, err := svc.RecommendRoutine(context.Background(), sampleLog(), 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 7, plan.Days)
	assert.Equal(t, 3, plan.Frequency)
	assert.Equal(t, "Day 1: ...", plan.Plan)
}

func TestAnalyzeWeeklyPattern_TrimsToSevenLogs(t *testing.T) {
	svc := NewJournalService(openai.NewClient("", "gpt-4o-mini", 5*time.Second))

	logs := make([]domain.WorkoutLog, 10)
	for i := range logs {
		logs[i] = sampleLog()
	}

	result, err := svc.AnalyzeWeeklyPattern(context.Background(), logs, "")
	require.NoError(t, err)
	assert.Equal(t, 7, result.LogsAnalyzed)
	assert.Equal(t, "basic", result.Source)
	assert.Equal(t, 7, result.Metrics.WorkoutDays)
	assert.NotEmpty(t, result.PatternSummary)
}

func TestAnalyzeWeeklyPattern_UsesLLMWhenAvailable(t *testing.T) {
	server := newLLMServer(t, "Strong week of training.")
	defer server.Close()

	llm := openai.NewClient("test-key", "gpt-4o-mini", 5*time.Second)
	llm.SetBaseURL(server.URL)
	svc := NewJournalService(llm)

	result, err := svc.AnalyzeWeeklyPattern(context.Background(), []domain.WorkoutLog{sampleLog()}, "")
	require.NoError(t, err)
	assert.Equal(t, "llm", result.Source)
	assert.Equal(t, "Strong week of training.", result.PatternSummary)
	assert.Equal(t, 1, result.Metrics.WorkoutDays)
}
