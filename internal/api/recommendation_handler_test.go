package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Team2Kim/exerciesRecord-AI/internal/catalog"
	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoutineService returns a canned routine or error and records the
// profile and enrich flag it was called with.
type stubRoutineService struct {
	routine    *domain.WeeklyRoutine
	err        error
	gotProfile domain.UserGoalProfile
	gotEnrich  bool
}

func (s *stubRoutineService) BuildRoutine(ctx context.Context, profile domain.UserGoalProfile, enrich bool) (*domain.WeeklyRoutine, error) {
	s.gotProfile = profile
	s.gotEnrich = enrich
	if s.err != nil {
		return nil, s.err
	}
	return s.routine, nil
}

func newRecommendRouter(stub *stubRoutineService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewRecommendationHandler(stub)
	router.POST("/api/v1/recommendations", handler.RecommendRoutine)
	return router
}

const profileJSON = `{
	"weeklyFrequency": 3,
	"splitType": "three_way",
	"primaryGoal": "muscle_gain",
	"experienceLevel": "beginner",
	"availableTimeMinutes": 60
}`

func TestRecommendRoutine_OK(t *testing.T) {
	stub := &stubRoutineService{routine: &domain.WeeklyRoutine{RoutineID: "r-1"}}
	router := newRecommendRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations?enrich=true", strings.NewReader(profileJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.gotEnrich)
	assert.Equal(t, domain.SplitThreeWay, stub.gotProfile.SplitType)
	assert.Equal(t, 3, stub.gotProfile.WeeklyFrequency)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "r-1", body["routineId"])
}

func TestRecommendRoutine_ValidationErrorIs400(t *testing.T) {
	stub := &stubRoutineService{err: &domain.FieldError{Field: "splitType", Reason: "unknown"}}
	router := newRecommendRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(profileJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "splitType")
}

func TestRecommendRoutine_EmptyCatalogIs503(t *testing.T) {
	stub := &stubRoutineService{err: catalog.ErrEmptyCatalog}
	router := newRecommendRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(profileJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRecommendRoutine_MalformedBodyIs400(t *testing.T) {
	stub := &stubRoutineService{}
	router := newRecommendRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"weeklyFrequency": "three"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
