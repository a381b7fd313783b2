package videoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		page := Page{
			Content: []Video{
				{
					ExerciseID:    101,
					Title:         "Push Up Tutorial",
					VideoURL:      "https://videos.example.com/101",
					LengthSeconds: 95,
					Tool:          "bodyweight",
				},
			},
			TotalPages:    1,
			TotalElements: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))
}

func TestSearch_DecodesProviderResponse(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, time.Hour)

	page, err := client.Search(context.Background(), SearchParams{Keyword: "push up"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(101), page.Content[0].ExerciseID)
	assert.Equal(t, "Push Up Tutorial", page.Content[0].Title)
	assert.Equal(t, 95, page.Content[0].LengthSeconds)
}

func TestSearch_CachesByFullURL(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, time.Hour)
	ctx := context.Background()

	_, err := client.Search(ctx, SearchParams{Keyword: "push up"})
	require.NoError(t, err)
	_, err = client.Search(ctx, SearchParams{Keyword: "push up"})
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "identical searches must be served from cache")

	// A different query misses the cache.
	_, err = client.Search(ctx, SearchParams{Keyword: "squat"})
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestSearch_ExpiredEntryRefetches(t *testing.T) {
	hits := 0
	server := newTestServer(t, &hits)
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, time.Nanosecond)
	ctx := context.Background()

	_, err := client.Search(ctx, SearchParams{Keyword: "push up"})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = client.Search(ctx, SearchParams{Keyword: "push up"})
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestSearch_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, time.Hour)

	_, err := client.Search(context.Background(), SearchParams{Keyword: "push up"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSearchByMuscle_BuildsRepeatedParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/exercises/muscles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Page{})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, time.Hour)

	_, err := client.SearchByMuscle(context.Background(), []string{"biceps", "triceps"}, 0, 5)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "muscles=biceps")
	assert.Contains(t, gotQuery, "muscles=triceps")
}
