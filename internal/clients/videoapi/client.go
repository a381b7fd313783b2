// Package videoapi is the client for the external exercise-video search
// provider. Responses are memoized with a TTL so repeated searches (the
// enrichment path fires one per routine exercise) do not hammer the
// provider.
package videoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Video is one search hit, reshaped from the provider's response.
type Video struct {
	ExerciseID    int64  `json:"exerciseId"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	VideoURL      string `json:"videoUrl"`
	ImageURL      string `json:"imageUrl,omitempty"`
	LengthSeconds int    `json:"videoLengthSeconds,omitempty"`
	TargetGroup   string `json:"targetGroup,omitempty"`
	Tool          string `json:"exerciseTool,omitempty"`
	FitnessFactor string `json:"fitnessFactorName,omitempty"`
}

// Page is one page of search results.
type Page struct {
	Content       []Video `json:"content"`
	TotalPages    int     `json:"totalPages"`
	TotalElements int64   `json:"totalElements"`
}

// SearchParams are the provider's supported search filters.
type SearchParams struct {
	Keyword       string
	TargetGroup   string
	FitnessFactor string
	Tool          string
	Page          int
	Size          int
}

type cacheEntry struct {
	page      *Page
	expiresAt time.Time
}

// Client talks to the provider with TTL-memoized responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	ttl        time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewClient builds a client for the given base URL.
func NewClient(baseURL string, timeout, cacheTTL time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		ttl:        cacheTTL,
		cache:      make(map[string]cacheEntry),
	}
}

// Search queries the provider with the given filters.
func (c *Client) Search(ctx context.Context, params SearchParams) (*Page, error) {
	if params.Size <= 0 {
		params.Size = 10
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("size", strconv.Itoa(params.Size))
	if params.Keyword != "" {
		values.Set("keyword", params.Keyword)
	}
	if params.TargetGroup != "" {
		values.Set("targetGroup", params.TargetGroup)
	}
	if params.FitnessFactor != "" {
		values.Set("fitnessFactorName", params.FitnessFactor)
	}
	if params.Tool != "" {
		values.Set("exerciseTool", params.Tool)
	}

	return c.get(ctx, c.baseURL+"/api/exercises?"+values.Encode())
}

// SearchByMuscle queries the provider's muscle-name endpoint.
func (c *Client) SearchByMuscle(ctx context.Context, muscles []string, page, size int) (*Page, error) {
	if size <= 0 {
		size = 10
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))
	for _, m := range muscles {
		values.Add("muscles", m)
	}

	return c.get(ctx, c.baseURL+"/api/exercises/muscles?"+values.Encode())
}

// get performs a memoized GET. The full URL doubles as the cache key.
func (c *Client) get(ctx context.Context, fullURL string) (*Page, error) {
	c.mu.Lock()
	if entry, ok := c.cache[fullURL]; ok && time.Now().Before(entry.expiresAt) {
		c.mu.Unlock()
		return entry.page, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("videoapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("videoapi: unexpected status %d", resp.StatusCode)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("videoapi: decode response: %w", err)
	}

	c.mu.Lock()
	c.cache[fullURL] = cacheEntry{page: &page, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return &page, nil
}
