package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *Config) *Server {
	t.Helper()

	s, err := New(nil, nil, cfg)
	require.NoError(t, err)
	return s
}

func postClean(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/clean", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestHandleCleanDefaultSets verifies the default chain cleans a typical
// scraped title.
func TestHandleCleanDefaultSets(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postClean(t, s, CleanRequest{Text: "Track (Official Video)"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CleanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Track (Official Video)", resp.Text)
	assert.Equal(t, "Track", resp.Cleaned)
	assert.Equal(t, []string{"youtube", "trim_symbols", "trim_whitespace"}, resp.Sets)
}

// TestHandleCleanExplicitSets verifies requested sets are applied in order.
func TestHandleCleanExplicitSets(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postClean(t, s, CleanRequest{
		Text: "Song Title (feat. Someone)",
		Sets: []string{"feature", "trim_whitespace"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CleanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Song Title", resp.Cleaned)
	assert.Equal(t, []string{"feature", "trim_whitespace"}, resp.Sets)
}

// TestHandleCleanEmptyText verifies empty input is valid and stays empty.
func TestHandleCleanEmptyText(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postClean(t, s, CleanRequest{Text: ""})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CleanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Cleaned)
}

// TestHandleCleanUnknownSet verifies unknown set names are rejected.
func TestHandleCleanUnknownSet(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postClean(t, s, CleanRequest{Text: "Track", Sets: []string{"no-such-set"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no-such-set")
}

// TestHandleCleanInvalidJSON verifies malformed bodies are rejected.
func TestHandleCleanInvalidJSON(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/clean", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHandleSets verifies the set listing is sorted and complete.
func TestHandleSets(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sets", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SetsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Sets, "youtube")
	assert.Contains(t, resp.Sets, "remastered")
	assert.IsIncreasing(t, resp.Sets)
}

// TestHandleHealth verifies the liveness endpoint.
func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestNewUnknownDefaultSet verifies misconfigured defaults fail fast.
func TestNewUnknownDefaultSet(t *testing.T) {
	_, err := New(nil, nil, &Config{DefaultSets: []string{"nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

// countingCache records cache traffic for assertions.
type countingCache struct {
	entries map[string]string
	gets    int
	sets    int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[string]string)}
}

func (c *countingCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.gets++
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *countingCache) Set(ctx context.Context, key, value string) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *countingCache) Close() error { return nil }

// TestHandleCleanCache verifies repeated requests are served from the cache.
func TestHandleCleanCache(t *testing.T) {
	cc := newCountingCache()
	s := newTestServer(t, &Config{Cache: cc})

	first := postClean(t, s, CleanRequest{Text: "Track (Official Video)"})
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, cc.gets)
	assert.Equal(t, 1, cc.sets)

	second := postClean(t, s, CleanRequest{Text: "Track (Official Video)"})
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 2, cc.gets)
	assert.Equal(t, 1, cc.sets, "second request should be served from the cache")

	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
