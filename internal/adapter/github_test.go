package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitHubStore(t *testing.T, serverURL string) *githubDocumentStore {
	t.Helper()
	s, err := NewGitHubDocumentStore(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)

	store := s.(*githubDocumentStore)
	store.now = func() time.Time { return time.UnixMilli(42) }
	return store
}

func TestGitHub_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gists", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "b", "files": map[string]any{models.CanonicalFileName: map[string]any{"filename": models.CanonicalFileName}}},
		})
	}))
	defer srv.Close()

	docs, err := newTestGitHubStore(t, srv.URL).List(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.True(t, docs[0].HasFile(models.CanonicalFileName))
}

func TestGitHub_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body gist
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.False(t, body.Public)
		assert.Equal(t, "payload", body.Files[models.CanonicalFileName].Content)

		writeJSON(t, w, http.StatusCreated, map[string]any{"id": "gh-1"})
	}))
	defer srv.Close()

	id, err := newTestGitHubStore(t, srv.URL).Create(context.Background(), "tok", "payload")

	require.NoError(t, err)
	assert.Equal(t, "gh-1", id)
}

func TestGitHub_Update_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/gists/gh-1", r.URL.Path)
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "Bad credentials"})
	}))
	defer srv.Close()

	err := newTestGitHubStore(t, srv.URL).Update(context.Background(), "tok", "gh-1", "payload")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGitHub_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gists/gh-1", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("t"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":    "gh-1",
			"files": map[string]any{models.CanonicalFileName: map[string]any{"content": "{}", "size": 2}},
		})
	}))
	defer srv.Close()

	content, err := newTestGitHubStore(t, srv.URL).Read(context.Background(), "tok", "gh-1")

	require.NoError(t, err)
	assert.Equal(t, "{}", content)
}

func TestGitHub_Read_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	}))
	defer srv.Close()

	_, err := newTestGitHubStore(t, srv.URL).Read(context.Background(), "tok", "gh-1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGitHub_Read_FileMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "gh-1", "files": map[string]any{}})
	}))
	defer srv.Close()

	_, err := newTestGitHubStore(t, srv.URL).Read(context.Background(), "tok", "gh-1")

	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGitHub_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := newTestGitHubStore(t, addr).List(context.Background(), "tok")

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
}

func TestGitHub_ReusesClientPerToken(t *testing.T) {
	s := newTestGitHubStore(t, "http://localhost:1")
	ctx := context.Background()

	c1, _ := s.ensureClient(ctx, "a")
	c2, _ := s.ensureClient(ctx, "a")
	c3, _ := s.ensureClient(ctx, "b")

	assert.Same(t, c1, c2)
	assert.NotSame(t, c1, c3)
}
