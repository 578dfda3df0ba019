package repostats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newGithubStub(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/rocket", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stargazers_count": 42, "forks_count": 7, "language": "Go", "description": "To the moon"}`))
	})
	mux.HandleFunc("GET /repos/acme/bare", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"stargazers_count": 1, "forks_count": 0, "language": null, "description": null}`))
	})
	mux.HandleFunc("GET /repos/acme/broken", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /repos/private/token", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer gh_test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"stargazers_count": 3, "forks_count": 1, "language": "Rust", "description": ""}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGet(t *testing.T) {
	var hits atomic.Int64
	srv := newGithubStub(t, &hits)
	c := NewClient(context.Background(), ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
	ctx := context.Background()

	stats, err := c.Get(ctx, "acme/rocket")
	require.NoError(t, err)
	require.Equal(t, RepoStats{Stars: 42, Forks: 7, Language: "Go", Description: "To the moon"}, stats)

	stats, err = c.Get(ctx, "acme/bare")
	require.NoError(t, err)
	require.Equal(t, RepoStats{Stars: 1, Language: "Unknown"}, stats)

	_, err = c.Get(ctx, "owner/doesnotexist")
	require.ErrorIs(t, err, ErrRepoNotFound)

	_, err = c.Get(ctx, "acme/broken")
	require.Error(t, err)

	for _, bad := range []string{"", "noslash", "/name", "owner/", "a/b/c"} {
		_, err = c.Get(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidRepoIdentifier, bad)
	}
}

func TestClientSendsToken(t *testing.T) {
	var hits atomic.Int64
	srv := newGithubStub(t, &hits)
	ctx := context.Background()

	_, err := NewClient(ctx, ClientConfig{BaseURL: srv.URL}).Get(ctx, "private/token")
	require.Error(t, err)

	stats, err := NewClient(ctx, ClientConfig{BaseURL: srv.URL, Token: "gh_test"}).Get(ctx, "private/token")
	require.NoError(t, err)
	require.Equal(t, "Rust", stats.Language)
}

func TestFetchAllCollectsSuccesses(t *testing.T) {
	var hits atomic.Int64
	srv := newGithubStub(t, &hits)
	ctx := context.Background()
	s := NewService(NewClient(ctx, ClientConfig{BaseURL: srv.URL, Timeout: time.Second}), 4)

	got := s.FetchAll(ctx, []string{"acme/rocket", "owner/doesnotexist", "acme/broken", "not-valid", "acme/bare", "acme/rocket"})

	require.Len(t, got, 2)
	require.Equal(t, 42, got["acme/rocket"].Stars)
	require.Equal(t, "Unknown", got["acme/bare"].Language)
	require.NotContains(t, got, "owner/doesnotexist")

	// duplicate identifiers are fetched once
	require.EqualValues(t, 3, hits.Load())
}

func TestFetchAllEmpty(t *testing.T) {
	s := NewService(NewClient(context.Background(), ClientConfig{}), 2)
	got := s.FetchAll(context.Background(), nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFetchAllHonoursCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := NewService(NewClient(ctx, ClientConfig{BaseURL: srv.URL}), 2)
	got := s.FetchAll(ctx, []string{"a/b", "c/d"})
	require.Empty(t, got)
}
