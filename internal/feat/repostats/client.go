package repostats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.github.com"

var (
	ErrInvalidRepoIdentifier = errors.New("repo identifier must be in owner/name form")
	ErrRepoNotFound          = errors.New("repo not found")
)

type RepoStats struct {
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

type githubRepo struct {
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Language        *string `json:"language"`
	Description     *string `json:"description"`
}

func (r githubRepo) toStats() RepoStats {
	stats := RepoStats{
		Stars:    r.StargazersCount,
		Forks:    r.ForksCount,
		Language: "Unknown",
	}
	if r.Language != nil && *r.Language != "" {
		stats.Language = *r.Language
	}
	if r.Description != nil {
		stats.Description = *r.Description
	}
	return stats
}

type Client interface {
	// Get fetches the metadata of a single "owner/name" repository.
	Get(ctx context.Context, repo string) (RepoStats, error)
}

type ClientConfig struct {
	BaseURL string
	// optional, raises the unauthenticated rate limit
	Token   string
	Timeout time.Duration
}

func NewClient(ctx context.Context, conf ClientConfig) Client {
	var httpClient *http.Client
	if token := strings.TrimSpace(conf.Token); token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = conf.Timeout

	base, err := url.Parse(conf.BaseURL)
	if conf.BaseURL == "" || err != nil {
		base, _ = url.Parse(defaultBaseURL)
	}

	return &githubClient{http: httpClient, baseURL: base}
}

type githubClient struct {
	http    *http.Client
	baseURL *url.URL
}

func splitRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(repo), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", ErrInvalidRepoIdentifier
	}
	return owner, name, nil
}

func (c *githubClient) Get(ctx context.Context, repo string) (RepoStats, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return RepoStats{}, err
	}

	reqURL := c.baseURL.JoinPath("repos", owner, name).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return RepoStats{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.http.Do(req)
	if err != nil {
		return RepoStats{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return RepoStats{}, ErrRepoNotFound
	default:
		return RepoStats{}, fmt.Errorf("unexpected github response status %d", resp.StatusCode)
	}

	var body githubRepo
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return RepoStats{}, fmt.Errorf("decoding github response: %w", err)
	}

	return body.toStats(), nil
}
