// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/models"
	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// githubDocumentStore drives the Gist API through go-github. Each token
// gets its own oauth2-backed client; the most recent one is reused until
// the token changes.
type githubDocumentStore struct {
	baseURL  *url.URL
	timeout  time.Duration
	throttle *throttle
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	token  string
	client *gh.Client
	http   *http.Client
}

// NewGitHubDocumentStore returns a [DocumentStore] backed by go-github.
func NewGitHubDocumentStore(cfg config.ClientAdapter, log *logger.Logger) (DocumentStore, error) {
	base, err := url.Parse(normalizeBaseURL(cfg.HTTPAddress) + "/")
	if err != nil {
		return nil, fmt.Errorf("parse adapter address: %w", err)
	}

	return &githubDocumentStore{
		baseURL:  base,
		timeout:  cfg.RequestTimeout,
		throttle: newThrottle(cfg.RateLimit),
		now:      time.Now,
		logger:   log,
	}, nil
}

// ensureClient returns a client authenticated with token, building it on
// first use or when the token changed.
func (s *githubDocumentStore) ensureClient(ctx context.Context, token string) (*gh.Client, *http.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.token == token {
		return s.client, s.http
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = s.timeout

	client := gh.NewClient(tc)
	client.BaseURL = s.baseURL

	s.token = token
	s.client = client
	s.http = tc
	return client, tc
}

func (s *githubDocumentStore) List(ctx context.Context, token string) ([]models.Document, error) {
	client, _ := s.ensureClient(ctx, token)

	opts := &gh.GistListOptions{ListOptions: gh.ListOptions{PerPage: listPageSize}}
	var docs []models.Document

	for page := 0; page < maxListPages; page++ {
		if err := s.throttle.wait(ctx); err != nil {
			return nil, err
		}

		gists, resp, err := client.Gists.List(ctx, "", opts)
		if err != nil {
			s.logger.Err(err).Str("func", "githubDocumentStore.List").Msg("list request failed")
			return nil, mapGitHubError("list", resp, err)
		}

		for _, g := range gists {
			docs = append(docs, gistToModel(g))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return docs, nil
}

func (s *githubDocumentStore) Create(ctx context.Context, token, content string) (string, error) {
	client, _ := s.ensureClient(ctx, token)
	if err := s.throttle.wait(ctx); err != nil {
		return "", err
	}

	created, resp, err := client.Gists.Create(ctx, newBackupGist(content))
	if err != nil {
		s.logger.Err(err).Str("func", "githubDocumentStore.Create").Msg("create request failed")
		return "", mapGitHubError("create", resp, err)
	}
	if created.GetID() == "" {
		return "", fmt.Errorf("create document: response has no id")
	}

	return created.GetID(), nil
}

func (s *githubDocumentStore) Update(ctx context.Context, token, id, content string) error {
	client, _ := s.ensureClient(ctx, token)
	if err := s.throttle.wait(ctx); err != nil {
		return err
	}

	_, resp, err := client.Gists.Edit(ctx, id, newBackupGist(content))
	if err != nil {
		s.logger.Err(err).Str("func", "githubDocumentStore.Update").Str("document_id", id).Msg("update request failed")
		return mapGitHubError("update", resp, err)
	}

	return nil
}

func (s *githubDocumentStore) Read(ctx context.Context, token, id string) (string, error) {
	client, httpClient := s.ensureClient(ctx, token)
	if err := s.throttle.wait(ctx); err != nil {
		return "", err
	}

	// Gists.Get has no hook for extra query parameters, so the cache-busting
	// read is built by hand.
	u := fmt.Sprintf("gists/%s?t=%s", url.PathEscape(id), strconv.FormatInt(s.now().UnixMilli(), 10))
	req, err := client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build read request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	g := new(gh.Gist)
	resp, err := client.Do(ctx, req, g)
	if err != nil {
		s.logger.Err(err).Str("func", "githubDocumentStore.Read").Str("document_id", id).Msg("read request failed")
		return "", mapGitHubError("read", resp, err)
	}

	file, ok := g.Files[gh.GistFilename(models.CanonicalFileName)]
	if !ok {
		return "", ErrFileNotFound
	}

	// Large files come back without inline content.
	if file.GetContent() == "" && file.GetSize() > 0 && file.GetRawURL() != "" {
		return s.readRaw(ctx, httpClient, file.GetRawURL())
	}

	return file.GetContent(), nil
}

func (s *githubDocumentStore) readRaw(ctx context.Context, httpClient *http.Client, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build raw read request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Op: "read raw", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Op: "read raw", Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", mapStatus(resp.StatusCode, string(body))
	}

	return string(body), nil
}

func newBackupGist(content string) *gh.Gist {
	return &gh.Gist{
		Description: gh.Ptr(models.DocumentDescription),
		Public:      gh.Ptr(false),
		Files: map[gh.GistFilename]gh.GistFile{
			gh.GistFilename(models.CanonicalFileName): {Content: gh.Ptr(content)},
		},
	}
}

func gistToModel(g *gh.Gist) models.Document {
	doc := models.Document{
		ID:          g.GetID(),
		Description: g.GetDescription(),
		Public:      g.GetPublic(),
		Files:       make(map[string]models.DocumentFile, len(g.Files)),
	}
	for name, f := range g.Files {
		doc.Files[string(name)] = models.DocumentFile{
			Filename: string(name),
			Content:  f.GetContent(),
			RawURL:   f.GetRawURL(),
		}
	}
	return doc
}
