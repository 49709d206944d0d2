// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/utils"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/go-resty/resty/v2"
)

const gistMediaType = "application/vnd.github.v3+json"

type gistFile struct {
	Filename  string `json:"filename,omitempty"`
	Content   string `json:"content,omitempty"`
	RawURL    string `json:"raw_url,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

type gist struct {
	ID          string              `json:"id,omitempty"`
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Files       map[string]gistFile `json:"files"`
}

func (g gist) toModel() models.Document {
	doc := models.Document{
		ID:          g.ID,
		Description: g.Description,
		Public:      g.Public,
		Files:       make(map[string]models.DocumentFile, len(g.Files)),
	}
	for name, f := range g.Files {
		doc.Files[name] = models.DocumentFile{
			Filename:  name,
			Content:   f.Content,
			RawURL:    f.RawURL,
			Truncated: f.Truncated,
		}
	}
	return doc
}

func backupGist(content string) gist {
	return gist{
		Description: models.DocumentDescription,
		Public:      false,
		Files: map[string]gistFile{
			models.CanonicalFileName: {Content: content},
		},
	}
}

type restDocumentStore struct {
	client   *utils.HTTPClient
	throttle *throttle
	now      func() time.Time
	logger   *logger.Logger
}

// NewRESTDocumentStore returns a [DocumentStore] that calls the Gist
// endpoints through resty.
func NewRESTDocumentStore(cfg config.ClientAdapter, log *logger.Logger) (DocumentStore, error) {
	client := utils.NewHTTPClient(normalizeBaseURL(cfg.HTTPAddress), cfg.RequestTimeout)
	client.SetHeader("Accept", gistMediaType)

	return &restDocumentStore{
		client:   client,
		throttle: newThrottle(cfg.RateLimit),
		now:      time.Now,
		logger:   log,
	}, nil
}

func (s *restDocumentStore) authedRequest(ctx context.Context, token string) *resty.Request {
	return s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token)
}

func (s *restDocumentStore) List(ctx context.Context, token string) ([]models.Document, error) {
	var docs []models.Document

	for page := 1; page <= maxListPages; page++ {
		if err := s.throttle.wait(ctx); err != nil {
			return nil, err
		}

		resp, err := s.authedRequest(ctx, token).
			SetQueryParam("per_page", strconv.Itoa(listPageSize)).
			SetQueryParam("page", strconv.Itoa(page)).
			Get("/gists")
		if err != nil {
			s.logger.Err(err).Str("func", "restDocumentStore.List").Int("page", page).Msg("list request failed")
			return nil, &NetworkError{Op: "list", Err: err}
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var batch []gist
		if err = json.Unmarshal(resp.Body(), &batch); err != nil {
			return nil, fmt.Errorf("decode document list: %w", err)
		}
		for _, g := range batch {
			docs = append(docs, g.toModel())
		}
		if len(batch) < listPageSize {
			break
		}
	}

	return docs, nil
}

func (s *restDocumentStore) Create(ctx context.Context, token, content string) (string, error) {
	if err := s.throttle.wait(ctx); err != nil {
		return "", err
	}

	resp, err := s.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(backupGist(content)).
		Post("/gists")
	if err != nil {
		s.logger.Err(err).Str("func", "restDocumentStore.Create").Msg("create request failed")
		return "", &NetworkError{Op: "create", Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created gist
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode created document: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("create document: response has no id")
	}

	return created.ID, nil
}

func (s *restDocumentStore) Update(ctx context.Context, token, id, content string) error {
	if err := s.throttle.wait(ctx); err != nil {
		return err
	}

	resp, err := s.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(backupGist(content)).
		Patch("/gists/{id}")
	if err != nil {
		s.logger.Err(err).Str("func", "restDocumentStore.Update").Str("document_id", id).Msg("update request failed")
		return &NetworkError{Op: "update", Err: err}
	}

	return mapHTTPError(resp)
}

func (s *restDocumentStore) Read(ctx context.Context, token, id string) (string, error) {
	if err := s.throttle.wait(ctx); err != nil {
		return "", err
	}

	resp, err := s.authedRequest(ctx, token).
		SetPathParam("id", id).
		SetQueryParam("t", strconv.FormatInt(s.now().UnixMilli(), 10)).
		SetHeader("Cache-Control", "no-cache").
		Get("/gists/{id}")
	if err != nil {
		s.logger.Err(err).Str("func", "restDocumentStore.Read").Str("document_id", id).Msg("read request failed")
		return "", &NetworkError{Op: "read", Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var g gist
	if err = json.Unmarshal(resp.Body(), &g); err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}

	file, ok := g.Files[models.CanonicalFileName]
	if !ok {
		return "", ErrFileNotFound
	}
	if file.Truncated && file.RawURL != "" {
		return s.readRaw(ctx, file.RawURL)
	}

	return file.Content, nil
}

// readRaw downloads a file the document listing reported as truncated.
func (s *restDocumentStore) readRaw(ctx context.Context, rawURL string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(rawURL)
	if err != nil {
		return "", &NetworkError{Op: "read raw", Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}
