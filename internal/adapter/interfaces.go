// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the remote document store that
// holds FlatNav backups.
//
// The store speaks the GitHub Gist REST contract. Two drivers implement
// [DocumentStore]: a resty-based driver that talks to the endpoints
// directly ([NewRESTDocumentStore]) and a go-github based driver
// ([NewGitHubDocumentStore]). [NewDocumentStore] picks one from config.
//
// Transport failures are translated into the sentinel and typed errors from
// errors.go so callers can use [errors.Is] and [errors.As] without knowing
// which driver is active.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-flatnav/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_store_mock.go -package=mock

// DocumentStore is a stateless wrapper over the remote document store. The
// credential is passed on every call; implementations never cache it as
// application state.
type DocumentStore interface {
	// List returns the documents visible to token. Listings carry file names
	// but no content.
	List(ctx context.Context, token string) ([]models.Document, error)

	// Create makes a new private document holding exactly one file named
	// [models.CanonicalFileName] with content, and returns its id.
	Create(ctx context.Context, token, content string) (string, error)

	// Update overwrites the canonical file of document id.
	Update(ctx context.Context, token, id, content string) error

	// Read returns the content of the canonical file of document id. It
	// returns an error wrapping [ErrNotFound] when either the document or
	// the file is missing. Every read bypasses intermediate caches.
	Read(ctx context.Context, token, id string) (string, error)
}
