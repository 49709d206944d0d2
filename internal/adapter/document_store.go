// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
)

const (
	// DriverREST selects the resty driver.
	DriverREST = "rest"
	// DriverGitHub selects the go-github driver.
	DriverGitHub = "github"

	defaultBaseURL = "https://api.github.com"
	listPageSize   = 100
	maxListPages   = 10
)

// NewDocumentStore builds the driver named by cfg.Driver. An empty driver
// name selects [DriverREST].
func NewDocumentStore(cfg config.ClientAdapter, log *logger.Logger) (DocumentStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverREST:
		return NewRESTDocumentStore(cfg, log)
	case DriverGitHub:
		return NewGitHubDocumentStore(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func normalizeBaseURL(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return defaultBaseURL
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "https://" + addr
	}
	return strings.TrimRight(addr, "/")
}
