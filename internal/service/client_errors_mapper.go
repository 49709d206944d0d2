// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/adapter"
	"github.com/MKhiriev/go-flatnav/internal/app"
)

// statusMessage turns a push or pull failure into the message shown in the
// sync status.
func statusMessage(err error) string {
	var (
		netErr    *adapter.NetworkError
		remoteErr *adapter.RemoteError
	)

	switch {
	case errors.Is(err, ErrNoCredential):
		return app.MsgNotConfigured
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgAuthFailed
	case errors.Is(err, adapter.ErrForbidden):
		return app.MsgForbidden
	case errors.Is(err, ErrBackupNotFound):
		return app.MsgBackupNotFound
	case errors.Is(err, ErrMalformedBackup):
		return app.MsgMalformedBackup
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgDocumentNotFound
	case errors.As(err, &netErr):
		return app.MsgNetworkError
	case errors.As(err, &remoteErr):
		return fmt.Sprintf(app.MsgRemoteErrorFormat, remoteErr.StatusCode)
	}

	return app.MsgSyncFailed
}
