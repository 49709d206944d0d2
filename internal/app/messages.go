// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the sync
// subsystem, the terminal UI and the key-value proxy.
//
// Msg* constants describe the outcome of an operation. Sync messages end up
// in [models.SyncStatus]; proxy messages are written into response bodies.
package app

// Sync status messages.
const (
	// MsgReady is the status message before any sync attempt.
	MsgReady = "ready"

	// MsgTokenUpdated is shown after the user replaces the token.
	MsgTokenUpdated = "token updated"

	// MsgDocumentUpdated is shown after the user enters a document id.
	MsgDocumentUpdated = "backup document id updated"

	// MsgNotConfigured is shown when a push or pull is attempted without a
	// token.
	MsgNotConfigured = "token is not configured"

	// MsgPushing is the loading message of a non-silent push.
	MsgPushing = "syncing to the cloud..."

	// MsgPushed is shown after a successful push.
	MsgPushed = "cloud sync succeeded"

	// MsgPulling is the loading message of a pull.
	MsgPulling = "checking the cloud backup..."

	// MsgPulled is shown after a successful pull.
	MsgPulled = "download succeeded"

	// MsgAuthFailed is shown on HTTP 401. Auto-sync is switched off at the
	// same time.
	MsgAuthFailed = "token is invalid or expired, auto-sync disabled"

	// MsgForbidden is shown on HTTP 403 and 429.
	MsgForbidden = "API access restricted (403)"

	// MsgDocumentNotFound is shown when the cached document id no longer
	// exists remotely.
	MsgDocumentNotFound = "backup document not found (404)"

	// MsgBackupNotFound is shown when no remote document holds a backup.
	MsgBackupNotFound = "no backup file found in the cloud"

	// MsgMalformedBackup is shown when the backup file is missing, empty or
	// not valid JSON.
	MsgMalformedBackup = "backup file is empty or damaged"

	// MsgNetworkError points the user at connectivity rather than at the
	// token.
	MsgNetworkError = "network error, check your internet connection"

	// MsgRemoteErrorFormat formats any other non-2xx response.
	MsgRemoteErrorFormat = "sync failed (%d)"

	// MsgSyncFailed is the fallback for unclassified failures.
	MsgSyncFailed = "sync failed"
)

// Key-value proxy messages.
const (
	// MsgUnauthorized is the plain-text body of a rejected write.
	MsgUnauthorized = "Unauthorized"

	// MsgStorageUnavailable is returned with 503 when the database cannot be
	// reached.
	MsgStorageUnavailable = "storage is not available"

	// MsgInvalidJSON is returned when a write body is not valid JSON.
	MsgInvalidJSON = "request body is not valid JSON"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "internal server error"
)
