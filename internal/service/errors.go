package service

import "errors"

var (
	// ErrNoCredential is returned by Push and Pull when no token is set.
	ErrNoCredential = errors.New("no credential configured")
	// ErrBackupNotFound is returned by Pull when no remote document holds
	// the backup file.
	ErrBackupNotFound = errors.New("backup not found")
	// ErrMalformedBackup is returned by Pull when the backup file is
	// missing, empty or not a JSON object.
	ErrMalformedBackup = errors.New("malformed backup")

	ErrCategoryNotFound = errors.New("category not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrInvalidBookmark  = errors.New("invalid bookmark")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidConfig    = errors.New("invalid dashboard config")

	ErrInvalidSnapshotFile = errors.New("snapshot file is not a JSON object")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrInvalidBlob             = errors.New("blob is not valid JSON")
	ErrTokenCreationFailed     = errors.New("write token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("write token is expired or invalid")
	ErrStorageUnavailable      = errors.New("storage unavailable")
)
