package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrSettingNotFound is returned when a settings key was never written.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrDashboardNotFound is returned when no dashboard was saved yet and
	// the caller has to seed one.
	ErrDashboardNotFound = errors.New("dashboard not found")

	// ErrBlobNotFound is returned when the key-value store holds nothing
	// under the requested key.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrStorageUnavailable wraps driver errors classified as transient
	// (lost connection, database busy). The proxy answers them with 503.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
