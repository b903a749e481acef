// Package common defines shared sentinel errors used across the MoodCam
// storage and service layers. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")

	// Storage backend read/write failure; wraps the backend error.
	ErrStorageFailure = errors.New("storage failure")

	// Export with nothing to export.
	ErrNoData = errors.New("no data to export")

	// Export serialization or file write failure.
	ErrExport = errors.New("export failed")
)
