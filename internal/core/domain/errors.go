// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// Target errors
	ErrEmptyDomain   = errors.New("target domain cannot be empty")
	ErrEmptyCompany  = errors.New("target company cannot be empty")
	ErrInvalidDomain = errors.New("invalid domain format")

	// Config errors
	ErrNoModulesSelected = errors.New("no modules selected")
	ErrInvalidModule     = errors.New("invalid module name")
	ErrInvalidTier       = errors.New("invalid search tier")

	// Record errors
	ErrInvalidRecord     = errors.New("invalid record")
	ErrRecordMergeFailed = errors.New("cannot merge records with different keys")
	ErrEmptyRecordValue  = errors.New("record value cannot be empty")

	// Run errors
	ErrRunNotStarted  = errors.New("run did not start")
	ErrRunCanceled    = errors.New("run was canceled")
	ErrModuleNotFound = errors.New("module not found")
	ErrModuleFailed   = errors.New("module execution failed")

	// Export errors
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailed      = errors.New("export failed")
)
