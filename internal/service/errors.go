package service

import "errors"

// Domain errors surfaced by services. Handlers translate these to HTTP
// statuses and response codes at the boundary.
var (
	// ErrNotFound covers both genuinely absent resources and ownership
	// violations; existence is never leaked to callers that don't own the
	// resource.
	ErrNotFound = errors.New("resource not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotApproved        = errors.New("account not approved")
	ErrUsernameTaken      = errors.New("username already exists")

	// ErrInvalidState signals an approval-status precondition failure.
	ErrInvalidState = errors.New("account status does not permit this operation")

	ErrAlreadyIssued = errors.New("certificate already issued for this trainee")
	ErrIncomplete    = errors.New("trainee has not completed all training items")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")

	// ErrStorage wraps file-system or rendering failures; no partial writes
	// are rolled back.
	ErrStorage = errors.New("storage operation failed")
)
