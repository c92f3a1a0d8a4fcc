package apperrors

import (
	"net/http"
)

// Factories for wrapping repository/storage errors into domain errors.

// ErrNotFound converts a lookup miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists is the duplicate-create guard error (409).
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is a generic 409 with a custom domain and message.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrReferentialIntegrity rejects an operation blocked by dependent rows (422).
// Details should identify the blockers so the caller can act on them.
func ErrReferentialIntegrity(domain, message string, details interface{}) *AppError {
	return New(CodeReferentialIntegrity, domain, message, http.StatusUnprocessableEntity).WithDetails(details)
}

// ErrStorage wraps a binary-store failure during a primary step (502).
func ErrStorage(err error, message string) *AppError {
	return Wrap(err, CodeStorageError, "storage", message, http.StatusBadGateway)
}

// ErrInvalidOperation is a 400 for operations the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- predefined upload validation errors ---

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File exceeds the maximum allowed size",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"File type is not allowed",
	http.StatusBadRequest,
)
