package errors

import (
	"net/http"

	"bazaar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business error code, so a detailed copy still
// satisfies errors.Is against its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	var app AppError
	if !errors.As(target, &app) {
		return false
	}

	return e.errorCode == app.ErrorCode()
}

// Predefined error types
var (
	// Wizard session errors
	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"No wizard draft exists with this ID",
		"",
	)

	ErrDraftCompleted = NewBaseError(
		http.StatusConflict,
		"DRAFT_COMPLETED",
		"This draft has already been submitted",
		"",
	)

	ErrSubmitInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMIT_IN_FLIGHT",
		"A submission for this draft is already outstanding",
		"",
	)

	ErrNotAtReviewStep = NewBaseError(
		http.StatusConflict,
		"NOT_AT_REVIEW_STEP",
		"The draft must be at the review step to submit",
		"",
	)

	// Field mutation errors
	ErrUnknownField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FIELD",
		"The named field is not part of the draft",
		"",
	)

	ErrInvalidFieldValue = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FIELD_VALUE",
		"The value does not fit the named field",
		"",
	)

	ErrDayIndexRange = NewBaseError(
		http.StatusBadRequest,
		"DAY_INDEX_RANGE",
		"Day index must be between 0 and 6",
		"",
	)

	ErrUnknownSlot = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_SLOT",
		"Attachment slot must be cover_photo or logo",
		"",
	)

	// Validation and submission errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"The draft has validation errors",
		"",
	)

	ErrSubmissionFailed = NewBaseError(
		http.StatusBadGateway,
		"SUBMISSION_FAILED",
		"The marketplace backend rejected the registration",
		"",
	)

	// Upload errors
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"The attachment could not be stored",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
