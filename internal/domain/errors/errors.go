package errors

import (
	"github.com/pkg/errors"
)

// Kind classifies an AppError so the presentation layer can choose its messaging.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	// parent is the predefined error this one was derived from by WithDetails.
	parent *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
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

// Is lets errors.Is match a detailed copy against the predefined error it came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e == t || (e.parent != nil && e.parent == t)
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	root := e
	if e.parent != nil {
		root = e.parent
	}

	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    root,
	}
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidRating = NewBaseError(
		KindValidation,
		"INVALID_RATING",
		"rating must be an integer between 1 and 5",
		"",
	)

	ErrEmptyComment = NewBaseError(
		KindValidation,
		"EMPTY_COMMENT",
		"comment must not be empty",
		"",
	)

	ErrSlotNotOffered = NewBaseError(
		KindValidation,
		"SLOT_NOT_OFFERED",
		"the doctor does not offer this time slot",
		"",
	)

	// Not found
	ErrDoctorNotFound = NewBaseError(
		KindNotFound,
		"DOCTOR_NOT_FOUND",
		"doctor not found",
		"",
	)

	ErrAppointmentNotFound = NewBaseError(
		KindNotFound,
		"APPOINTMENT_NOT_FOUND",
		"appointment not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		KindNotFound,
		"REVIEW_NOT_FOUND",
		"review not found",
		"",
	)

	// Authorization
	ErrUnauthorized = NewBaseError(
		KindUnauthorized,
		"UNAUTHORIZED",
		"administrator access required",
		"",
	)

	ErrNotSignedIn = NewBaseError(
		KindUnauthorized,
		"NOT_SIGNED_IN",
		"a signed-in patient is required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	// Conflict
	ErrSlotAlreadyBooked = NewBaseError(
		KindConflict,
		"SLOT_ALREADY_BOOKED",
		"this time is already booked",
		"",
	)

	ErrDuplicateReview = NewBaseError(
		KindConflict,
		"DUPLICATE_REVIEW",
		"this patient has already reviewed the doctor",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		KindConflict,
		"INVALID_STATUS_TRANSITION",
		"appointment status cannot change from its current state",
		"",
	)
)
