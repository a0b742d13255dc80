package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Validation error codes raised by the registry and the agenda. All of them
// are recoverable user-facing failures; the menu prints the message and
// carries on.
const (
	ErrInvalidID ErrorCode = iota + 1000
	ErrDuplicateID
	ErrInvalidName
	ErrInvalidBirthDate
	ErrUnderage
	ErrPatientNotFound
	ErrInvalidDateTime
	ErrOutOfHours
	ErrNotQuarterAligned
	ErrNotFuture
	ErrDuplicateUpcoming
	ErrSlotConflict
	ErrNotFound
)

// String returns a stable snake_case label for the code, used as a metrics
// label and in structured logs.
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidID:
		return "invalid_id"
	case ErrDuplicateID:
		return "duplicate_id"
	case ErrInvalidName:
		return "invalid_name"
	case ErrInvalidBirthDate:
		return "invalid_birth_date"
	case ErrUnderage:
		return "underage"
	case ErrPatientNotFound:
		return "patient_not_found"
	case ErrInvalidDateTime:
		return "invalid_date_time"
	case ErrOutOfHours:
		return "out_of_hours"
	case ErrNotQuarterAligned:
		return "not_quarter_aligned"
	case ErrNotFuture:
		return "not_future"
	case ErrDuplicateUpcoming:
		return "duplicate_upcoming"
	case ErrSlotConflict:
		return "slot_conflict"
	case ErrNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the error code from err, or 0 when err carries none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

// Error constructors

func InvalidID() *AppError {
	return New(ErrInvalidID, "invalid identity number")
}

func DuplicateID() *AppError {
	return New(ErrDuplicateID, "identity number already registered")
}

func InvalidName(minLength int) *AppError {
	return New(ErrInvalidName, fmt.Sprintf("name must have at least %d characters", minLength))
}

func InvalidBirthDate() *AppError {
	return New(ErrInvalidBirthDate, "invalid birth date")
}

func Underage(minAge int) *AppError {
	return New(ErrUnderage, fmt.Sprintf("patient must be at least %d years old", minAge))
}

func PatientNotFound() *AppError {
	return New(ErrPatientNotFound, "patient not registered")
}

func InvalidDateTime(err error) *AppError {
	return Wrap(ErrInvalidDateTime, "invalid appointment date or time", err)
}

func OutOfHours(opening, closing fmt.Stringer) *AppError {
	return New(ErrOutOfHours, fmt.Sprintf("times outside the allowed window (%s to %s) or inverted", opening, closing))
}

func NotQuarterAligned(slotMinutes int) *AppError {
	return New(ErrNotQuarterAligned, fmt.Sprintf("start and end times must be multiples of %d minutes", slotMinutes))
}

func NotFuture() *AppError {
	return New(ErrNotFuture, "appointment must fall in a future period")
}

func DuplicateUpcoming() *AppError {
	return New(ErrDuplicateUpcoming, "patient already has an upcoming appointment")
}

func SlotConflict() *AppError {
	return New(ErrSlotConflict, "another appointment already occupies that time")
}

func NotFound() *AppError {
	return New(ErrNotFound, "appointment not found")
}
