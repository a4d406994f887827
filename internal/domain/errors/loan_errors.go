package errors

import (
	"fmt"
	"net/http"
	"strings"

	"ludoteca/internal/errors"
)

// RejectionReason identifies which loan rule turned a save down.
type RejectionReason string

const (
	ReasonRangeOrder        RejectionReason = "RANGE_ORDER"
	ReasonMaxDuration       RejectionReason = "MAX_DURATION"
	ReasonGameConflict      RejectionReason = "GAME_CONFLICT"
	ReasonClientCapExceeded RejectionReason = "CLIENT_CAP_EXCEEDED"
)

// LoanValidationError is returned when a proposed loan breaks a reservation rule.
// The message is the human-readable reason shown to the caller.
type LoanValidationError struct {
	reason  RejectionReason
	message string
}

// NewLoanValidationError builds a rejection for reason.
func NewLoanValidationError(reason RejectionReason, message string) *LoanValidationError {
	return &LoanValidationError{reason: reason, message: message}
}

func (e *LoanValidationError) Error() string {
	return e.message
}

// Reason returns the rule that failed.
func (e *LoanValidationError) Reason() RejectionReason {
	return e.reason
}

func (e *LoanValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *LoanValidationError) ErrorCode() string {
	return "LOAN_" + string(e.reason)
}

func (e *LoanValidationError) Message() string {
	return e.message
}

func (e *LoanValidationError) Details() string {
	return ""
}

// RejectionReasonOf extracts the rejection reason from err, if it is a loan validation error.
func RejectionReasonOf(err error) (RejectionReason, bool) {
	var validationErr *LoanValidationError
	if errors.As(err, &validationErr) {
		return validationErr.reason, true
	}

	return "", false
}

// NotFoundError reports that an entity with the given id does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

// NewNotFoundError builds a not-found error for entity/id.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) HTTPCode() int {
	return http.StatusNotFound
}

func (e *NotFoundError) ErrorCode() string {
	return strings.ToUpper(e.Entity) + "_NOT_FOUND"
}

func (e *NotFoundError) Message() string {
	return e.Error()
}

func (e *NotFoundError) Details() string {
	return ""
}

// IsNotFound reports whether err is a NotFoundError, optionally for a given entity.
func IsNotFound(err error, entity ...string) bool {
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		return false
	}
	if len(entity) == 0 {
		return true
	}

	return notFound.Entity == entity[0]
}
