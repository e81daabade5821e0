package api

import (
	"errors"
	"fmt"
	"strings"
)

// ServiceError is a non-2xx response from the book service.
type ServiceError struct {
	Status  int
	Message string // server-supplied error string, may be empty
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("book service returned %d", e.Status)
	}
	return fmt.Sprintf("book service returned %d: %s", e.Status, e.Message)
}

// duplicateISBNMarker is the fragment the service leaks from its unique
// constraint when an ISBN already exists. The backing database enforces
// uniqueness, so detection is a substring match on the error string; kept
// in one place so a structured error code can replace it without touching
// any caller.
const duplicateISBNMarker = `duplicate key value violates unique constraint "unique_isbn"`

// User-facing messages produced by Classify.
const (
	MsgDuplicateISBN = "This ISBN already exists. Please use a different ISBN number."
	MsgInvalidData   = "Invalid book data. Please check all fields and try again."
	MsgNotFound      = "Book not found. It may have been deleted by another user."
	MsgServerError   = "Server error. Please try again later."
)

// Classify maps a failed call into the single message shown to the user.
//
// The duplicate-ISBN marker wins over the status branches: the constraint
// violation arrives as a 400, and matching on the status first would
// misreport it as generic invalid data.
func Classify(err error) string {
	var se *ServiceError
	if !errors.As(err, &se) {
		// No response at all: transport-level failure.
		return fmt.Sprintf("Could not reach the book service: %v", err)
	}

	if strings.Contains(se.Message, duplicateISBNMarker) {
		return MsgDuplicateISBN
	}

	switch {
	case se.Status == 400:
		return MsgInvalidData
	case se.Status == 404:
		return MsgNotFound
	case se.Status >= 500:
		return MsgServerError
	default:
		return fmt.Sprintf("Unexpected response from the book service: %v", se)
	}
}

// IsDuplicateISBN reports whether err is the service's unique-ISBN
// constraint violation.
func IsDuplicateISBN(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && strings.Contains(se.Message, duplicateISBNMarker)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Status == 404
}
