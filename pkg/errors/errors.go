// Package errors provides structured error types for the hanoi game.
//
// This package defines error codes and types that enable:
//   - Consistent handling of rejected moves at the interaction boundary
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes fall into two groups:
//   - Recoverable player errors: INVALID_TOWER_INDEX, ILLEGAL_MOVE, INVALID_INPUT
//   - Contract violations and setup failures: EMPTY_STACK, INDEX_OUT_OF_RANGE,
//     INVALID_CONFIGURATION, INTERNAL_ERROR
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIllegalMove, "cannot place disk %d on disk %d", src, dst)
//	if errors.Is(err, errors.ErrCodeIllegalMove) {
//	    // Report and let the player retry
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfiguration, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Contract violations on the stack container
	ErrCodeEmptyStack      Code = "EMPTY_STACK"
	ErrCodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"

	// Player errors, recoverable at the loop boundary
	ErrCodeInvalidTowerIndex Code = "INVALID_TOWER_INDEX"
	ErrCodeIllegalMove       Code = "ILLEGAL_MOVE"
	ErrCodeInvalidInput      Code = "INVALID_INPUT"

	// Startup errors
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by error types that carry their own code.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the first *Error or coded error.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Role names which side of a move a tower index belongs to.
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

// TowerIndexError reports a tower index outside the valid range.
type TowerIndexError struct {
	Role  Role // Which side of the move was invalid
	Index int  // The rejected index
	Max   int  // Exclusive upper bound
}

// Error implements the error interface.
func (e *TowerIndexError) Error() string {
	return fmt.Sprintf("invalid %s tower index %d: must be in [0, %d)", e.Role, e.Index, e.Max)
}

// Code returns the error code for this error type.
func (e *TowerIndexError) Code() Code {
	return ErrCodeInvalidTowerIndex
}
