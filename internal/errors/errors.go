// Package errors provides centralized error definitions and error handling utilities
// for the parliament codebase. It defines the chamber's sentinel errors, its
// semantic error types, and classification helpers used by the CLI and TUI to
// decide how an error should be presented.
//
// # Error Types
//
// Domain errors describe a rejected chamber operation:
//   - StateError: the proposal is in a state that forbids the operation
//   - DebateError: a debate statement could not be produced
//
// Semantic errors describe common conditions:
//   - NotFoundError: an unknown group, politician, or proposal id
//   - ValidationError: invalid input such as an empty title or unknown vote choice
//
// # Usage
//
//	err := errors.NewNotFoundError("proposal", "law9").WithCause(errors.ErrProposalNotFound)
//
//	if errors.Is(err, errors.ErrProposalNotFound) { ... }
//
//	var stateErr *errors.StateError
//	if errors.As(err, &stateErr) { ... }
//
// Every error defined here is recoverable: the operation that produced it left
// the chamber unchanged.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for rejected operations the user can correct.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Reference data sentinel errors
var (
	// ErrGroupNotFound indicates that a parliamentary group id is unknown.
	ErrGroupNotFound = New("group not found")
	// ErrPoliticianNotFound indicates that a politician id is unknown.
	ErrPoliticianNotFound = New("politician not found")
	// ErrSeedInvalid indicates that seed data violates a chamber invariant.
	ErrSeedInvalid = New("invalid seed data")
)

// Proposal sentinel errors
var (
	// ErrProposalNotFound indicates that a proposal id is unknown.
	ErrProposalNotFound = New("proposal not found")
	// ErrProposalClosed indicates that a proposal has passed or been rejected.
	ErrProposalClosed = New("proposal is closed")
)

// Debate sentinel errors
var (
	// ErrNoEligibleSpeaker indicates that every politician spoke recently.
	ErrNoEligibleSpeaker = New("no eligible speaker")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// ChamberError is the base interface for all parliament errors.
type ChamberError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain Errors
// -----------------------------------------------------------------------------

// StateError reports an operation that the proposal's current status forbids.
// It always matches ErrProposalClosed when the status is terminal.
//
// Example:
//
//	err := errors.NewStateError("cannot vote", "law2", "passed")
//	fmt.Println(err) // "state error [proposal=law2, status=passed]: cannot vote: proposal is closed"
type StateError struct {
	baseError
	ProposalID string
	Status     string
}

// NewStateError creates a StateError wrapping ErrProposalClosed.
func NewStateError(message, proposalID, status string) *StateError {
	return &StateError{
		baseError: baseError{
			message:    message,
			cause:      ErrProposalClosed,
			severity:   SeverityWarning,
			userFacing: true,
		},
		ProposalID: proposalID,
		Status:     status,
	}
}

// Error returns the formatted error message.
func (e *StateError) Error() string {
	var parts []string
	if e.ProposalID != "" {
		parts = append(parts, fmt.Sprintf("proposal=%s", e.ProposalID))
	}
	if e.Status != "" {
		parts = append(parts, fmt.Sprintf("status=%s", e.Status))
	}

	prefix := "state error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("state error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *StateError) Is(target error) bool {
	if _, ok := target.(*StateError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// DebateError reports a debate statement that could not be generated.
//
// Example:
//
//	err := errors.NewDebateError("choose speaker", errors.ErrNoEligibleSpeaker).WithLaw("law1")
//	fmt.Println(err) // "debate error [law=law1]: choose speaker: no eligible speaker"
type DebateError struct {
	baseError
	LawID  string
	Window int
}

// NewDebateError creates a new DebateError.
func NewDebateError(message string, cause error) *DebateError {
	return &DebateError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithLaw adds the proposal under debate to the error context.
func (e *DebateError) WithLaw(id string) *DebateError {
	e.LawID = id
	return e
}

// WithWindow records the recent-speaker window that excluded every candidate.
func (e *DebateError) WithWindow(n int) *DebateError {
	e.Window = n
	return e
}

// Error returns the formatted error message.
func (e *DebateError) Error() string {
	var parts []string
	if e.LawID != "" {
		parts = append(parts, fmt.Sprintf("law=%s", e.LawID))
	}
	if e.Window > 0 {
		parts = append(parts, fmt.Sprintf("window=%d", e.Window))
	}

	prefix := "debate error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("debate error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *DebateError) Is(target error) bool {
	if _, ok := target.(*DebateError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("group", "whigs")
//	fmt.Println(err) // "group 'whigs' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ProposalNotFound returns a NotFoundError matching ErrProposalNotFound.
func ProposalNotFound(id string) *NotFoundError {
	return NewNotFoundError("proposal", id).WithCause(ErrProposalNotFound)
}

// GroupNotFound returns a NotFoundError matching ErrGroupNotFound.
func GroupNotFound(id string) *NotFoundError {
	return NewNotFoundError("group", id).WithCause(ErrGroupNotFound)
}

// PoliticianNotFound returns a NotFoundError matching ErrPoliticianNotFound.
func PoliticianNotFound(id string) *NotFoundError {
	return NewNotFoundError("politician", id).WithCause(ErrPoliticianNotFound)
}

// ValidationError represents invalid input.
//
// Example:
//
//	err := errors.NewValidationError("title is required").WithField("title")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    m.errorMessage = err.Error()
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var chamberErr ChamberError
	if As(err, &chamberErr) {
		return chamberErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement ChamberError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var chamberErr ChamberError
	if As(err, &chamberErr) {
		return chamberErr.Severity()
	}
	return SeverityError
}

// IsNotFound reports whether err is a NotFoundError of any resource type.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return As(err, &notFound)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var validation *ValidationError
	return As(err, &validation)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike a bare fmt.Errorf, this returns nil for a nil error.
//
// Example:
//
//	err := errors.Wrap(baseErr, "load seed")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "load seed file %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
