package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// StateError Tests
// -----------------------------------------------------------------------------

func TestStateError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StateError
		want string
	}{
		{
			name: "with proposal and status",
			err:  NewStateError("cannot vote", "law2", "passed"),
			want: "state error [proposal=law2, status=passed]: cannot vote: proposal is closed",
		},
		{
			name: "without context",
			err:  NewStateError("cannot vote", "", ""),
			want: "state error: cannot vote: proposal is closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateError_Is(t *testing.T) {
	err := NewStateError("cannot debate", "law1", "rejected")

	if !Is(err, ErrProposalClosed) {
		t.Error("Is(ErrProposalClosed) = false, want true")
	}
	if !Is(err, &StateError{}) {
		t.Error("Is(StateError{}) = false, want true")
	}
	if Is(err, ErrProposalNotFound) {
		t.Error("Is(ErrProposalNotFound) = true, want false")
	}
}

// -----------------------------------------------------------------------------
// DebateError Tests
// -----------------------------------------------------------------------------

func TestDebateError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DebateError
		want string
	}{
		{
			name: "basic",
			err:  NewDebateError("choose speaker", nil),
			want: "debate error: choose speaker",
		},
		{
			name: "with law and window",
			err:  NewDebateError("choose speaker", ErrNoEligibleSpeaker).WithLaw("law1").WithWindow(3),
			want: "debate error [law=law1, window=3]: choose speaker: no eligible speaker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDebateError_Is(t *testing.T) {
	err := NewDebateError("choose speaker", ErrNoEligibleSpeaker)
	wrapped := fmt.Errorf("generate: %w", err)

	if !Is(wrapped, ErrNoEligibleSpeaker) {
		t.Error("Is(ErrNoEligibleSpeaker) = false, want true")
	}

	var debateErr *DebateError
	if !As(wrapped, &debateErr) {
		t.Fatal("As(*DebateError) = false, want true")
	}
	if debateErr.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", debateErr.Severity(), SeverityWarning)
	}
}

// -----------------------------------------------------------------------------
// Semantic Error Tests
// -----------------------------------------------------------------------------

func TestNotFoundHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		sentinel error
		want     string
	}{
		{"proposal", ProposalNotFound("law9"), ErrProposalNotFound, "proposal 'law9' not found"},
		{"group", GroupNotFound("whigs"), ErrGroupNotFound, "group 'whigs' not found"},
		{"politician", PoliticianNotFound("x1"), ErrPoliticianNotFound, "politician 'x1' not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("Is(%v) = false, want true", tt.sentinel)
			}
			if !IsNotFound(tt.err) {
				t.Error("IsNotFound() = false, want true")
			}
		})
	}

	if Is(GroupNotFound("a"), ErrProposalNotFound) {
		t.Error("group not found should not match ErrProposalNotFound")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("statement", "stmt_9")

	if got, want := err.Error(), "statement 'stmt_9' not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.ResourceType != "statement" || err.ResourceID != "stmt_9" {
		t.Errorf("resource = %s/%s, want statement/stmt_9", err.ResourceType, err.ResourceID)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
	if Is(err, ErrProposalNotFound) {
		t.Error("a NotFoundError without cause should not match ErrProposalNotFound")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title is required").WithField("title").WithValue("")

	want := "validation error [field=title, value=]: title is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrInvalidInput) {
		t.Error("Is(ErrInvalidInput) = false, want true")
	}
	if !IsValidation(fmt.Errorf("submit: %w", err)) {
		t.Error("IsValidation() = false, want true")
	}

	cause := errors.New("yaml: line 3")
	withCause := NewValidationError("bad seed").WithCause(cause)
	if !Is(withCause, cause) {
		t.Error("Is(cause) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"not found", ProposalNotFound("law1"), true},
		{"wrapped state", Wrap(NewStateError("x", "law1", "passed"), "vote"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(nil); got != SeverityDebug {
		t.Errorf("GetSeverity(nil) = %v, want %v", got, SeverityDebug)
	}
	if got := GetSeverity(errors.New("x")); got != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityError)
	}
	if got := GetSeverity(NewValidationError("x")); got != SeverityWarning {
		t.Errorf("GetSeverity(validation) = %v, want %v", got, SeverityWarning)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrProposalNotFound, "load %s", "law1")
	if got, want := err.Error(), "load law1: proposal not found"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
	if !Is(err, ErrProposalNotFound) {
		t.Error("Is(ErrProposalNotFound) = false, want true")
	}
}
