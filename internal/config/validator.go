package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/parliament/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "chamber.vote_threshold")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// maxThinkingDelay bounds the TUI reveal delay
const maxThinkingDelay = time.Minute

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateChamber()...)
	errors = append(errors, c.validateDebate()...)
	errors = append(errors, c.validateSimulate()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateChamber() []ValidationError {
	if c.Chamber.VoteThreshold < 1 {
		return []ValidationError{{
			Field:   "chamber.vote_threshold",
			Value:   c.Chamber.VoteThreshold,
			Message: "must be at least 1",
		}}
	}
	return nil
}

func (c *Config) validateDebate() []ValidationError {
	var errors []ValidationError

	if c.Debate.RecentSpeakerWindow < 1 {
		errors = append(errors, ValidationError{
			Field:   "debate.recent_speaker_window",
			Value:   c.Debate.RecentSpeakerWindow,
			Message: "must be at least 1",
		})
	}

	if c.Debate.ThinkingDelay < 0 || c.Debate.ThinkingDelay > maxThinkingDelay {
		errors = append(errors, ValidationError{
			Field:   "debate.thinking_delay",
			Value:   c.Debate.ThinkingDelay,
			Message: fmt.Sprintf("must be between 0 and %s", maxThinkingDelay),
		})
	}

	return errors
}

func (c *Config) validateSimulate() []ValidationError {
	var errors []ValidationError

	checks := []struct {
		field string
		value int
		min   int
	}{
		{"simulate.statements", c.Simulate.Statements, 0},
		{"simulate.voters", c.Simulate.Voters, 0},
		{"simulate.parallelism", c.Simulate.Parallelism, 1},
	}
	for _, check := range checks {
		if check.value < check.min {
			errors = append(errors, ValidationError{
				Field:   check.field,
				Value:   check.value,
				Message: fmt.Sprintf("must be at least %d", check.min),
			})
		}
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	if c.TUI.TranscriptLines < 10 {
		return []ValidationError{{
			Field:   "tui.transcript_lines",
			Value:   c.TUI.TranscriptLines,
			Message: "must be at least 10",
		}}
	}
	return nil
}

func (c *Config) validateLogging() []ValidationError {
	if !logging.IsValidLevel(c.Logging.Level) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(logging.ValidLevels(), ", "))),
		}}
	}
	return nil
}
