package fuzzy

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/coregx/fuzzy/bitap"
)

// Common errors
var (
	// ErrEmptyPattern indicates a pattern without any character
	ErrEmptyPattern = bitap.ErrEmptyPattern

	// ErrNegativeDistance indicates a maximum distance below zero
	ErrNegativeDistance = bitap.ErrNegativeDistance

	// ErrNoPatterns indicates a combinator called without patterns
	ErrNoPatterns = errors.New("no patterns to combine")

	// ErrNilPattern indicates a nil pattern passed to a combinator
	ErrNilPattern = errors.New("pattern is nil")

	// ErrNotLockStep indicates a searcher that cannot join a lock-step scan
	ErrNotLockStep = errors.New("pattern does not support lock-step scanning")

	// ErrNoMatch indicates that match accessors were called without a current
	// match: before the first Find, or after Find returned false
	ErrNoMatch = errors.New("no match available")
)

// CompileError wraps compilation errors with the pattern that caused them.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("fuzzy: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ArgumentError reports an invalid argument of a variadic combinator call.
//
// Index is zero-based; the message names the argument by its ordinal so the
// offending entry of a long list is easy to find.
type ArgumentError struct {
	Index int
	Err   error
}

// Error implements the error interface.
//
// Example: "fuzzy: 2nd pattern is nil".
func (e *ArgumentError) Error() string {
	ordinal := humanize.Ordinal(e.Index + 1)
	if errors.Is(e.Err, ErrNilPattern) {
		return "fuzzy: " + ordinal + " pattern is nil"
	}
	return fmt.Sprintf("fuzzy: %s pattern: %v", ordinal, e.Err)
}

// Unwrap returns the underlying error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// StateError reports a match accessor used without a current match.
//
// Matchers panic with a *StateError; such a call is always a caller bug.
type StateError struct {
	Op string
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return "fuzzy: " + e.Op + ": " + ErrNoMatch.Error()
}

// Unwrap returns ErrNoMatch.
func (e *StateError) Unwrap() error {
	return ErrNoMatch
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "fuzzy: invalid config: " + e.Field + ": " + e.Message
}
