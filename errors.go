package jsonschema

import (
	"errors"
	"fmt"
)

// === Schema construction errors ===
var (
	// ErrInvalidSchemaType is returned when a "type" keyword value is not a
	// recognised Draft 7 primitive or array of primitives.
	ErrInvalidSchemaType = errors.New("invalid json schema type")

	// ErrEmptyEnum is returned when "enum" is present but has zero members.
	ErrEmptyEnum = errors.New("enum must not be empty")

	// ErrInvalidKeywordShape is returned when a keyword's JSON value does not
	// match any of the shapes Draft 7 allows for it (e.g. "items" that is
	// neither a schema object nor an array of schemas).
	ErrInvalidKeywordShape = errors.New("invalid keyword shape")

	// ErrNilConstValue is returned when UnmarshalJSON is invoked on a nil
	// *ConstValue receiver.
	ErrNilConstValue = errors.New("const value receiver is nil")

	// ErrUnsupportedRatValue is returned when a numeric keyword's JSON value
	// cannot be converted to a big.Rat.
	ErrUnsupportedRatValue = errors.New("unsupported numeric value")
)

// === Regex errors ===
var (
	// ErrRegexCompilation is returned when a "pattern" or patternProperties
	// key fails to compile as a Go RE2 regular expression.
	ErrRegexCompilation = errors.New("regex compilation failed")
)

// InvalidSchemaError reports a programmer error in the shape of a schema
// value supplied to this package: a malformed keyword that is not itself a
// data-dependent contradiction (those are ∅, not errors). These
// are not a runtime failure mode the engine attempts to recover from.
type InvalidSchemaError struct {
	Keyword string
	Path    string
	Err     error
}

func (e *InvalidSchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid schema at %s (keyword %q): %v", e.Path, e.Keyword, e.Err)
	}
	return fmt.Sprintf("invalid schema (keyword %q): %v", e.Keyword, e.Err)
}

func (e *InvalidSchemaError) Unwrap() error { return e.Err }

// RegexPatternError reports a pattern that failed to compile, identified by
// its keyword and location, following kaptinlin-jsonschema's
// RegexPatternError shape.
type RegexPatternError struct {
	Keyword  string
	Location string
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return fmt.Sprintf("%s: invalid pattern %q at %s: %v", e.Keyword, e.Pattern, e.Location, e.Err)
}

func (e *RegexPatternError) Unwrap() error { return e.Err }
