package schedule

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure modes of the codec.
type ErrorKind int

const (
	// KindEmptyInput means there was nothing to parse
	KindEmptyInput ErrorKind = iota
	// KindUnknownToken means a token missed the lexicon
	KindUnknownToken
	// KindNumberOutOfRange means an hour, minute, day or month value was invalid
	KindNumberOutOfRange
	// KindIncompatibleConstraint means a constraint does not fit the chosen unit
	KindIncompatibleConstraint
	// KindAmbiguousTimeSuffix means an am/pm suffix contradicts the hour (e.g. 15pm)
	KindAmbiguousTimeSuffix
	// KindUnsupportedByDialect means the target dialect cannot express the schedule
	KindUnsupportedByDialect
	// KindAmbiguousLocalTime means the wall-clock time falls in a DST gap or overlap
	KindAmbiguousLocalTime
	// KindNotRoundTrippable means the reverse recognizer gave up on a field
	KindNotRoundTrippable
	// KindInvalidSchedule means IR construction rejected an invariant violation
	KindInvalidSchedule
)

// String returns the kind name used in error messages
func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindUnknownToken:
		return "unknown token"
	case KindNumberOutOfRange:
		return "number out of range"
	case KindIncompatibleConstraint:
		return "incompatible constraint"
	case KindAmbiguousTimeSuffix:
		return "ambiguous time suffix"
	case KindUnsupportedByDialect:
		return "unsupported by dialect"
	case KindAmbiguousLocalTime:
		return "ambiguous local time"
	case KindNotRoundTrippable:
		return "not round-trippable"
	case KindInvalidSchedule:
		return "invalid schedule"
	default:
		return "unknown error"
	}
}

// Error is the single error type surfaced by every codec operation.
// Offset is a byte offset into the original input, or -1 when unknown.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Token   string // offending token, when known
	Field   string // offending field name, when known
	Dialect string // target dialect, when known
}

// Error formats the failure with its byte offset when one is known
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the ErrorKind from an error chain. The second return is
// false when err does not wrap a codec Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ErrEmptyInput reports that there was nothing to parse
func ErrEmptyInput() *Error {
	return &Error{Kind: KindEmptyInput, Message: "nothing to parse", Offset: -1}
}

// ErrUnknownToken reports a lexicon miss at the given byte offset
func ErrUnknownToken(offset int, token string) *Error {
	return &Error{
		Kind:    KindUnknownToken,
		Message: fmt.Sprintf("unrecognized token %q", token),
		Offset:  offset,
		Token:   token,
	}
}

// ErrNumberOutOfRange reports a numeric value outside its field's legal range
func ErrNumberOutOfRange(offset int, field string, value, min, max int) *Error {
	return &Error{
		Kind:    KindNumberOutOfRange,
		Message: fmt.Sprintf("%s %d out of range %d..%d", field, value, min, max),
		Offset:  offset,
		Field:   field,
	}
}

// ErrIncompatibleConstraint reports a constraint that does not fit the unit
func ErrIncompatibleConstraint(offset int, reason string) *Error {
	return &Error{Kind: KindIncompatibleConstraint, Message: reason, Offset: offset}
}

// ErrAmbiguousTimeSuffix reports an am/pm suffix on an hour outside 1..12
func ErrAmbiguousTimeSuffix(offset int, token string) *Error {
	return &Error{
		Kind:    KindAmbiguousTimeSuffix,
		Message: fmt.Sprintf("hour in %q does not fit a 12-hour clock", token),
		Offset:  offset,
		Token:   token,
	}
}

// ErrUnsupportedByDialect reports a schedule feature the dialect cannot express
func ErrUnsupportedByDialect(dialect, feature string) *Error {
	return &Error{
		Kind:    KindUnsupportedByDialect,
		Message: fmt.Sprintf("%s cannot express %s", dialect, feature),
		Offset:  -1,
		Dialect: dialect,
	}
}

// ErrAmbiguousLocalTime reports a wall-clock time inside a DST gap or overlap
func ErrAmbiguousLocalTime(zone, when string) *Error {
	return &Error{
		Kind:    KindAmbiguousLocalTime,
		Message: fmt.Sprintf("%s does not exist exactly once in %s", when, zone),
		Offset:  -1,
	}
}

// ErrNotRoundTrippable reports a cron field outside the recognizer's templates
func ErrNotRoundTrippable(dialect, field string) *Error {
	return &Error{
		Kind:    KindNotRoundTrippable,
		Message: fmt.Sprintf("%s field %s has no natural-language equivalent", dialect, field),
		Offset:  -1,
		Field:   field,
		Dialect: dialect,
	}
}

// ErrInvalidSchedule reports an IR invariant violation
func ErrInvalidSchedule(invariant string) *Error {
	return &Error{Kind: KindInvalidSchedule, Message: invariant, Offset: -1}
}
