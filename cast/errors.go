package cast

import (
	"errors"
	"fmt"

	"luma/value"
)

// Reason classifies a failed cast so the statement interpreter can
// match on it without parsing message text.
type Reason string

const (
	// ReasonRange means the numeric value lies outside the target
	// kind's domain (Float to Integer overflow, Integer to Character
	// outside 0-127).
	ReasonRange Reason = "range"

	// ReasonPrecision means a Float to Integer cast lost information:
	// the float had a non-zero fractional part.
	ReasonPrecision Reason = "precision"

	// ReasonParse means text could not be read as a literal of the
	// requested numeric kind, or the literal syntax was malformed.
	ReasonParse Reason = "parse"

	// ReasonArity means a Text to Character cast where the text does
	// not have exactly one element.
	ReasonArity Reason = "arity"

	// ReasonEncoding means a scalar outside the ASCII range where a
	// Character was required.
	ReasonEncoding Reason = "encoding"

	// ReasonUndefinedConversion means the source was Undefined and the
	// target was not; there is no conversion out of "no value".
	ReasonUndefinedConversion Reason = "undefined_conversion"
)

// Error is the failure result of a cast or literal parse. It supports
// Go's error wrapping so an underlying strconv error stays reachable
// through errors.Is / errors.As.
type Error struct {
	Reason  Reason
	From    value.Kind
	To      value.Kind
	Cause   string
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cast %s to %s: %s: %s", e.From, e.To, e.Reason, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// NewError builds a cast Error with a formatted cause.
func NewError(reason Reason, from, to value.Kind, format string, args ...any) *Error {
	return &Error{
		Reason: reason,
		From:   from,
		To:     to,
		Cause:  fmt.Sprintf(format, args...),
	}
}

// ReasonOf extracts the classification from err, or "" if err is not
// a cast Error. Used by the interpreter for dispatch decisions.
func ReasonOf(err error) Reason {
	var castErr *Error
	if errors.As(err, &castErr) {
		return castErr.Reason
	}
	return ""
}
