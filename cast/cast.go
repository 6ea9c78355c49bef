// Package cast converts runtime values between kinds. Every
// conversion is explicit and fallible; there is no silent coercion
// and no default value on failure.
package cast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"

	"luma/value"
)

// To converts v to an equivalent Value of the target kind.
//
// Identity casts always succeed. Casting anything to Undefined
// discards the payload and succeeds; casting Undefined to anything
// else always fails. The remaining pairs follow the language's
// conversion matrix, failing with a classified *Error.
func To(v value.Value, target value.Kind) (value.Value, error) {
	if target == value.UndefinedKind {
		return value.Undef, nil
	}
	if v.Kind() == value.UndefinedKind {
		return nil, NewError(ReasonUndefinedConversion, value.UndefinedKind, target,
			"no conversion out of Undefined")
	}
	if v.Kind() == target {
		return v, nil
	}

	switch target {
	case value.IntegerKind:
		return toInteger(v)
	case value.FloatKind:
		return toFloat(v)
	case value.TextKind:
		return toText(v), nil
	case value.CharacterKind:
		return toCharacter(v)
	}
	panic("cast: unknown target kind " + target.String())
}

func toInteger(v value.Value) (value.Value, error) {
	switch v := v.(type) {
	case value.Character:
		// ASCII code point value.
		return value.Integer{Value: int32(v.Value)}, nil
	case value.Text:
		n, err := ParseInteger(v.Value)
		if err != nil {
			return nil, err
		}
		return value.Integer{Value: n}, nil
	case value.Float:
		f := v.Value
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, NewError(ReasonRange, value.FloatKind, value.IntegerKind,
				"%s has no integer value", v.Inspect())
		}
		if math.Trunc(f) != f {
			return nil, NewError(ReasonPrecision, value.FloatKind, value.IntegerKind,
				"%s has a fractional part", v.Inspect())
		}
		if f < math.MinInt32 || f > math.MaxInt32 {
			return nil, NewError(ReasonRange, value.FloatKind, value.IntegerKind,
				"%s overflows the Integer domain", v.Inspect())
		}
		return value.Integer{Value: int32(f)}, nil
	}
	panic("cast: unhandled source kind " + v.Kind().String())
}

func toFloat(v value.Value) (value.Value, error) {
	switch v := v.(type) {
	case value.Integer:
		// Exact: every int32 is representable in a float64.
		return value.Float{Value: float64(v.Value)}, nil
	case value.Character:
		return value.Float{Value: float64(v.Value)}, nil
	case value.Text:
		f, err := ParseFloat(v.Value)
		if err != nil {
			return nil, err
		}
		return value.Float{Value: f}, nil
	}
	panic("cast: unhandled source kind " + v.Kind().String())
}

func toText(v value.Value) value.Value {
	switch v := v.(type) {
	case value.Integer:
		return value.Text{Value: strconv.FormatInt(int64(v.Value), 10)}
	case value.Float:
		return value.Text{Value: strconv.FormatFloat(v.Value, 'f', -1, 64)}
	case value.Character:
		return value.Text{Value: string(v.Value)}
	}
	panic("cast: unhandled source kind " + v.Kind().String())
}

func toCharacter(v value.Value) (value.Value, error) {
	switch v := v.(type) {
	case value.Integer:
		if v.Value < 0 || v.Value > unicode.MaxASCII {
			return nil, NewError(ReasonRange, value.IntegerKind, value.CharacterKind,
				"code point %d outside 0-127", v.Value)
		}
		return value.Character{Value: rune(v.Value)}, nil
	case value.Text:
		if v.Len() != 1 {
			return nil, NewError(ReasonArity, value.TextKind, value.CharacterKind,
				"text of length %d, need exactly 1", v.Len())
		}
		c, err := value.NewCharacter(v.Chars()[0].Value)
		if err != nil {
			return nil, &Error{
				Reason:  ReasonEncoding,
				From:    value.TextKind,
				To:      value.CharacterKind,
				Cause:   fmt.Sprintf("%s is not ASCII", v.Inspect()),
				Wrapped: err,
			}
		}
		return c, nil
	case value.Float:
		// Goes through the same gates as Float to Integer followed by
		// Integer to Character; a fractional code point is never truncated.
		n, err := toInteger(v)
		if err != nil {
			castErr := err.(*Error)
			castErr.To = value.CharacterKind
			return nil, castErr
		}
		return toCharacter(n)
	}
	panic("cast: unhandled source kind " + v.Kind().String())
}

// ParseInteger reads a complete integer literal: an optional leading
// '-', then one or more ASCII digits. Trailing garbage is a parse
// failure, never a truncated success.
func ParseInteger(s string) (int32, error) {
	if !numberShaped(s, false) {
		return 0, NewError(ReasonParse, value.TextKind, value.IntegerKind,
			"%q is not an integer literal", s)
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		reason := ReasonParse
		if errors.Is(err, strconv.ErrRange) {
			reason = ReasonRange
		}
		return 0, &Error{
			Reason:  reason,
			From:    value.TextKind,
			To:      value.IntegerKind,
			Cause:   fmt.Sprintf("%q overflows the Integer domain", s),
			Wrapped: err,
		}
	}
	return int32(n), nil
}

// ParseFloat reads a complete numeric literal: an optional leading
// '-', one or more digits, and at most one '.' followed by one or
// more digits. Exponents, leading dots and trailing dots are all
// malformed.
func ParseFloat(s string) (float64, error) {
	if !numberShaped(s, true) {
		return 0, NewError(ReasonParse, value.TextKind, value.FloatKind,
			"%q is not a numeric literal", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		reason := ReasonParse
		if errors.Is(err, strconv.ErrRange) {
			reason = ReasonRange
		}
		return 0, &Error{
			Reason:  reason,
			From:    value.TextKind,
			To:      value.FloatKind,
			Cause:   fmt.Sprintf("%q overflows the Float domain", s),
			Wrapped: err,
		}
	}
	return f, nil
}

// numberShaped checks the literal grammar by hand so that only forms
// the language defines reach strconv: strconv alone would admit
// "+1", "1e9", "0x10", ".5" and similar.
func numberShaped(s string, allowDot bool) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}

	sawDot := false
	digitsBefore := 0
	digitsAfter := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			if sawDot {
				digitsAfter++
			} else {
				digitsBefore++
			}
		case c == '.' && allowDot && !sawDot:
			sawDot = true
		default:
			return false
		}
	}

	if digitsBefore == 0 {
		return false
	}
	if sawDot && digitsAfter == 0 {
		return false
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
