// Package literal turns the textual surface form of a value into a
// runtime Value, and reports a Value's kind back as a Value.
package literal

import (
	"strings"
	"unicode/utf8"

	"luma/cast"
	"luma/value"
)

// Evaluate parses one literal token, as delivered by the lexer, into
// a Value. Dispatch is by surface form:
//
//	'c'          single-quoted ASCII scalar  -> Character
//	"..."        double-quoted run           -> Text
//	-?digits     -> Integer
//	-?d.d        -> Float
//	(empty)      -> Undefined, the explicit "no value" marker
//	anything else -> Text (bare words are text, by the grammar)
//
// A token that looks numeric but is malformed (two dots, trailing
// dot) is an error, not a Text fallback: the fallback only covers
// tokens the grammar never claimed.
func Evaluate(src string) (value.Value, error) {
	if src == "" {
		return value.Undef, nil
	}

	if len(src) >= 2 && strings.HasPrefix(src, `"`) && strings.HasSuffix(src, `"`) {
		return value.Text{Value: src[1 : len(src)-1]}, nil
	}

	if len(src) >= 2 && strings.HasPrefix(src, "'") && strings.HasSuffix(src, "'") {
		return evaluateCharacter(src[1 : len(src)-1])
	}

	if numericLooking(src) {
		return evaluateNumber(src)
	}

	return value.Text{Value: src}, nil
}

func evaluateCharacter(body string) (value.Value, error) {
	if utf8.RuneCountInString(body) != 1 {
		// More than one scalar between the quotes reads as Text.
		return value.Text{Value: body}, nil
	}
	r, _ := utf8.DecodeRuneInString(body)
	c, err := value.NewCharacter(r)
	if err != nil {
		return nil, &cast.Error{
			Reason:  cast.ReasonEncoding,
			From:    value.TextKind,
			To:      value.CharacterKind,
			Cause:   "character literal " + body + " is not ASCII",
			Wrapped: err,
		}
	}
	return c, nil
}

func evaluateNumber(src string) (value.Value, error) {
	if !strings.Contains(src, ".") {
		n, err := cast.ParseInteger(src)
		if err != nil {
			return nil, err
		}
		return value.Integer{Value: n}, nil
	}
	f, err := cast.ParseFloat(src)
	if err != nil {
		return nil, err
	}
	return value.Float{Value: f}, nil
}

// numericLooking decides whether a bare token is claimed by the
// numeric grammar: only sign, digit and dot characters, with at
// least one digit among them. "12a" is plain text; "1.2.3" is a
// numeric attempt and will fail to parse.
func numericLooking(src string) bool {
	hasDigit := false
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case '0' <= c && c <= '9':
			hasDigit = true
		case c == '.':
		case c == '-' && i == 0:
		default:
			return false
		}
	}
	return hasDigit
}

// GetType names v's kind as a Text value, so language code can store
// and branch on it with ordinary value operations. Total over every
// kind, Undefined included.
func GetType(v value.Value) value.Value {
	return value.Text{Value: v.Kind().String()}
}
