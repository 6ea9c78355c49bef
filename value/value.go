package value

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Kind identifies which of the five variants a Value is.
type Kind int

const (
	IntegerKind Kind = iota
	CharacterKind
	TextKind
	FloatKind
	UndefinedKind
)

var kindNames = [...]string{
	IntegerKind:   "Integer",
	CharacterKind: "Character",
	TextKind:      "Text",
	FloatKind:     "Float",
	UndefinedKind: "Undefined",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindFromName is the inverse of Kind.String.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Value is a single runtime datum tagged with exactly one Kind.
// Concrete values are small and copied freely; nothing here is
// mutated after construction.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Equal reports structural equality: same kind and equal payload.
// Undef compares equal only to Undef.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	return a == b
}

type Integer struct {
	Value int32
}

func (i Integer) Kind() Kind      { return IntegerKind }
func (i Integer) Inspect() string { return strconv.FormatInt(int64(i.Value), 10) }

// ErrNonASCII is returned when a Character would hold a scalar
// outside the 0-127 range the language permits.
var ErrNonASCII = errors.New("character outside ASCII range")

type Character struct {
	Value rune
}

// NewCharacter validates the ASCII restriction. Code that builds a
// Character from a literal or a cast must go through here.
func NewCharacter(r rune) (Character, error) {
	if !IsASCII(r) {
		return Character{}, ErrNonASCII
	}
	return Character{Value: r}, nil
}

func (c Character) Kind() Kind      { return CharacterKind }
func (c Character) Inspect() string { return "'" + string(c.Value) + "'" }

// IsASCII reports whether r is a Unicode scalar in the ASCII range.
func IsASCII(r rune) bool { return r >= 0 && r <= unicode.MaxASCII }

// Text is an ordered sequence of Character. The string payload is the
// storage; the Character view is exposed through TextFromChars and Chars.
type Text struct {
	Value string
}

func TextFromChars(chars []Character) Text {
	runes := make([]rune, len(chars))
	for i, c := range chars {
		runes[i] = c.Value
	}
	return Text{Value: string(runes)}
}

// Chars decomposes the text into its elements. Elements outside the
// ASCII range are representable here; the restriction is enforced only
// when one of them becomes a standalone Character.
func (t Text) Chars() []Character {
	chars := make([]Character, 0, utf8.RuneCountInString(t.Value))
	for _, r := range t.Value {
		chars = append(chars, Character{Value: r})
	}
	return chars
}

// Len is the number of elements, not bytes.
func (t Text) Len() int { return utf8.RuneCountInString(t.Value) }

func (t Text) Kind() Kind      { return TextKind }
func (t Text) Inspect() string { return strconv.Quote(t.Value) }

type Float struct {
	Value float64
}

func (f Float) Kind() Kind      { return FloatKind }
func (f Float) Inspect() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }

// Undefined is the "no value produced" kind. It carries no payload,
// so Undef is the only inhabitant.
type Undefined struct{}

func (u Undefined) Kind() Kind      { return UndefinedKind }
func (u Undefined) Inspect() string { return "undefined" }

var Undef = Undefined{}
