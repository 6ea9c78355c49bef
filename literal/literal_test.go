package literal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luma/cast"
	"luma/value"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want value.Value
	}{
		{name: "integer", in: "42", want: value.Integer{Value: 42}},
		{name: "signed integer", in: "-7", want: value.Integer{Value: -7}},
		{name: "float", in: "10.7823", want: value.Float{Value: 10.7823}},
		{name: "signed float", in: "-0.5", want: value.Float{Value: -0.5}},
		{name: "bare words are text", in: "Hello World", want: value.Text{Value: "Hello World"}},
		{name: "double quoted text", in: `"Hello World"`, want: value.Text{Value: "Hello World"}},
		{name: "quoted digits stay text", in: `"42"`, want: value.Text{Value: "42"}},
		{name: "character", in: "'A'", want: value.Character{Value: 'A'}},
		{name: "quoted multi-scalar reads as text", in: "'ab'", want: value.Text{Value: "ab"}},
		{name: "empty input is the no-value marker", in: "", want: value.Undef},
		{name: "mixed token falls back to text", in: "12a", want: value.Text{Value: "12a"}},
		{name: "lone dash is text", in: "-", want: value.Text{Value: "-"}},
		{name: "inner dash is text", in: "a-b", want: value.Text{Value: "a-b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.in)
			require.NoError(t, err)
			require.True(t, value.Equal(tt.want, got),
				"want %s, got %s", tt.want.Inspect(), got.Inspect())
		})
	}
}

func TestEvaluateMalformedNumbers(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		reason cast.Reason
	}{
		{name: "two decimal points", in: "1.2.3", reason: cast.ReasonParse},
		{name: "trailing decimal point", in: "1.", reason: cast.ReasonParse},
		{name: "leading decimal point", in: ".5", reason: cast.ReasonParse},
		{name: "integer overflow", in: "9999999999", reason: cast.ReasonRange},
		{name: "sign and dot with no leading digit", in: "-.5", reason: cast.ReasonParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.in)
			require.Error(t, err)
			require.Equal(t, tt.reason, cast.ReasonOf(err))
		})
	}
}

func TestEvaluateNonASCIICharacter(t *testing.T) {
	_, err := Evaluate("'é'")
	require.Error(t, err)
	require.Equal(t, cast.ReasonEncoding, cast.ReasonOf(err))
	require.ErrorIs(t, err, value.ErrNonASCII)
}

func TestGetType(t *testing.T) {
	tests := []struct {
		in   value.Value
		want string
	}{
		{in: value.Integer{Value: 5}, want: "Integer"},
		{in: value.Character{Value: 'x'}, want: "Character"},
		{in: value.Text{Value: "hi"}, want: "Text"},
		{in: value.Float{Value: 2.5}, want: "Float"},
		{in: value.Undef, want: "Undefined"},
	}
	for _, tt := range tests {
		got := GetType(tt.in)
		require.Equal(t, value.Text{Value: tt.want}, got)
	}
}

// A value always casts cleanly to its own reported kind.
func TestIdentityThroughKind(t *testing.T) {
	vals := []value.Value{
		value.Integer{Value: -3},
		value.Character{Value: 'z'},
		value.Text{Value: "Hello"},
		value.Float{Value: 0.25},
		value.Undef,
	}
	for _, v := range vals {
		got, err := cast.To(v, v.Kind())
		require.NoError(t, err)
		require.True(t, value.Equal(v, got))
	}
}
