// Package httpserdetest provides assertion helpers for the round-trip
// contract every httpserde wrapper obeys: marshaling a parsed canonical
// representation reproduces that representation, and a marshaled value
// parses back to an equivalent value.
package httpserdetest

import (
	"encoding"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Codec is the subset of codec behavior these helpers need.  Every codec in
// httpserdecodec satisfies it.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// fresh allocates a new instance of value's type and returns it as an
// encoding.TextUnmarshaler.
func fresh(t *testing.T, value interface{}) encoding.TextUnmarshaler {
	vt := reflect.TypeOf(value)
	for vt.Kind() == reflect.Ptr {
		vt = vt.Elem()
	}

	u, ok := reflect.New(vt).Interface().(encoding.TextUnmarshaler)
	require.True(t, ok, "%T does not implement encoding.TextUnmarshaler", value)
	return u
}

// Text asserts that value marshals to the expected canonical text, and that
// the expected text parses and re-marshals to itself.  Equivalence is
// checked on the serialized form, since parsed wrappers may carry raw fields
// the source value lacks.
func Text(t *testing.T, value encoding.TextMarshaler, expected string) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	text, err := value.MarshalText()
	require.NoError(err)
	assert.Equal(expected, string(text))

	parsed := fresh(t, value)
	require.NoError(parsed.UnmarshalText([]byte(expected)))

	reserialized, err := parsed.(encoding.TextMarshaler).MarshalText()
	require.NoError(err)
	assert.Equal(expected, string(reserialized))
}

// BadText asserts that every given input fails to parse as value's type.
func BadText(t *testing.T, value encoding.TextMarshaler, inputs ...string) {
	for _, input := range inputs {
		assert.Error(t, fresh(t, value).UnmarshalText([]byte(input)), "input: %q", input)
	}
}

// RoundTrip marshals original through the codec, unmarshals into target,
// and asserts the two are equal.  The target must be a non-nil pointer to
// the same type as original.
func RoundTrip(t *testing.T, c Codec, original, target interface{}) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	data, err := c.Marshal(original)
	require.NoError(err)
	require.NoError(c.Unmarshal(data, target))

	assert.Equal(original, reflect.ValueOf(target).Elem().Interface())
}
