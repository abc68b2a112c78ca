package httpserde

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidMethod indicates a method token that is empty or contains
	// characters outside the RFC 9110 token grammar.
	ErrInvalidMethod = errors.New("invalid HTTP method token")

	// registeredMethods maps the upper-cased form of each method defined by
	// net/http to its registered spelling.
	registeredMethods = map[string]string{
		http.MethodGet:     http.MethodGet,
		http.MethodHead:    http.MethodHead,
		http.MethodPost:    http.MethodPost,
		http.MethodPut:     http.MethodPut,
		http.MethodPatch:   http.MethodPatch,
		http.MethodDelete:  http.MethodDelete,
		http.MethodConnect: http.MethodConnect,
		http.MethodOptions: http.MethodOptions,
		http.MethodTrace:   http.MethodTrace,
	}
)

// isTokenChar tests a byte against the tchar production of RFC 9110.
func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}

// validToken tests whether v is a nonempty RFC 9110 token.
func validToken(v string) bool {
	if len(v) == 0 {
		return false
	}

	for i := 0; i < len(v); i++ {
		if !isTokenChar(v[i]) {
			return false
		}
	}

	return true
}

// Method is an HTTP method token, e.g. "GET" or "PATCH".  Its canonical
// representation is the token itself.
//
// The zero value is not a valid method and will fail to marshal.
type Method string

// ParseMethod validates a method token.  Tokens that match a method defined
// by net/http are normalized case-insensitively to their registered spelling.
// Any other token is kept as is, allowing extension methods.
func ParseMethod(v string) (Method, error) {
	if !validToken(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, v)
	}

	if registered, ok := registeredMethods[strings.ToUpper(v)]; ok {
		return Method(registered), nil
	}

	return Method(v), nil
}

func (m Method) String() string {
	return string(m)
}

// MarshalText emits the method token.  The zero value and any value that
// does not satisfy the token grammar result in an error.
func (m Method) MarshalText() ([]byte, error) {
	if !validToken(string(m)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, string(m))
	}

	return []byte(m), nil
}

func (m *Method) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMethod(string(text))
	return
}

func (m Method) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(m)
}

func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(m, value)
}

func (m Method) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(m, enc)
}

func (m *Method) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(m, dec)
}
