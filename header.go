package httpserde

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/httpaux/server"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// emptyHeader is an internal singleton representing a blank Header
var emptyHeader = Header{}

// Header is an immutable set of HTTP headers holding a deep copy of an
// http.Header.  Its canonical structured representation is a map of header
// name to the slice of values for that name, which is how it appears in
// JSON, YAML, and msgpack.
//
// The zero value of this type is an immutable, empty Header that serializes
// as an empty map.
//
// All header keys are stored internally as canonicalized values.  All header
// values will be deep copies of any values used in initialization.
type Header struct {
	h http.Header
}

// NewHeader makes a deep copy of the given source with each key filtered
// through http.CanonicalHeaderKey.
//
// If src is empty or nil, an empty Header is returned.  Otherwise, the
// returned Header is a distinct, deep copy of the source.
func NewHeader(src http.Header) Header {
	if len(src) > 0 {
		cleaned := make(http.Header, len(src))
		for key, values := range src {
			if len(key) > 0 && len(values) > 0 {
				key = http.CanonicalHeaderKey(key)
				cleaned[key] = append([]string{}, values...)
			}
		}

		if len(cleaned) > 0 {
			return Header{h: cleaned}
		}
	}

	return emptyHeader
}

// NewHeaderFromMap is a simpler version of NewHeader, allowing one
// to specify a plain map of strings.  In all other ways this function
// is identical to NewHeader.
func NewHeaderFromMap(src map[string]string) Header {
	if len(src) > 0 {
		cleaned := make(http.Header, len(src))
		for key, value := range src {
			if len(key) > 0 {
				key = http.CanonicalHeaderKey(key)
				cleaned[key] = []string{value}
			}
		}

		if len(cleaned) > 0 {
			return Header{h: cleaned}
		}
	}

	return emptyHeader
}

// Len returns the count of keys in this header
func (h Header) Len() int {
	return len(h.h)
}

// Get returns the first value for the given name, or the empty string.
func (h Header) Get(name string) string {
	return h.h.Get(name)
}

// Values returns a copy of all values for the given name.
func (h Header) Values(name string) []string {
	values := h.h.Values(name)
	if len(values) == 0 {
		return nil
	}

	return append([]string{}, values...)
}

// Names returns the sorted, canonicalized header names.
func (h Header) Names() []string {
	if len(h.h) == 0 {
		return nil
	}

	names := make([]string, 0, len(h.h))
	for name := range h.h {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Clone returns a mutable http.Header deep copy.
func (h Header) Clone() http.Header {
	if len(h.h) == 0 {
		return http.Header{}
	}

	return h.h.Clone()
}

// AddTo appends this Header's key/values to the given http.Header.
// Because a Header already contains canonicalized header keys, this
// method is more efficient than http.Header.Add.
func (h Header) AddTo(dst http.Header) {
	for key, values := range h.h {
		dst[key] = append(dst[key], values...)
	}
}

// SetTo replaces any existing values in dst for this Header's keys.
func (h Header) SetTo(dst http.Header) {
	for key, values := range h.h {
		dst[key] = append([]string{}, values...)
	}
}

// Then is a server middleware that emits this Header on every response
// before invoking next.  If this Header is empty, no decoration is
// performed.  The returned constructor is compatible with middleware
// packages such as justinas/alice.
func (h Header) Then(next http.Handler) http.Handler {
	if h.Len() == 0 {
		return next
	}

	return server.Header(httpaux.NewHeader(h.h).SetTo)(next)
}

// headerValues coerces a decoded map value into a value slice.  The map
// forms accepted on input allow each name to carry either a single string
// or a sequence of strings.
func headerValues(name string, raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil

	case []string:
		return append([]string{}, v...), nil

	case []interface{}:
		values := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("header %q: value %v is not a string", name, e)
			}

			values = append(values, s)
		}

		return values, nil

	default:
		return nil, fmt.Errorf("header %q: %v is neither a string nor a sequence of strings", name, raw)
	}
}

// fromRawMap builds a Header from a decoded map, validating each header
// name against the token grammar.  Errors are aggregated so that a caller
// sees every offending name at once.
func fromRawMap(raw map[string]interface{}) (Header, error) {
	var errs error
	cleaned := make(http.Header, len(raw))
	for name, value := range raw {
		if !validToken(name) {
			errs = multierr.Append(errs, fmt.Errorf("invalid header name: %q", name))
			continue
		}

		values, err := headerValues(name, value)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		cleaned[http.CanonicalHeaderKey(name)] = values
	}

	if errs != nil {
		return emptyHeader, errs
	}

	if len(cleaned) == 0 {
		return emptyHeader, nil
	}

	return Header{h: cleaned}, nil
}

func (h Header) MarshalJSON() ([]byte, error) {
	if len(h.h) == 0 {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string][]string(h.h))
}

func (h *Header) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := fromRawMap(raw)
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}

func (h Header) MarshalYAML() (interface{}, error) {
	if len(h.h) == 0 {
		return map[string][]string{}, nil
	}

	return map[string][]string(h.h), nil
}

func (h *Header) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]interface{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := fromRawMap(raw)
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}

func (h Header) EncodeMsgpack(enc *msgpack.Encoder) error {
	if len(h.h) == 0 {
		return enc.Encode(map[string][]string{})
	}

	return enc.Encode(map[string][]string(h.h))
}

func (h *Header) DecodeMsgpack(dec *msgpack.Decoder) error {
	var raw map[string][]string
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	cooked := make(map[string]interface{}, len(raw))
	for name, values := range raw {
		cooked[name] = values
	}

	parsed, err := fromRawMap(cooked)
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}
