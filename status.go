package httpserde

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStatus indicates a status code outside the three-digit range
// permitted by RFC 9110.
var ErrInvalidStatus = errors.New("invalid HTTP status code")

// Status is an HTTP status code.  Its canonical structured representation is
// the bare number, which is how it appears in JSON, YAML, and msgpack.  The
// textual representation is the decimal string.
type Status int

// ParseStatus parses a decimal status code, enforcing the three-digit range.
func ParseStatus(v string) (Status, error) {
	code, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}

	s := Status(code)
	return s, s.validate()
}

func (s Status) validate() error {
	if s < 100 || s > 999 {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}

	return nil
}

func (s Status) String() string {
	return strconv.Itoa(int(s))
}

// Reason returns the reason phrase registered for this code, or the empty
// string for unregistered codes.
func (s Status) Reason() string {
	return http.StatusText(int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) (err error) {
	*s, err = ParseStatus(string(text))
	return
}

// MarshalJSON emits the bare number rather than the quoted text form.
func (s Status) MarshalJSON() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	return []byte(strconv.Itoa(int(s))), nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	code, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, data)
	}

	*s = Status(code)
	return s.validate()
}

func (s Status) MarshalYAML() (interface{}, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	return int(s), nil
}

func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	var code int
	if err := value.Decode(&code); err != nil {
		return err
	}

	*s = Status(code)
	return s.validate()
}

func (s Status) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := s.validate(); err != nil {
		return err
	}

	return enc.EncodeInt(int64(s))
}

func (s *Status) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.DecodeInt()
	if err != nil {
		return err
	}

	*s = Status(code)
	return s.validate()
}

// StatusLine is the raw status portion of an HTTP response: a status code
// together with its reason phrase.  Its canonical representation is the text
// form "200 OK".  A reason phrase that differs from the registered one
// round-trips verbatim.
type StatusLine struct {
	Code   Status
	Reason string
}

// NewStatusLine pairs a status code with its registered reason phrase.
func NewStatusLine(code Status) StatusLine {
	return StatusLine{Code: code, Reason: code.Reason()}
}

// ParseStatusLine parses "200 OK" style text.  The reason phrase is optional.
func ParseStatusLine(v string) (StatusLine, error) {
	code, reason, _ := strings.Cut(strings.TrimSpace(v), " ")
	s, err := ParseStatus(code)
	if err != nil {
		return StatusLine{}, err
	}

	return StatusLine{Code: s, Reason: strings.TrimSpace(reason)}, nil
}

func (sl StatusLine) String() string {
	if len(sl.Reason) == 0 {
		return sl.Code.String()
	}

	return sl.Code.String() + " " + sl.Reason
}

func (sl StatusLine) MarshalText() ([]byte, error) {
	if err := sl.Code.validate(); err != nil {
		return nil, err
	}

	return []byte(sl.String()), nil
}

func (sl *StatusLine) UnmarshalText(text []byte) (err error) {
	*sl, err = ParseStatusLine(string(text))
	return
}

func (sl StatusLine) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(sl)
}

func (sl *StatusLine) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(sl, value)
}

func (sl StatusLine) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(sl, enc)
}

func (sl *StatusLine) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(sl, dec)
}
