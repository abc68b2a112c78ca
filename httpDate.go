package httpserde

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidHTTPDate indicates text that matches none of the date formats
// an HTTP recipient is required to accept.
var ErrInvalidHTTPDate = errors.New("invalid HTTP-date")

// httpDateFormats are the layouts a recipient must accept per RFC 9110:
// the preferred IMF-fixdate plus the two obsolete forms.  Senders only ever
// produce the first.
var httpDateFormats = []string{
	http.TimeFormat,
	"Monday, 02-Jan-06 15:04:05 MST",
	time.ANSIC,
}

// Time wraps a time.Time in the HTTP-date representation used by headers
// such as Date, Expires, and Last-Modified.  It always formats as an
// IMF-fixdate in GMT, e.g. "Wed, 22 Feb 2017 12:03:31 GMT".
//
// Note that this representation has second precision.  Sub-second detail of
// the wrapped time does not survive a round trip.
type Time struct {
	time.Time
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// ParseTime parses an HTTP-date in any of the three accepted formats.
func ParseTime(v string) (Time, error) {
	for _, layout := range httpDateFormats {
		if t, err := time.Parse(layout, v); err == nil {
			return Time{Time: t}, nil
		}
	}

	return Time{}, fmt.Errorf("%w: %q", ErrInvalidHTTPDate, v)
}

func (t Time) String() string {
	return t.Time.UTC().Format(http.TimeFormat)
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Time) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTime(string(text))
	return
}

// MarshalJSON is implemented explicitly so that the embedded time.Time's
// RFC 3339 representation is not used.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	return unmarshalJSONText(t, data)
}

func (t Time) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(t)
}

func (t *Time) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(t, value)
}

func (t Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(t, enc)
}

func (t *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(t, dec)
}
