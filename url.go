package httpserde

import (
	"net/url"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// URL wraps a net/url.URL in its canonical string form.  Parse errors come
// straight from url.Parse.
type URL struct {
	url.URL
}

// NewURL wraps a copy of the given URL.  A nil source yields the zero URL.
func NewURL(u *url.URL) URL {
	if u == nil {
		return URL{}
	}

	return URL{URL: *u}
}

// ParseURL parses via url.Parse.
func ParseURL(v string) (URL, error) {
	u, err := url.Parse(v)
	if err != nil {
		return URL{}, err
	}

	return URL{URL: *u}, nil
}

func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.URL.String()), nil
}

func (u *URL) UnmarshalText(text []byte) (err error) {
	*u, err = ParseURL(string(text))
	return
}

func (u URL) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(u)
}

func (u *URL) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(u, value)
}

func (u URL) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(u, enc)
}

func (u *URL) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(u, dec)
}
