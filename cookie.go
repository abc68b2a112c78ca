package httpserde

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrNoCookie indicates a Cookie wrapper around a nil *http.Cookie.
var ErrNoCookie = errors.New("no cookie value to serialize")

// Cookie wraps an *http.Cookie in its Set-Cookie serialization, e.g.
// "session=abc; Path=/; Secure".  Validation of names, values, and
// attributes belongs entirely to net/http.
//
// Parsing fills the wrapped cookie's Raw fields, so two cookies that print
// identically need not be deeply equal.  Compare serialized forms instead.
type Cookie struct {
	*http.Cookie
}

// NewCookie wraps an existing cookie.  The cookie is not copied.
func NewCookie(c *http.Cookie) Cookie {
	return Cookie{Cookie: c}
}

// ParseCookie parses a Set-Cookie header value.
func ParseCookie(v string) (Cookie, error) {
	parsed, err := http.ParseSetCookie(v)
	if err != nil {
		return Cookie{}, err
	}

	return Cookie{Cookie: parsed}, nil
}

func (c Cookie) String() string {
	if c.Cookie == nil {
		return ""
	}

	return c.Cookie.String()
}

func (c Cookie) MarshalText() ([]byte, error) {
	if c.Cookie == nil {
		return nil, ErrNoCookie
	}

	if err := c.Cookie.Valid(); err != nil {
		return nil, err
	}

	return []byte(c.Cookie.String()), nil
}

func (c *Cookie) UnmarshalText(text []byte) (err error) {
	*c, err = ParseCookie(string(text))
	return
}

func (c Cookie) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(c)
}

func (c *Cookie) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(c, value)
}

func (c Cookie) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(c, enc)
}

func (c *Cookie) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(c, dec)
}

// Cookies is a Cookie request header line: name=value pairs joined by "; ".
// Attributes are not part of this representation.
//
// An empty Cookies serializes to the empty string, and the empty string
// parses to an empty Cookies.
type Cookies []Cookie

// ParseCookies parses a Cookie request header line.  Each pair is parsed
// through net/http; errors for individual pairs are aggregated.
func ParseCookies(v string) (Cookies, error) {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return nil, nil
	}

	var (
		cookies Cookies
		errs    error
	)

	for _, pair := range strings.Split(v, ";") {
		parsed, err := http.ParseCookie(strings.TrimSpace(pair))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("cookie pair %q: %w", pair, err))
			continue
		}

		for _, pc := range parsed {
			cookies = append(cookies, Cookie{Cookie: pc})
		}
	}

	if errs != nil {
		return nil, errs
	}

	return cookies, nil
}

func (cs Cookies) String() string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteString("; ")
		}

		if c.Cookie != nil {
			b.WriteString(c.Cookie.Name)
			b.WriteRune('=')
			b.WriteString(c.Cookie.Value)
		}
	}

	return b.String()
}

func (cs Cookies) MarshalText() ([]byte, error) {
	var errs error
	for _, c := range cs {
		switch {
		case c.Cookie == nil:
			errs = multierr.Append(errs, ErrNoCookie)

		default:
			// validate only the pair portion, attributes do not appear
			// in a Cookie header line
			pair := http.Cookie{Name: c.Cookie.Name, Value: c.Cookie.Value}
			if err := pair.Valid(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("cookie %q: %w", c.Cookie.Name, err))
			}
		}
	}

	if errs != nil {
		return nil, errs
	}

	return []byte(cs.String()), nil
}

func (cs *Cookies) UnmarshalText(text []byte) (err error) {
	*cs, err = ParseCookies(string(text))
	return
}

func (cs Cookies) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(cs)
}

func (cs *Cookies) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(cs, value)
}

func (cs Cookies) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(cs, enc)
}

func (cs *Cookies) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(cs, dec)
}
