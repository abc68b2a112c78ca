package httpserde

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidMediaType indicates a media type that mime.FormatMediaType
	// refuses to format, including the zero value.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrNoContentType indicates an http.Header with no Content-Type key.
	ErrNoContentType = errors.New("no Content-Type header present")
)

// MediaType is a MIME type together with its parameters, e.g.
// "text/html; charset=utf-8".  Parsing and formatting delegate to the mime
// package, so the canonical representation is mime.FormatMediaType's output:
// a lower-cased type with sorted parameters.
//
// The zero value is not a valid media type and will fail to marshal.
type MediaType struct {
	// Type is the type and subtype, e.g. "application/json".
	Type string

	// Params holds any media type parameters.  May be nil.
	Params map[string]string
}

// ParseMediaType parses a media type via mime.ParseMediaType.
func ParseMediaType(v string) (MediaType, error) {
	mediatype, params, err := mime.ParseMediaType(v)
	if err != nil {
		return MediaType{}, err
	}

	if len(params) == 0 {
		params = nil
	}

	return MediaType{Type: mediatype, Params: params}, nil
}

func (mt MediaType) String() string {
	return mime.FormatMediaType(mt.Type, mt.Params)
}

// Is compares the type and subtype, ignoring parameters and case.
func (mt MediaType) Is(mediatype string) bool {
	return strings.EqualFold(mt.Type, mediatype)
}

func (mt MediaType) MarshalText() ([]byte, error) {
	formatted := mt.String()
	if len(formatted) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaType, mt.Type)
	}

	return []byte(formatted), nil
}

func (mt *MediaType) UnmarshalText(text []byte) (err error) {
	*mt, err = ParseMediaType(string(text))
	return
}

func (mt MediaType) MarshalYAML() (interface{}, error) {
	return marshalYAMLText(mt)
}

func (mt *MediaType) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLText(mt, value)
}

func (mt MediaType) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackText(mt, enc)
}

func (mt *MediaType) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(mt, dec)
}

// ContentType is a MediaType as carried by the Content-Type header.  It has
// the same serialized forms as MediaType plus accessors for reading and
// writing the header itself.
type ContentType struct {
	MediaType
}

// GetContentType parses the Content-Type key of the given header.
func GetContentType(h http.Header) (ContentType, error) {
	v := h.Get("Content-Type")
	if len(v) == 0 {
		return ContentType{}, ErrNoContentType
	}

	mt, err := ParseMediaType(v)
	return ContentType{MediaType: mt}, err
}

// SetTo writes this content type to the given header, replacing any
// existing value.
func (ct ContentType) SetTo(h http.Header) error {
	text, err := ct.MarshalText()
	if err != nil {
		return err
	}

	h.Set("Content-Type", string(text))
	return nil
}
