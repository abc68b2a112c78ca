package httpserdecodec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xmidt-org/httpserde"
)

// ErrNoCodec indicates a media type for which no codec has been registered.
var ErrNoCodec = errors.New("no codec registered for media type")

// Registry holds codecs keyed by their canonical media type.  Lookups go
// through the media type parser, so parameters like charset are ignored
// when matching.
//
// A Registry is not safe for concurrent modification.  Registering
// everything up front and then only reading, as with a DefaultRegistry,
// is safe.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry builds a Registry containing the given codecs.  A codec whose
// media type matches an earlier one replaces it.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{
		codecs: make(map[string]Codec, len(codecs)),
	}

	for _, c := range codecs {
		r.Register(c)
	}

	return r
}

// DefaultRegistry builds a Registry holding every codec in this package.
func DefaultRegistry() *Registry {
	return NewRegistry(JSON{}, YAML{}, Msgpack{})
}

// Register adds a codec, replacing any previous codec for the same media type.
func (r *Registry) Register(c Codec) {
	r.codecs[strings.ToLower(c.MediaType().Type)] = c
}

// Lookup parses the given Content-Type value and returns the codec
// registered for its media type.  Parameters are ignored.
func (r *Registry) Lookup(contentType string) (Codec, error) {
	mt, err := httpserde.ParseMediaType(contentType)
	if err != nil {
		return nil, err
	}

	c, ok := r.codecs[mt.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCodec, mt.Type)
	}

	return c, nil
}
