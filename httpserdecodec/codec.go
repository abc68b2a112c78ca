// Package httpserdecodec provides pluggable byte-level codecs keyed by media
// type, so that values built from httpserde wrappers can be encoded for any
// of the supported formats.
package httpserdecodec

import "github.com/xmidt-org/httpserde"

// Codec is a media-type aware marshaling strategy.
type Codec interface {
	// MediaType returns the media type this codec produces and consumes,
	// e.g. "application/json".
	MediaType() httpserde.MediaType

	// Marshal encodes v into bytes.
	Marshal(v interface{}) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v interface{}) error
}
