package httpserdecodec

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/xmidt-org/httpserde"
)

// Msgpack is the Codec for application/msgpack, backed by
// vmihailenco/msgpack.
type Msgpack struct{}

func (Msgpack) MediaType() httpserde.MediaType {
	return httpserde.MediaType{Type: "application/msgpack"}
}

func (Msgpack) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
