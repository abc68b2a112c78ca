package httpserdecodec

import (
	"encoding/json"

	"github.com/xmidt-org/httpserde"
)

// JSON is the Codec for application/json, backed by encoding/json.
type JSON struct{}

func (JSON) MediaType() httpserde.MediaType {
	return httpserde.MediaType{Type: "application/json"}
}

func (JSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
