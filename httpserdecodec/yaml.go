package httpserdecodec

import (
	"github.com/xmidt-org/httpserde"
	"gopkg.in/yaml.v3"
)

// YAML is the Codec for application/yaml, backed by gopkg.in/yaml.v3.
type YAML struct{}

func (YAML) MediaType() httpserde.MediaType {
	return httpserde.MediaType{Type: "application/yaml"}
}

func (YAML) Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}
