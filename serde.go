package httpserde

import (
	"encoding"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// The functions in this file adapt the canonical text form of a wrapper to
// the codec hooks of formats that do not honor encoding.TextMarshaler on
// their own.  encoding/json does honor it, so wrappers whose canonical form
// is a string need no JSON glue.

func marshalYAMLText(m encoding.TextMarshaler) (interface{}, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}

	return string(text), nil
}

func unmarshalYAMLText(u encoding.TextUnmarshaler, value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}

	return u.UnmarshalText([]byte(text))
}

func encodeMsgpackText(m encoding.TextMarshaler, enc *msgpack.Encoder) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}

	return enc.EncodeString(string(text))
}

func decodeMsgpackText(u encoding.TextUnmarshaler, dec *msgpack.Decoder) error {
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return u.UnmarshalText([]byte(text))
}

// unmarshalJSONText parses a JSON string and hands it to the given
// encoding.TextUnmarshaler.  Wrappers that override UnmarshalJSON for other
// reasons use this to keep the string case consistent with UnmarshalText.
func unmarshalJSONText(u encoding.TextUnmarshaler, data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	return u.UnmarshalText([]byte(text))
}
