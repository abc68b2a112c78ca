package httpserdecodec

import (
	"io"
	"net/http"

	"github.com/xmidt-org/httpserde"
)

// EncodeResponse marshals v with the given codec, sets the response
// Content-Type from the codec's media type, and writes the body.
func EncodeResponse(response http.ResponseWriter, c Codec, v interface{}) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}

	ct := httpserde.ContentType{MediaType: c.MediaType()}
	if err := ct.SetTo(response.Header()); err != nil {
		return err
	}

	_, err = response.Write(data)
	return err
}

// DecodeRequest selects a codec from the registry using the request's
// Content-Type header, then unmarshals the request body into v.
func DecodeRequest(r *Registry, request *http.Request, v interface{}) error {
	ct, err := httpserde.GetContentType(request.Header)
	if err != nil {
		return err
	}

	c, err := r.Lookup(ct.String())
	if err != nil {
		return err
	}

	data, err := io.ReadAll(request.Body)
	if err != nil {
		return err
	}

	return c.Unmarshal(data, v)
}
