package httpserdecodec

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeResponse(t *testing.T) {
	codecs := map[string]Codec{
		"JSON":    JSON{},
		"YAML":    YAML{},
		"Msgpack": Msgpack{},
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)

				response = httptest.NewRecorder()
			)

			require.NoError(EncodeResponse(response, c, testExchange(t)))
			assert.True(
				c.MediaType().Is(response.Header().Get("Content-Type")),
			)

			var actual exchange
			require.NoError(c.Unmarshal(response.Body.Bytes(), &actual))
			assert.Equal(testExchange(t), actual)
		})
	}
}

func TestDecodeRequest(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r = DefaultRegistry()
	)

	body, err := JSON{}.Marshal(testExchange(t))
	require.NoError(err)

	request := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json; charset=utf-8")

	var actual exchange
	require.NoError(DecodeRequest(r, request, &actual))
	assert.Equal(testExchange(t), actual)
}

func TestDecodeRequestErrors(t *testing.T) {
	var (
		assert = assert.New(t)

		r = DefaultRegistry()
	)

	// no Content-Type at all
	request := httptest.NewRequest("POST", "/", bytes.NewReader([]byte("{}")))
	var ignored exchange
	assert.Error(DecodeRequest(r, request, &ignored))

	// an unregistered media type
	request = httptest.NewRequest("POST", "/", bytes.NewReader([]byte("{}")))
	request.Header.Set("Content-Type", "application/xml")
	assert.ErrorIs(DecodeRequest(r, request, &ignored), ErrNoCodec)
}

func TestDecodeRequestRouted(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		registry = DefaultRegistry()
		decoded  exchange
	)

	router := mux.NewRouter()
	router.HandleFunc("/exchange", func(response http.ResponseWriter, request *http.Request) {
		if err := DecodeRequest(registry, request, &decoded); err != nil {
			response.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		response.WriteHeader(http.StatusNoContent)
	}).Methods("POST")

	body, err := Msgpack{}.Marshal(testExchange(t))
	require.NoError(err)

	request := httptest.NewRequest("POST", "/exchange", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/msgpack")

	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	require.Equal(http.StatusNoContent, response.Code)
	assert.Equal(testExchange(t), decoded)
}
