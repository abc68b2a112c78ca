package httpserde

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestNewHeader(t *testing.T) {
	var (
		assert = assert.New(t)

		src = http.Header{
			"content-type":    {"application/json"},
			"x-custom":        {"value1", "value2"},
			"Empty-Values":    {},
			"":                {"ignored"},
			"Already-Correct": {"yes"},
		}
	)

	h := NewHeader(src)
	assert.Equal(3, h.Len())
	assert.Equal("application/json", h.Get("Content-Type"))
	assert.Equal([]string{"value1", "value2"}, h.Values("X-Custom"))
	assert.Equal("yes", h.Get("Already-Correct"))
	assert.Nil(h.Values("Empty-Values"))

	// the copy must be deep
	src.Set("X-Custom", "changed")
	assert.Equal([]string{"value1", "value2"}, h.Values("X-Custom"))

	assert.Equal([]string{"Already-Correct", "Content-Type", "X-Custom"}, h.Names())
}

func TestNewHeaderEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Zero(NewHeader(nil).Len())
	assert.Zero(NewHeader(http.Header{}).Len())
	assert.Zero(NewHeaderFromMap(nil).Len())
	assert.Nil(Header{}.Names())
	assert.Equal(http.Header{}, Header{}.Clone())
}

func TestNewHeaderFromMap(t *testing.T) {
	assert := assert.New(t)

	h := NewHeaderFromMap(map[string]string{
		"content-type": "text/plain",
		"x-thing":      "value",
	})

	assert.Equal(2, h.Len())
	assert.Equal("text/plain", h.Get("Content-Type"))
	assert.Equal("value", h.Get("X-Thing"))
}

func TestHeaderAddTo(t *testing.T) {
	var (
		assert = assert.New(t)

		dst = http.Header{"X-Existing": {"old"}}
	)

	NewHeaderFromMap(map[string]string{
		"X-Existing": "new",
		"X-Other":    "value",
	}).AddTo(dst)

	assert.Equal([]string{"old", "new"}, dst.Values("X-Existing"))
	assert.Equal([]string{"value"}, dst.Values("X-Other"))
}

func TestHeaderSetTo(t *testing.T) {
	var (
		assert = assert.New(t)

		dst = http.Header{"X-Existing": {"old"}}
	)

	NewHeaderFromMap(map[string]string{"X-Existing": "new"}).SetTo(dst)
	assert.Equal([]string{"new"}, dst.Values("X-Existing"))
}

func TestHeaderThen(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		h = NewHeaderFromMap(map[string]string{"X-Powered-By": "httpserde"})

		handler = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			response.WriteHeader(299)
		})
	)

	// an empty Header must not decorate the response
	var (
		undecorated   = Header{}.Then(handler)
		emptyResponse = httptest.NewRecorder()
		emptyRequest  = httptest.NewRequest("GET", "/", nil)
	)

	undecorated.ServeHTTP(emptyResponse, emptyRequest)
	assert.Equal(299, emptyResponse.Code)
	assert.Empty(emptyResponse.Header().Get("X-Powered-By"))

	router := mux.NewRouter()
	router.Handle("/test", alice.New(h.Then).Then(handler))

	var (
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/test", nil)
	)

	router.ServeHTTP(response, request)
	require.Equal(299, response.Code)
	assert.Equal("httpserde", response.Header().Get("X-Powered-By"))
}

func TestHeaderJSON(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		h = NewHeader(http.Header{
			"Content-Type": {"application/json"},
			"X-Multi":      {"a", "b"},
		})
	)

	data, err := json.Marshal(h)
	require.NoError(err)
	assert.JSONEq(
		`{"Content-Type": ["application/json"], "X-Multi": ["a", "b"]}`,
		string(data),
	)

	var parsed Header
	require.NoError(json.Unmarshal(data, &parsed))
	assert.Equal(h, parsed)
}

func TestHeaderJSONEmpty(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	data, err := json.Marshal(Header{})
	require.NoError(err)
	assert.JSONEq(`{}`, string(data))

	var parsed Header
	require.NoError(json.Unmarshal([]byte(`{}`), &parsed))
	assert.Zero(parsed.Len())
}

func TestHeaderJSONScalarValues(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		parsed Header
	)

	// single strings are accepted in place of one-element arrays
	require.NoError(
		parsed.UnmarshalJSON([]byte(`{"x-single": "value", "x-multi": ["a", "b"]}`)),
	)

	assert.Equal("value", parsed.Get("X-Single"))
	assert.Equal([]string{"a", "b"}, parsed.Values("X-Multi"))
}

func TestHeaderJSONInvalid(t *testing.T) {
	var (
		assert = assert.New(t)

		parsed Header
	)

	assert.Error(parsed.UnmarshalJSON([]byte(`"not a map"`)))

	// every invalid name and value must be reported
	err := parsed.UnmarshalJSON([]byte(`{"bad name": "x", "X-Num": 42, "X-Ok": "fine"}`))
	assert.Error(err)
	assert.Contains(err.Error(), "bad name")
	assert.Contains(err.Error(), "X-Num")
}

func TestHeaderYAML(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		h = NewHeader(http.Header{
			"Content-Type": {"application/json"},
			"X-Multi":      {"a", "b"},
		})
	)

	data, err := yaml.Marshal(h)
	require.NoError(err)

	var parsed Header
	require.NoError(yaml.Unmarshal(data, &parsed))
	assert.Equal(h, parsed)

	// scalar values work in YAML as well
	require.NoError(yaml.Unmarshal([]byte("x-single: value\n"), &parsed))
	assert.Equal("value", parsed.Get("X-Single"))
}

func TestHeaderMsgpack(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		h = NewHeader(http.Header{
			"Content-Type": {"application/json"},
			"X-Multi":      {"a", "b"},
		})
	)

	data, err := msgpack.Marshal(h)
	require.NoError(err)

	var parsed Header
	require.NoError(msgpack.Unmarshal(data, &parsed))
	assert.Equal(h, parsed)
}
