// Package httpserde attaches serialization behavior to HTTP library types
// that do not natively support it.
//
// # Wrappers
//
// Types such as http.Header, http.Cookie, method tokens, status lines, media
// types, HTTP-dates, and URLs get thin wrappers that implement the standard
// marshal interfaces plus the YAML and msgpack codec hooks.  Each wrapper
// delegates parsing and formatting to the wrapped library; this package adds
// no grammar of its own.
//
//	var payload struct {
//	    Method  httpserde.Method `json:"method"`
//	    Headers httpserde.Header `json:"headers"`
//	}
//
// # Configuration
//
// The decode hooks in this package let the same wrappers be unmarshaled from
// viper configuration, and the UnmarshalXXX functions emit them as uber/fx
// components:
//
//	fx.New(
//	    fx.Supply(v), // a *viper.Viper
//	    fx.Provide(
//	        httpserde.UnmarshalKey("server.header", httpserde.Header{}),
//	    ),
//	)
package httpserde
