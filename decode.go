package httpserde

import (
	"encoding"
	"net/http"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	headerType          = reflect.TypeOf(Header{})
)

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that honors the
// destination type's encoding.TextUnmarshaler implementation, using it to
// convert the src.  The src parameter must be a string, or else this function
// does not attempt any conversion.
//
// Every wrapper in this package with a textual canonical form is covered by
// this hook, as are types like time.Time.  The to type may either be a
// non-pointer type whose pointer implements encoding.TextUnmarshaler, or a
// pointer type that implements it directly.  More than one level of
// indirection is not supported.
//
// In any case where this function does no conversion, it returns src and a
// nil error.  This is the contract required by mapstructure.DecodeHookFunc.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	if text, ok := src.(string); ok {
		switch {
		case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
			ptr := reflect.New(to)
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return ptr.Elem().Interface(), err

		case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
			ptr := reflect.New(to.Elem())
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return tu, err
		}
	}

	return src, nil
}

// HeaderHookFunc is a mapstructure.DecodeHookFunc that converts the map
// shapes configuration sources produce into a Header.  Each configuration
// key may carry a single string or a sequence of strings.
//
// Conversion is only attempted when the destination type is Header.
func HeaderHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	if to != headerType {
		return src, nil
	}

	switch m := src.(type) {
	case map[string]string:
		return NewHeaderFromMap(m), nil

	case map[string][]string:
		return NewHeader(http.Header(m)), nil

	case map[string]interface{}:
		return fromRawMap(m)
	}

	return src, nil
}

// DecodeHooks is a viper option that sets the decode hooks needed to
// unmarshal the types in this package, plus the stock hooks viper itself
// installs by default.
//
// Note that you can still use ComposeDecodeHooks with this option as long as
// you use it after this one.
func DecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		HeaderHookFunc,
		TextUnmarshalerHookFunc,
	)
}

// ComposeDecodeHooks adds more decode hook functions to mapstructure's
// DecoderConfig.  If there are already decode hooks, they are preserved and
// the given hooks are appended.
func ComposeDecodeHooks(fs ...mapstructure.DecodeHookFunc) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		if dc.DecodeHook != nil {
			dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
				append([]mapstructure.DecodeHookFunc{dc.DecodeHook},
					fs...,
				)...,
			)
		} else {
			dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(fs...)
		}
	}
}

// Merge takes any number of slices of decoder options and merges them
// into a single option.
//
// This function avoids consuming more heap to merge slices.  It simply
// iterates over all the given options, applying them in order.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}
