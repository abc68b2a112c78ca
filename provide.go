package httpserde

import (
	"reflect"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// UnmarshalIn is the set of dependencies for all UnmarshalXXX functions in
// this package
type UnmarshalIn struct {
	fx.In

	// Viper is the required Viper component in the enclosing fx.App
	Viper *viper.Viper

	// DecodeOptions are an optional set of options from the enclosing fx.App.
	// These are applied after DecodeHooks, so an application can override
	// the hooks this package installs.
	DecodeOptions []viper.DecoderConfigOption `optional:"true"`
}

// unmarshalProvider is the strategy type used to emit unmarshaled components
// into an fx.App
type unmarshalProvider struct {
	key           string
	component     reflect.Value
	target        reflect.Value
	decodeOptions []viper.DecoderConfigOption
}

// unmarshal performs the actual unmarshaling, using the function signature
// expected by reflect.MakeFunc.  DecodeHooks is always applied first so that
// the wrapper types in this package unmarshal from their canonical forms.
func (up unmarshalProvider) unmarshal(args []reflect.Value) []reflect.Value {
	u := args[0].Interface().(UnmarshalIn)
	options := Merge(
		[]viper.DecoderConfigOption{DecodeHooks},
		u.DecodeOptions,
		up.decodeOptions,
	)

	var err error
	if len(up.key) > 0 {
		err = u.Viper.UnmarshalKey(up.key, up.target.Interface(), options)
	} else {
		err = u.Viper.Unmarshal(up.target.Interface(), options)
	}

	errPtr := reflect.New(
		reflect.TypeOf((*error)(nil)).Elem(),
	)

	if err != nil {
		errPtr.Elem().Set(reflect.ValueOf(err))
	}

	return []reflect.Value{
		up.component,
		errPtr.Elem(),
	}
}

// provide creates the actual constructor function that unmarshals
// the appropriate type
func (up unmarshalProvider) provide() interface{} {
	return reflect.MakeFunc(
		reflect.FuncOf(
			// inputs:
			[]reflect.Type{reflect.TypeOf(UnmarshalIn{})},

			// outputs:
			[]reflect.Type{
				up.component.Type(),
				reflect.TypeOf((*error)(nil)).Elem(),
			},

			// we're not variadic:
			false,
		),
		up.unmarshal,
	).Interface()
}

// newUnmarshalProvider initializes an unmarshalProvider from a prototype object
func newUnmarshalProvider(key string, prototype interface{}, opts []viper.DecoderConfigOption) (up unmarshalProvider) {
	up.key = key
	up.decodeOptions = opts

	pvalue := reflect.ValueOf(prototype)
	if pvalue.Kind() == reflect.Ptr {
		up.target = reflect.New(pvalue.Type().Elem())
		if !pvalue.IsNil() {
			up.target.Elem().Set(pvalue.Elem())
		}

		up.component = up.target
	} else {
		up.target = reflect.New(pvalue.Type())
		up.target.Elem().Set(pvalue)
		up.component = up.target.Elem()
	}

	return
}

// Unmarshal returns a constructor function, suitable for fx.Provide, that
// produces an object unmarshaled from the viper component of the enclosing
// fx.App.  The component's type is taken from the prototype:
//
// If prototype is a pointer type, the component will be a pointer of the same
// type.  If prototype is a non-nil pointer, the object pointed to is used as
// the default value.  If prototype is not a pointer, the component will be of
// the same concrete type with the prototype copied as the default value.
//
//	v := viper.New() // initialization not shown
//	fx.New(
//	    fx.Supply(v),
//	    fx.Provide(
//	        httpserde.Unmarshal(RouteConfig{}),
//	    ),
//	)
func Unmarshal(prototype interface{}, opts ...viper.DecoderConfigOption) interface{} {
	return newUnmarshalProvider("", prototype, opts).provide()
}

// UnmarshalKey is like Unmarshal, but unmarshals from a specific
// configuration key.
//
//	fx.Provide(
//	    httpserde.UnmarshalKey("server.header", httpserde.Header{}),
//	)
func UnmarshalKey(key string, prototype interface{}, opts ...viper.DecoderConfigOption) interface{} {
	return newUnmarshalProvider(key, prototype, opts).provide()
}
