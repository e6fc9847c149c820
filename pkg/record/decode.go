package record

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type decodeOptions struct {
	strictEnums bool
}

// DecodeOption tunes Decode.
type DecodeOption func(*decodeOptions)

// StrictEnums makes Decode fail with ErrInvalidEnumValue when an enum field receives a
// value that is not a declared constant. By default such values are stored verbatim.
func StrictEnums() DecodeOption {
	return func(o *decodeOptions) {
		o.strictEnums = true
	}
}

// Decode populates the record out (a pointer) field by field from a parsed payload such
// as the map produced by a JSON or YAML decoder. Keys are matched against wire names,
// case-insensitively. Keys without a matching field are ignored and timestamps are read
// as RFC 3339 strings.
func Decode(in any, out any, opts ...DecodeOption) error {
	var options decodeOptions
	for _, opt := range opts {
		opt(&options)
	}

	var enumErrs error
	hooks := []mapstructure.DecodeHookFunc{
		mapstructure.StringToTimeHookFunc(time.RFC3339),
	}
	if options.strictEnums {
		hooks = append(hooks, strictEnumHook(&enumErrs))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create record decoder")
	}
	if err := decoder.Decode(in); err != nil {
		return errors.Wrapf(err, "failed to decode %T", out)
	}
	return enumErrs
}

func strictEnumHook(errs *error) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String || !to.Implements(enumType) {
			return data, nil
		}
		raw := reflect.ValueOf(data)
		if e := raw.Convert(to).Interface().(Enum); !e.IsKnown() {
			*errs = multierr.Append(*errs, InvalidEnumValueError(to.Name(), raw.String()))
		}
		return data, nil
	}
}

// CheckEnums walks v and reports every present enum value that is not a declared
// constant. It is never called implicitly; records accept unknown values.
func CheckEnums(v any) error {
	var errs error
	_ = Walk(v, func(f Field) error {
		if e, ok := f.Value.(Enum); ok && !e.IsKnown() {
			err := InvalidEnumValueError(reflect.TypeOf(e).Name(), e.String())
			errs = multierr.Append(errs, errors.WithMessage(err, f.Path))
		}
		return nil
	})
	return errs
}
