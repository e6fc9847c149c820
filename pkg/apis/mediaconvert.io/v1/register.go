package v1

import (
	"maps"
	"slices"

	"github.com/pkg/errors"

	"github.com/harvester/mediaconvert/pkg/record"
)

var (
	ErrUnknownKind = errors.New("unknown record kind")
	ErrUnknownEnum = errors.New("unknown enum")

	recordFactories = map[string]func() record.Record{}
	enumRegistry    = map[string]enumEntry{}
)

type enumEntry struct {
	values func() []string
	parse  func(string) (record.Enum, error)
}

type enumType[E any] interface {
	~string
	record.Enum
	Values() []E
}

func registerRecord(kind string, factory func() record.Record) {
	recordFactories[kind] = factory
}

func registerEnum[E enumType[E]](name string, parse func(string) (E, error)) {
	enumRegistry[name] = enumEntry{
		values: func() []string {
			var zero E
			return enumStrings(zero.Values())
		},
		parse: func(value string) (record.Enum, error) {
			e, err := parse(value)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
	}
}

func enumStrings[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// NewRecord returns an empty record of the given kind, e.g. "CreateQueueRequest".
func NewRecord(kind string) (record.Record, error) {
	factory, ok := recordFactories[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	return factory(), nil
}

// RecordKinds returns the names of all record kinds, sorted.
func RecordKinds() []string {
	return slices.Sorted(maps.Keys(recordFactories))
}

// EnumNames returns the names of all enumerations, sorted.
func EnumNames() []string {
	return slices.Sorted(maps.Keys(enumRegistry))
}

// EnumValues returns the wire values of the named enumeration in declaration order.
func EnumValues(name string) ([]string, error) {
	entry, ok := enumRegistry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEnum, "%q", name)
	}
	return entry.values(), nil
}

// ParseEnum resolves value against the named enumeration.
func ParseEnum(name, value string) (record.Enum, error) {
	entry, ok := enumRegistry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEnum, "%q", name)
	}
	return entry.parse(value)
}
