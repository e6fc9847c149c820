package record

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidEnumValue is returned when a wire value does not resolve to a declared enum constant.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrDuplicateKey is returned by the Add<Field>Entry accessors when the key is already present.
	ErrDuplicateKey = errors.New("duplicate key")
)

func InvalidEnumValueError(enum, value string) error {
	return errors.Wrapf(ErrInvalidEnumValue, "cannot create %s from %q", enum, value)
}

func EmptyEnumValueError(enum string) error {
	return errors.Wrapf(ErrInvalidEnumValue, "%s value cannot be empty", enum)
}

func DuplicateKeyError(field, key string) error {
	return errors.Wrapf(ErrDuplicateKey, "duplicated key %q provided for %s", key, field)
}
