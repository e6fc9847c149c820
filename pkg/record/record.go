// Package record holds the reflection helpers behind every generated model type:
// structural equality, hashing, debug printing, field enumeration and decoding.
package record

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Record is implemented by every generated model type.
type Record interface {
	fmt.Stringer
	Hash() uint64
}

// Enum is implemented by every generated string enumeration.
type Enum interface {
	fmt.Stringer
	IsKnown() bool
}

const fieldCacheSize = 1024

var (
	timeType = reflect.TypeOf(time.Time{})
	enumType = reflect.TypeOf((*Enum)(nil)).Elem()

	fieldCache = newFieldCache()
)

type fieldInfo struct {
	index    int
	name     string
	wireName string
}

func newFieldCache() *lru.Cache[reflect.Type, []fieldInfo] {
	cache, err := lru.New[reflect.Type, []fieldInfo](fieldCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}

// fields returns the exported fields of struct type t that take part in record semantics,
// in declaration order. Embedded structs and fields tagged `json:"-"` are skipped.
func fields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Get(t); ok {
		return cached
	}
	out := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		wireName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if wireName == "-" {
			continue
		}
		if wireName == "" {
			wireName = f.Name
		}
		out = append(out, fieldInfo{index: i, name: f.Name, wireName: wireName})
	}
	fieldCache.Add(t, out)
	return out
}

func isRecordType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t != timeType
}

// isAbsent reports whether a field value is in the "not set" state.
func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return !v.IsValid()
}

// indirect follows pointers and interfaces. A nil along the way yields the zero Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
