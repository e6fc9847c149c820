package record

import (
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	hashSeed       uint64 = 1
	hashMultiplier uint64 = 31

	hashTrue  uint64 = 1231
	hashFalse uint64 = 1237
)

// Hash combines the fields of v in declaration order: h = 31*h + hash(field), starting
// from 1. Absent fields contribute 0. Lists hash in order, maps independently of order.
// Values that are Equal always hash identically.
func Hash(v any) uint64 {
	return hashValue(reflect.ValueOf(v))
}

func hashValue(v reflect.Value) uint64 {
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			return uint64(v.Interface().(time.Time).UnixNano())
		}
		h := hashSeed
		for _, f := range fields(v.Type()) {
			h = h*hashMultiplier + hashValue(v.Field(f.index))
		}
		return h
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		h := hashSeed
		for i := 0; i < v.Len(); i++ {
			h = h*hashMultiplier + hashValue(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		var h uint64
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key()) ^ hashValue(iter.Value())
		}
		return h
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Bool:
		if v.Bool() {
			return hashTrue
		}
		return hashFalse
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return math.Float64bits(v.Float())
	}
	return 0
}
