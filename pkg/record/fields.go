package record

import (
	"fmt"
	"reflect"
)

// Field is one present value of a record.
type Field struct {
	// Name is the Go field name, which is also the name used by Prettify.
	Name string
	// WireName is the name the service uses for the field.
	WireName string
	// Path locates the value from the root record, e.g. Settings.OutputGroups[0].Name
	// or Settings.Inputs[0].AudioSelectors["Audio Selector 1"].Tracks[1].
	Path  string
	Value any
}

// WalkFunc is called by Walk for every present leaf value.
type WalkFunc func(f Field) error

// Present returns the fields of the record v that are set, in declaration order.
// Values are returned as stored, nested records and collections included.
func Present(v any) []Field {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || !isRecordType(rv.Type()) {
		return nil
	}
	var out []Field
	for _, f := range fields(rv.Type()) {
		fv := rv.Field(f.index)
		if isAbsent(fv) {
			continue
		}
		out = append(out, Field{Name: f.name, WireName: f.wireName, Path: f.name, Value: fv.Interface()})
	}
	return out
}

// Walk visits every present leaf (scalar, enum or timestamp) below v depth-first. Records
// are visited in field declaration order, lists by index and maps in key order. A record,
// list or map that is present but holds nothing is itself reported as a leaf, so empty
// values stay distinguishable from absent ones.
// The first error returned by fn stops the walk.
func Walk(v any, fn WalkFunc) error {
	return walk(reflect.ValueOf(v), "", "", "", fn)
}

func walk(v reflect.Value, path, name, wireName string, fn WalkFunc) error {
	v = indirect(v)
	if !v.IsValid() {
		return nil
	}
	empty := false
	switch {
	case isRecordType(v.Type()):
		empty = true
		for _, f := range fields(v.Type()) {
			fv := v.Field(f.index)
			if isAbsent(fv) {
				continue
			}
			empty = false
			fieldPath := f.name
			if path != "" {
				fieldPath = path + "." + f.name
			}
			if err := walk(fv, fieldPath, f.name, f.wireName, fn); err != nil {
				return err
			}
		}
	case v.Kind() == reflect.Slice:
		empty = v.Len() == 0
		for i := 0; i < v.Len(); i++ {
			if err := walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i), name, wireName, fn); err != nil {
				return err
			}
		}
	case v.Kind() == reflect.Map:
		empty = v.Len() == 0
		for _, k := range sortedKeys(v) {
			if err := walk(v.MapIndex(k), fmt.Sprintf("%s[%q]", path, keyString(k)), name, wireName, fn); err != nil {
				return err
			}
		}
	default:
		return fn(Field{Name: name, WireName: wireName, Path: path, Value: v.Interface()})
	}
	// the root record is not a field of anything
	if !empty || path == "" {
		return nil
	}
	return fn(Field{Name: name, WireName: wireName, Path: path, Value: v.Interface()})
}

// ToMap converts the record v into nested maps, slices and plain values keyed by wire
// name, leaving out absent fields. Enum values become plain strings. It is the hand-off
// point for an external marshaller.
func ToMap(v any) map[string]any {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || !isRecordType(rv.Type()) {
		return nil
	}
	m, _ := plain(rv).(map[string]any)
	return m
}

func plain(v reflect.Value) any {
	v = indirect(v)
	if !v.IsValid() {
		return nil
	}
	if v.Type() == timeType {
		return v.Interface()
	}
	switch v.Kind() {
	case reflect.Struct:
		m := make(map[string]any)
		for _, f := range fields(v.Type()) {
			fv := v.Field(f.index)
			if isAbsent(fv) {
				continue
			}
			m[f.wireName] = plain(fv)
		}
		return m
	case reflect.Slice:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = plain(v.Index(i))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[keyString(iter.Key())] = plain(iter.Value())
		}
		return out
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return v.Interface()
}
