package v1

import (
	"reflect"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/harvester/mediaconvert/pkg/record"
)

var sampleTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// sample builds a legal, non-zero value of type t. Records come back empty but present.
func sample(t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		if t.Elem().Kind() != reflect.Struct || t.Elem() == reflect.TypeOf(time.Time{}) {
			p.Elem().Set(sample(t.Elem()))
		}
		return p
	case reflect.Struct:
		return reflect.ValueOf(sampleTime)
	case reflect.String:
		if values := reflect.Zero(t).MethodByName("Values"); values.IsValid() {
			return values.Call(nil)[0].Index(0)
		}
		return reflect.ValueOf("sample").Convert(t)
	case reflect.Int64:
		return reflect.ValueOf(int64(7)).Convert(t)
	case reflect.Float64:
		return reflect.ValueOf(1.5).Convert(t)
	case reflect.Bool:
		return reflect.ValueOf(true).Convert(t)
	case reflect.Slice:
		return reflect.Append(reflect.MakeSlice(t, 0, 1), sample(t.Elem()))
	case reflect.Map:
		m := reflect.MakeMap(t)
		m.SetMapIndex(reflect.ValueOf("k"), sample(t.Elem()))
		return m
	}
	Fail("no sample for " + t.String())
	return reflect.Value{}
}

func recordFields(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); !f.Anonymous {
			out = append(out, f)
		}
	}
	return out
}

func newRecord(kind string) reflect.Value {
	r, err := NewRecord(kind)
	Expect(err).NotTo(HaveOccurred())
	return reflect.ValueOf(r)
}

// set calls the generated Set<Field> accessor and returns the argument it was given.
func set(r reflect.Value, f reflect.StructField) reflect.Value {
	setter := r.MethodByName("Set" + f.Name)
	Expect(setter.IsValid()).To(BeTrue(), "missing Set%s", f.Name)
	arg := sample(setter.Type().In(0))
	out := setter.Call([]reflect.Value{arg})
	Expect(out[0].Pointer()).To(Equal(r.Pointer()), "Set%s returns its receiver", f.Name)
	return arg
}

func equal(a, b reflect.Value) bool {
	return a.MethodByName("Equal").Call([]reflect.Value{b})[0].Bool()
}

func hash(r reflect.Value) uint64 {
	return r.MethodByName("Hash").Call(nil)[0].Uint()
}

var _ = Describe("records", func() {
	for _, kind := range RecordKinds() {
		Context(kind, func() {
			It("starts with every field absent", func() {
				r := newRecord(kind)
				for _, f := range recordFields(r.Elem().Type()) {
					Expect(r.Elem().FieldByName(f.Name).IsNil()).To(BeTrue(), "field %s", f.Name)
				}
				Expect(record.Present(r.Interface())).To(BeEmpty())
				Expect(r.Interface().(record.Record).String()).To(Equal("{}"))
			})

			It("reads back what every setter stored", func() {
				r := newRecord(kind)
				for _, f := range recordFields(r.Elem().Type()) {
					arg := set(r, f)
					got := r.Elem().FieldByName(f.Name)
					if got.Type() == arg.Type() {
						Expect(got.Interface()).To(Equal(arg.Interface()), "field %s", f.Name)
					} else {
						Expect(got.Elem().Interface()).To(Equal(arg.Interface()), "field %s", f.Name)
					}
				}
			})

			It("prints a field only once it is set", func() {
				r := newRecord(kind)
				for _, f := range recordFields(r.Elem().Type()) {
					label := f.Name + ": "
					before := r.Interface().(record.Record).String()
					set(r, f)
					after := r.Interface().(record.Record).String()
					Expect(strings.Count(after, label)).To(BeNumerically(">", strings.Count(before, label)), "field %s", f.Name)
				}
			})

			It("is an equivalence with a consistent hash", func() {
				a, b, c := newRecord(kind), newRecord(kind), newRecord(kind)
				Expect(equal(a, a)).To(BeTrue())
				Expect(equal(a, b)).To(BeTrue())
				Expect(hash(a)).To(Equal(hash(b)))

				for _, f := range recordFields(a.Elem().Type()) {
					set(a, f)
					Expect(equal(a, b)).To(BeFalse(), "field %s", f.Name)
					set(b, f)
					set(c, f)
					Expect(equal(a, b)).To(BeTrue(), "field %s", f.Name)
					Expect(equal(b, a)).To(BeTrue(), "field %s", f.Name)
					Expect(equal(b, c) && equal(a, c)).To(BeTrue(), "field %s", f.Name)
					Expect(hash(a)).To(Equal(hash(b)), "field %s", f.Name)
				}
			})

			It("copies collections on set", func() {
				r := newRecord(kind)
				for _, f := range recordFields(r.Elem().Type()) {
					switch f.Type.Kind() {
					case reflect.Slice:
						arg := set(r, f)
						arg.Index(0).Set(reflect.Zero(f.Type.Elem()))
						Expect(r.Elem().FieldByName(f.Name).Index(0).IsZero()).To(BeFalse(), "field %s", f.Name)
					case reflect.Map:
						arg := set(r, f)
						arg.SetMapIndex(reflect.ValueOf("other"), sample(f.Type.Elem()))
						Expect(r.Elem().FieldByName(f.Name).Len()).To(Equal(1), "field %s", f.Name)
					}
				}
			})

			It("appends to list fields and rejects duplicate map keys", func() {
				r := newRecord(kind)
				for _, f := range recordFields(r.Elem().Type()) {
					switch f.Type.Kind() {
					case reflect.Slice:
						appendTo := r.MethodByName("Append" + f.Name)
						elem := sample(f.Type.Elem())
						appendTo.Call([]reflect.Value{elem, elem})
						Expect(r.Elem().FieldByName(f.Name).Len()).To(Equal(2), "field %s", f.Name)
					case reflect.Map:
						add := r.MethodByName("Add" + f.Name + "Entry")
						elem := sample(f.Type.Elem())
						out := add.Call([]reflect.Value{reflect.ValueOf("k"), elem})
						Expect(out[1].IsNil()).To(BeTrue(), "field %s", f.Name)
						out = add.Call([]reflect.Value{reflect.ValueOf("k"), elem})
						err, _ := out[1].Interface().(error)
						Expect(errors.Is(err, record.ErrDuplicateKey)).To(BeTrue(), "field %s", f.Name)

						r.MethodByName("Clear" + f.Name + "Entries").Call(nil)
						Expect(r.Elem().FieldByName(f.Name).IsNil()).To(BeTrue(), "field %s", f.Name)
					}
				}
			})
		})
	}
})

var _ = Describe("enums", func() {
	for _, name := range EnumNames() {
		It(name+" round-trips every value", func() {
			values, err := EnumValues(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(values).NotTo(BeEmpty())
			for _, v := range values {
				e, err := ParseEnum(name, v)
				Expect(err).NotTo(HaveOccurred())
				Expect(e.String()).To(Equal(v))
				Expect(e.IsKnown()).To(BeTrue())
			}

			_, err = ParseEnum(name, "NOT_A_"+name)
			Expect(errors.Is(err, record.ErrInvalidEnumValue)).To(BeTrue())
			_, err = ParseEnum(name, "")
			Expect(errors.Is(err, record.ErrInvalidEnumValue)).To(BeTrue())
		})
	}
})
