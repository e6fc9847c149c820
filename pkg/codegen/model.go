package codegen

import (
	"strings"
)

type FieldKind int

const (
	// ScalarField is a pointer to a string, number, boolean, timestamp or enum.
	ScalarField FieldKind = iota
	// RecordField is a pointer to another record of the package.
	RecordField
	ListField
	// MapField is a map keyed by string.
	MapField
)

func (k FieldKind) String() string {
	switch k {
	case ScalarField:
		return "scalar"
	case RecordField:
		return "record"
	case ListField:
		return "list"
	case MapField:
		return "map"
	}
	return "unknown"
}

// Field is one accessor-bearing field of a record.
type Field struct {
	Name     string
	WireName string
	// Type is the declared Go type, e.g. "[]*Output".
	Type string
	// Elem is the pointee for scalar and record fields, the element of a list and the
	// value of a map.
	Elem string
	Kind FieldKind
}

func (f Field) IsScalar() bool { return f.Kind == ScalarField }
func (f Field) IsRecord() bool { return f.Kind == RecordField }
func (f Field) IsList() bool   { return f.Kind == ListField }
func (f Field) IsMap() bool    { return f.Kind == MapField }

type Record struct {
	Name   string
	Fields []Field
}

type Enum struct {
	Name string
	// Constants are the declared constant names in source order.
	Constants []string
}

// Package is the parsed model of an API package.
type Package struct {
	Name    string
	Dir     string
	Records []Record
	Enums   []Enum
	// Warnings are lint findings. They never stop generation.
	Warnings []string
}

func (p *Package) hasKind(kind FieldKind) bool {
	for _, r := range p.Records {
		for _, f := range r.Fields {
			if f.Kind == kind {
				return true
			}
		}
	}
	return false
}

// StdImports lists the standard library packages the generated accessors need.
func (p *Package) StdImports() []string {
	var out []string
	if p.hasKind(MapField) {
		out = append(out, "maps")
	}
	if p.hasKind(ListField) {
		out = append(out, "slices")
	}
	if p.usesTime() {
		out = append(out, "time")
	}
	return out
}

func (p *Package) HasScalars() bool {
	return p.hasKind(ScalarField)
}

func (p *Package) usesTime() bool {
	for _, r := range p.Records {
		for _, f := range r.Fields {
			if f.Kind == ScalarField && strings.HasPrefix(f.Elem, "time.") {
				return true
			}
		}
	}
	return false
}
