package codegen

const recordHeaderTemplate = `// Code generated by codegen. DO NOT EDIT.

package {{ .Name }}

import (
{{- range .StdImports }}
	"{{ . }}"
{{- end }}
{{- if .StdImports }}
{{ end }}
{{- if .HasScalars }}
	"k8s.io/utils/ptr"
{{ end }}
	"{{ recordImport }}"
)
`

const recordTemplate = `// New{{ .Name }} returns an empty {{ .Name }}.
func New{{ .Name }}() *{{ .Name }} {
	return &{{ .Name }}{}
}
{{- range .Fields }}
{{- if .IsScalar }}

// Set{{ .Name }} sets the {{ .Name }} field's value.
func (s *{{ $.Name }}) Set{{ .Name }}(v {{ .Elem }}) *{{ $.Name }} {
	s.{{ .Name }} = ptr.To(v)
	return s
}
{{- else if .IsRecord }}

// Set{{ .Name }} sets the {{ .Name }} field's value.
func (s *{{ $.Name }}) Set{{ .Name }}(v {{ .Type }}) *{{ $.Name }} {
	s.{{ .Name }} = v
	return s
}
{{- else if .IsList }}

// Set{{ .Name }} sets the {{ .Name }} field to a copy of v.
func (s *{{ $.Name }}) Set{{ .Name }}(v {{ .Type }}) *{{ $.Name }} {
	s.{{ .Name }} = slices.Clone(v)
	return s
}

// Append{{ .Name }} appends v to the {{ .Name }} field, creating it when absent.
func (s *{{ $.Name }}) Append{{ .Name }}(v ...{{ .Elem }}) *{{ $.Name }} {
	if s.{{ .Name }} == nil {
		s.{{ .Name }} = make({{ .Type }}, 0, len(v))
	}
	s.{{ .Name }} = append(s.{{ .Name }}, v...)
	return s
}
{{- else if .IsMap }}

// Set{{ .Name }} sets the {{ .Name }} field to a copy of v.
func (s *{{ $.Name }}) Set{{ .Name }}(v {{ .Type }}) *{{ $.Name }} {
	s.{{ .Name }} = maps.Clone(v)
	return s
}

// Add{{ .Name }}Entry adds a single entry to the {{ .Name }} field. It fails when key is already present.
func (s *{{ $.Name }}) Add{{ .Name }}Entry(key string, value {{ .Elem }}) (*{{ $.Name }}, error) {
	if s.{{ .Name }} == nil {
		s.{{ .Name }} = make({{ .Type }})
	}
	if _, ok := s.{{ .Name }}[key]; ok {
		return s, record.DuplicateKeyError("{{ .Name }}", key)
	}
	s.{{ .Name }}[key] = value
	return s, nil
}

// Clear{{ .Name }}Entries removes all entries of the {{ .Name }} field, leaving it absent.
func (s *{{ $.Name }}) Clear{{ .Name }}Entries() *{{ $.Name }} {
	s.{{ .Name }} = nil
	return s
}
{{- end }}
{{- end }}

func (s {{ .Name }}) String() string {
	return record.Prettify(s)
}

// Equal reports whether s and o hold the same field values.
func (s *{{ .Name }}) Equal(o *{{ .Name }}) bool {
	return record.Equal(s, o)
}

// Hash returns a hash consistent with Equal.
func (s *{{ .Name }}) Hash() uint64 {
	return record.Hash(s)
}
`

const simpleHeaderTemplate = `// Code generated by codegen. DO NOT EDIT.

package {{ .Name }}

import "{{ recordImport }}"
`

const enumTemplate = `// Values returns all known values for {{ .Name }}.
func ({{ .Name }}) Values() []{{ .Name }} {
	return []{{ .Name }}{
{{- range .Constants }}
		{{ . }},
{{- end }}
	}
}

func (e {{ .Name }}) String() string {
	return string(e)
}

// IsKnown reports whether e is one of the declared {{ .Name }} values.
func (e {{ .Name }}) IsKnown() bool {
	switch e {
	case {{ join .Constants ",\n\t\t" }}:
		return true
	}
	return false
}

// Parse{{ .Name }} returns the {{ .Name }} constant matching value.
func Parse{{ .Name }}(value string) ({{ .Name }}, error) {
	if value == "" {
		return "", record.EmptyEnumValueError("{{ .Name }}")
	}
	e := {{ .Name }}(value)
	if !e.IsKnown() {
		return "", record.InvalidEnumValueError("{{ .Name }}", value)
	}
	return e, nil
}
`

const registerTemplate = `func init() {
{{- range .Records }}
	registerRecord("{{ .Name }}", func() record.Record { return New{{ .Name }}() })
{{- end }}
{{ range .Enums }}
	registerEnum("{{ .Name }}", Parse{{ .Name }})
{{- end }}
}
`
