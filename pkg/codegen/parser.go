package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gobuffalo/flect"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	// SkipMarker in a type's doc comment keeps it out of generation.
	SkipMarker = "+mediaconvert:skip"

	generatedPrefix = "zz_generated_"
)

type typeDecl struct {
	name   string
	file   string
	spec   *ast.TypeSpec
	skip   bool
	isEnum bool
}

// Parse reads the hand-written Go files of the API package in dir and returns its records
// and enums. Generated files and tests are ignored. Errors from all files are reported
// together.
func Parse(dir string) (*Package, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	fset := token.NewFileSet()
	pkg := &Package{Dir: dir}
	var (
		decls     []*typeDecl
		constants = map[string][]string{}
		names     = mapset.NewThreadUnsafeSet[string]()
		errs      error
	)
	for _, path := range paths {
		base := filepath.Base(path)
		if strings.HasPrefix(base, generatedPrefix) || strings.HasSuffix(base, "_test.go") {
			continue
		}
		logrus.Debugf("parsing %s", path)
		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "failed to parse %s", base))
			continue
		}
		if pkg.Name == "" {
			pkg.Name = file.Name.Name
		} else if pkg.Name != file.Name.Name {
			errs = multierr.Append(errs, errors.Errorf("%s: package %s, expected %s", base, file.Name.Name, pkg.Name))
			continue
		}
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			switch gd.Tok {
			case token.TYPE:
				for _, spec := range gd.Specs {
					ts := spec.(*ast.TypeSpec)
					if !names.Add(ts.Name.Name) {
						errs = multierr.Append(errs, errors.Errorf("%s: type %s declared twice", base, ts.Name.Name))
						continue
					}
					d := typeDecl{name: ts.Name.Name, file: base, spec: ts, skip: !ts.Name.IsExported() || hasSkipMarker(gd, ts)}
					if ident, ok := ts.Type.(*ast.Ident); ok && ident.Name == "string" {
						d.isEnum = true
					}
					decls = append(decls, &d)
				}
			case token.CONST:
				for _, spec := range gd.Specs {
					vs := spec.(*ast.ValueSpec)
					ident, ok := vs.Type.(*ast.Ident)
					if !ok {
						continue
					}
					for _, n := range vs.Names {
						constants[ident.Name] = append(constants[ident.Name], n.Name)
					}
				}
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	if pkg.Name == "" {
		return nil, errors.Errorf("no Go files in %s", dir)
	}

	records := mapset.NewThreadUnsafeSet[string]()
	for _, d := range decls {
		if _, ok := d.spec.Type.(*ast.StructType); ok && !d.skip {
			records.Add(d.name)
		}
	}

	for _, d := range decls {
		switch {
		case d.skip:
			logrus.Debugf("skipping %s", d.name)
		case d.isEnum:
			consts := constants[d.name]
			if len(consts) == 0 {
				pkg.Warnings = append(pkg.Warnings, d.file+": "+d.name+" has no constants")
				continue
			}
			pkg.Enums = append(pkg.Enums, Enum{Name: d.name, Constants: consts})
		case records.Contains(d.name):
			r, warnings, err := parseRecord(d, records)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			pkg.Records = append(pkg.Records, r)
			pkg.Warnings = append(pkg.Warnings, warnings...)
		}
	}
	if errs != nil {
		return nil, errs
	}

	slices.SortFunc(pkg.Records, func(a, b Record) int { return strings.Compare(a.Name, b.Name) })
	slices.SortFunc(pkg.Enums, func(a, b Enum) int { return strings.Compare(a.Name, b.Name) })
	return pkg, nil
}

func hasSkipMarker(gd *ast.GenDecl, ts *ast.TypeSpec) bool {
	for _, doc := range []*ast.CommentGroup{ts.Doc, gd.Doc} {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			if strings.TrimSpace(strings.TrimPrefix(c.Text, "//")) == SkipMarker {
				return true
			}
		}
	}
	return false
}

func parseRecord(d *typeDecl, records mapset.Set[string]) (Record, []string, error) {
	r := Record{Name: d.name}
	var (
		warnings []string
		errs     error
	)
	for _, f := range d.spec.Type.(*ast.StructType).Fields.List {
		if len(f.Names) == 0 {
			// embedded request and response bases carry no accessors
			continue
		}
		wireName := ""
		if f.Tag != nil {
			tag, err := strconv.Unquote(f.Tag.Value)
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "%s: %s has a malformed tag", d.file, d.name))
				continue
			}
			wireName, _, _ = strings.Cut(reflect.StructTag(tag).Get("json"), ",")
		}
		if wireName == "-" {
			continue
		}

		for _, n := range f.Names {
			if !n.IsExported() {
				continue
			}
			field := Field{Name: n.Name, WireName: wireName, Type: types.ExprString(f.Type)}
			switch t := f.Type.(type) {
			case *ast.StarExpr:
				field.Elem = types.ExprString(t.X)
				field.Kind = ScalarField
				if records.Contains(field.Elem) {
					field.Kind = RecordField
				}
			case *ast.ArrayType:
				if t.Len != nil {
					errs = multierr.Append(errs, errors.Errorf("%s: %s.%s: arrays are not supported", d.file, d.name, n.Name))
					continue
				}
				field.Elem = types.ExprString(t.Elt)
				field.Kind = ListField
			case *ast.MapType:
				if key := types.ExprString(t.Key); key != "string" {
					errs = multierr.Append(errs, errors.Errorf("%s: %s.%s: map keys must be string, got %s", d.file, d.name, n.Name, key))
					continue
				}
				field.Elem = types.ExprString(t.Value)
				field.Kind = MapField
			default:
				errs = multierr.Append(errs, errors.Errorf("%s: %s.%s: field type %s must be a pointer, slice or map", d.file, d.name, n.Name, field.Type))
				continue
			}
			if field.WireName == "" {
				field.WireName = n.Name
			}
			warnings = append(warnings, lintField(d, field)...)
			r.Fields = append(r.Fields, field)
		}
	}
	return r, warnings, errs
}

// lintField flags names that drift from the service's conventions.
func lintField(d *typeDecl, f Field) []string {
	var out []string
	if want := strcase.ToLowerCamel(f.Name); !strings.EqualFold(f.WireName, want) {
		out = append(out, d.file+": "+d.name+"."+f.Name+": json name "+strconv.Quote(f.WireName)+", expected "+strconv.Quote(want))
	}
	if f.Kind == ListField || f.Kind == MapField {
		if plural := flect.Pluralize(flect.Singularize(f.Name)); plural != f.Name {
			out = append(out, d.file+": "+d.name+"."+f.Name+": collection field is not plural, consider "+plural)
		}
	}
	return out
}
