package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParse(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"widget.go":              widgetSource,
		"widget_test.go":         "package widgets\n\nthis is not go",
		"zz_generated_record.go": "package widgets\n\nthis is not go either",
	})

	pkg, err := Parse(dir)
	require.NoError(t, err)
	assert.Equal(t, "widgets", pkg.Name)

	require.Len(t, pkg.Enums, 1)
	assert.Equal(t, Enum{Name: "Shape", Constants: []string{"ShapeRound", "ShapeSquare"}}, pkg.Enums[0])

	require.Len(t, pkg.Records, 2)
	assert.Equal(t, "Part", pkg.Records[0].Name)
	widget := pkg.Records[1]
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, []Field{
		{Name: "Name", WireName: "name", Type: "*string", Elem: "string", Kind: ScalarField},
		{Name: "Shape", WireName: "shape", Type: "*Shape", Elem: "Shape", Kind: ScalarField},
		{Name: "Made", WireName: "made", Type: "*time.Time", Elem: "time.Time", Kind: ScalarField},
		{Name: "Part", WireName: "part", Type: "*Part", Elem: "Part", Kind: RecordField},
		{Name: "Parts", WireName: "parts", Type: "[]*Part", Elem: "*Part", Kind: ListField},
		{Name: "Labels", WireName: "labels", Type: "map[string]string", Elem: "string", Kind: MapField},
		{Name: "Colour", WireName: "color", Type: "*string", Elem: "string", Kind: ScalarField},
		{Name: "Child", WireName: "child", Type: "[]string", Elem: "string", Kind: ListField},
	}, widget.Fields)

	assert.Equal(t, []string{"maps", "slices", "time"}, pkg.StdImports())
	assert.True(t, pkg.HasScalars())

	assert.Len(t, pkg.Warnings, 3)
	assert.Contains(t, pkg.Warnings, "widget.go: Orphan has no constants")
	assert.Contains(t, pkg.Warnings, `widget.go: Widget.Colour: json name "color", expected "colour"`)
	assert.Contains(t, pkg.Warnings[2], "widget.go: Widget.Child: collection field is not plural")
}

func TestParseErrors(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"broken.go": "package widgets\n\ntype Broken struct {",
		"fields.go": "package widgets\n\ntype Bad struct {\n\tCount int64\n\tByID map[int64]*string\n}\n",
	})
	_, err := Parse(dir)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1, "parse errors stop before records are built")
	assert.Contains(t, err.Error(), "failed to parse broken.go")

	dir = writePackage(t, map[string]string{
		"fields.go": "package widgets\n\ntype Bad struct {\n\tCount int64\n\tByID map[int64]*string\n\tFixed [2]string\n}\n",
	})
	_, err = Parse(dir)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "Bad.Count: field type int64 must be a pointer, slice or map")
	assert.Contains(t, errs[1].Error(), "Bad.ByID: map keys must be string, got int64")
	assert.Contains(t, errs[2].Error(), "Bad.Fixed: arrays are not supported")
}

func TestParseRejectsDuplicateTypes(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"a.go": "package widgets\n\ntype Part struct{}\n",
		"b.go": "package widgets\n\ntype Part struct{}\n",
	})
	_, err := Parse(dir)
	assert.ErrorContains(t, err, "type Part declared twice")
}

func TestParseEmptyDir(t *testing.T) {
	_, err := Parse(t.TempDir())
	assert.ErrorContains(t, err, "no Go files")
}

func TestParseCatalogue(t *testing.T) {
	pkg, err := Parse(apiDir)
	require.NoError(t, err)
	assert.Equal(t, "v1", pkg.Name)

	names := make([]string, 0, len(pkg.Records))
	for _, r := range pkg.Records {
		names = append(names, r.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "CreateQueueRequest")
	assert.NotContains(t, names, "RequestBase")
	assert.NotContains(t, names, "ResponseMetadata")

	for _, w := range pkg.Warnings {
		assert.NotContains(t, w, "json name", "catalogue wire names follow the field names")
	}
}
