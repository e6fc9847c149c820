package codegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateWidgets(t *testing.T) (string, map[string]string) {
	t.Helper()
	dir := writePackage(t, map[string]string{"widget.go": widgetSource})
	pkg, err := Parse(dir)
	require.NoError(t, err)
	files, err := Generate(pkg)
	require.NoError(t, err)

	out := map[string]string{}
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return dir, out
}

func TestGenerate(t *testing.T) {
	_, files := generateWidgets(t)
	require.Len(t, files, 3)

	record := files[RecordFile]
	assert.True(t, strings.HasPrefix(record, generatedHeader+"\n\npackage widgets\n"))
	for _, want := range []string{
		"\t\"maps\"\n\t\"slices\"\n\t\"time\"\n\n\t\"k8s.io/utils/ptr\"\n\n\t\"" + RecordImport + "\"\n",
		"func NewWidget() *Widget {\n\treturn &Widget{}\n}\n",
		"func (s *Widget) SetName(v string) *Widget {\n\ts.Name = ptr.To(v)\n",
		"func (s *Widget) SetShape(v Shape) *Widget {",
		"func (s *Widget) SetMade(v time.Time) *Widget {",
		"func (s *Widget) SetPart(v *Part) *Widget {\n\ts.Part = v\n",
		"func (s *Widget) SetParts(v []*Part) *Widget {\n\ts.Parts = slices.Clone(v)\n",
		"func (s *Widget) AppendParts(v ...*Part) *Widget {",
		"func (s *Widget) SetLabels(v map[string]string) *Widget {\n\ts.Labels = maps.Clone(v)\n",
		"func (s *Widget) AddLabelsEntry(key string, value string) (*Widget, error) {",
		"return s, record.DuplicateKeyError(\"Labels\", key)",
		"func (s *Widget) ClearLabelsEntries() *Widget {",
		"func (s Widget) String() string {",
		"func (s *Widget) Equal(o *Widget) bool {",
		"func (s *Widget) Hash() uint64 {",
	} {
		assert.Contains(t, record, want)
	}
	assert.NotContains(t, record, "SetHidden")
	assert.NotContains(t, record, "SetBase")
	assert.NotContains(t, record, "Setprivate")
	assert.NotContains(t, record, "NewBase")

	enum := files[EnumFile]
	assert.Contains(t, enum, "\treturn []Shape{\n\t\tShapeRound,\n\t\tShapeSquare,\n\t}\n")
	assert.Contains(t, enum, "\tcase ShapeRound,\n\t\tShapeSquare:\n\t\treturn true\n")
	assert.Contains(t, enum, "func ParseShape(value string) (Shape, error) {")
	assert.NotContains(t, enum, "Orphan")

	assert.Contains(t, files[RegisterFile],
		"func init() {\n"+
			"\tregisterRecord(\"Part\", func() record.Record { return NewPart() })\n"+
			"\tregisterRecord(\"Widget\", func() record.Record { return NewWidget() })\n"+
			"\n"+
			"\tregisterEnum(\"Shape\", ParseShape)\n"+
			"}\n")
}

func TestRunWritesAndVerifies(t *testing.T) {
	dir := writePackage(t, map[string]string{"widget.go": widgetSource})
	ctx := context.Background()

	err := Run(ctx, Options{Dir: dir, Verify: true})
	require.Error(t, err, "nothing generated yet")

	require.NoError(t, Run(ctx, Options{Dir: dir}))
	for _, name := range []string{RecordFile, EnumFile, RegisterFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	require.NoError(t, Run(ctx, Options{Dir: dir, Verify: true}))

	stale := filepath.Join(dir, EnumFile)
	require.NoError(t, os.WriteFile(stale, []byte(generatedHeader+"\n\npackage widgets\n"), 0644))
	err = Run(ctx, Options{Dir: dir, Verify: true})
	assert.True(t, errors.Is(err, ErrStale))
	assert.Contains(t, err.Error(), EnumFile)
}

func TestCheckedInCodeIsUpToDate(t *testing.T) {
	require.NoError(t, Run(context.Background(), Options{Dir: apiDir, Verify: true}))
}
