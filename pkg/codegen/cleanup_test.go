package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanup(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"widget.go": widgetSource,
		RecordFile:  generatedHeader + "\n\npackage widgets\n",
	})
	nested := filepath.Join(dir, "v2")
	require.NoError(t, os.Mkdir(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, EnumFile), []byte(generatedHeader+"\n\npackage v2\n"), 0644))

	removed, err := Cleanup(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, RecordFile), filepath.Join(nested, EnumFile)}, removed)

	assert.NoFileExists(t, filepath.Join(dir, RecordFile))
	assert.NoFileExists(t, filepath.Join(nested, EnumFile))
	assert.FileExists(t, filepath.Join(dir, "widget.go"))
}

func TestCleanupKeepsHandWrittenFiles(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"widget.go":                widgetSource,
		RecordFile:                 generatedHeader + "\n\npackage widgets\n",
		"zz_generated_handmade.go": "package widgets\n",
	})

	_, err := Cleanup(dir)
	assert.True(t, errors.Is(err, ErrHandWritten))
	assert.ErrorContains(t, err, "zz_generated_handmade.go")

	assert.FileExists(t, filepath.Join(dir, RecordFile), "nothing is removed when a file is refused")
	assert.FileExists(t, filepath.Join(dir, "zz_generated_handmade.go"))
}

func TestCleanupMissingDir(t *testing.T) {
	_, err := Cleanup(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
