package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const apiDir = "../apis/mediaconvert.io/v1"

const widgetSource = `package widgets

import "time"

// Shape is the outline of a widget.
type Shape string

const (
	ShapeRound  Shape = "ROUND"
	ShapeSquare Shape = "SQUARE"
)

// Orphan has no constants and is reported.
type Orphan string

// Base is shared by requests.
// +mediaconvert:skip
type Base struct {
	Headers map[string]string
}

type Widget struct {
	Base ` + "`json:\"-\"`" + `

	Name    *string            ` + "`json:\"name,omitempty\"`" + `
	Shape   *Shape             ` + "`json:\"shape,omitempty\"`" + `
	Made    *time.Time         ` + "`json:\"made,omitempty\"`" + `
	Part    *Part              ` + "`json:\"part,omitempty\"`" + `
	Parts   []*Part            ` + "`json:\"parts,omitempty\"`" + `
	Labels  map[string]string  ` + "`json:\"labels,omitempty\"`" + `
	Hidden  *string            ` + "`json:\"-\"`" + `
	Colour  *string            ` + "`json:\"color,omitempty\"`" + `
	Child   []string           ` + "`json:\"child,omitempty\"`" + `
	private *string
}

type Part struct {
	Label *string ` + "`json:\"label,omitempty\"`" + `
}
`

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}
