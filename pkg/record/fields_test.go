package record

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestPresent(t *testing.T) {
	w := &widget{
		Name:   ptr.To("w"),
		Sizes:  []int64{},
		Hidden: ptr.To("h"),
	}

	fields := Present(w)
	require.Len(t, fields, 2)
	assert.Equal(t, Field{Name: "Name", WireName: "name", Path: "Name", Value: ptr.To("w")}, fields[0])
	assert.Equal(t, "Sizes", fields[1].Name)
	assert.Equal(t, "sizes", fields[1].WireName)

	assert.Empty(t, Present(&widget{}))
	assert.Nil(t, Present((*widget)(nil)))
	assert.Nil(t, Present("not a record"))
}

func TestWalk(t *testing.T) {
	w := &widget{
		Name:   ptr.To("w"),
		Color:  ptr.To(colorRed),
		Parts:  []*part{{Label: ptr.To("a")}, nil, {Color: ptr.To(colorBlue)}},
		Labels: map[string]string{"z": "26", "a": "1"},
	}

	var paths []string
	values := map[string]any{}
	err := Walk(w, func(f Field) error {
		paths = append(paths, f.Path)
		values[f.Path] = f.Value
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Name",
		"Color",
		"Parts[0].Label",
		"Parts[2].Color",
		`Labels["a"]`,
		`Labels["z"]`,
	}, paths)
	assert.Equal(t, "w", values["Name"])
	assert.Equal(t, colorRed, values["Color"])
	assert.Equal(t, "26", values[`Labels["z"]`])
}

func TestWalkReportsEmptyValues(t *testing.T) {
	w := &widget{
		Name:   ptr.To("w"),
		Parts:  []*part{{}, {Label: ptr.To("b")}},
		Sizes:  []int64{},
		Labels: map[string]string{},
	}

	var paths []string
	values := map[string]string{}
	require.NoError(t, Walk(w, func(f Field) error {
		paths = append(paths, f.Path)
		values[f.Path] = Prettify(f.Value)
		return nil
	}))

	assert.Equal(t, []string{"Name", "Parts[0]", "Parts[1].Label", "Sizes", "Labels"}, paths)
	assert.Equal(t, map[string]string{
		"Name":           "w",
		"Parts[0]":       "{}",
		"Parts[1].Label": "b",
		"Sizes":          "[]",
		"Labels":         "{}",
	}, values)

	var visited int
	require.NoError(t, Walk(&widget{}, func(Field) error {
		visited++
		return nil
	}))
	assert.Zero(t, visited, "an empty root record has no fields to report")
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	var visited int
	err := Walk(&widget{Name: ptr.To("a"), Count: ptr.To[int64](1)}, func(Field) error {
		visited++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, visited)
}

func TestToMap(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	w := &widget{
		Name:    ptr.To("w"),
		Count:   ptr.To[int64](2),
		Color:   ptr.To(colorRed),
		Created: ptr.To(created),
		Parts:   []*part{{Label: ptr.To("a")}},
		Labels:  map[string]string{"k": "v"},
		Hidden:  ptr.To("h"),
	}

	assert.Equal(t, map[string]any{
		"name":    "w",
		"count":   int64(2),
		"color":   "RED",
		"created": created,
		"parts":   []any{map[string]any{"label": "a"}},
		"labels":  map[string]any{"k": "v"},
	}, ToMap(w))
	assert.Equal(t, map[string]any{}, ToMap(&widget{}))
	assert.Nil(t, ToMap((*widget)(nil)))
}
