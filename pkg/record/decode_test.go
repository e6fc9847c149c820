package record

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestDecode(t *testing.T) {
	payload := map[string]any{
		"name":    "w",
		"count":   float64(7),
		"enabled": true,
		"color":   "BLUE",
		"created": "2024-03-01T10:00:00Z",
		"parts":   []any{map[string]any{"label": "a"}},
		"sizes":   []any{float64(1), float64(2)},
		"Labels":  map[string]any{"k": "v"},
		"unknown": "ignored",
	}

	var w widget
	require.NoError(t, Decode(payload, &w))

	expected := &widget{
		Name:    ptr.To("w"),
		Count:   ptr.To[int64](7),
		Enabled: ptr.To(true),
		Color:   ptr.To(colorBlue),
		Created: ptr.To(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		Parts:   []*part{{Label: ptr.To("a")}},
		Sizes:   []int64{1, 2},
		Labels:  map[string]string{"k": "v"},
	}
	assert.True(t, Equal(expected, &w), "decoded %s", Prettify(w))
	assert.Nil(t, w.Ratio)
}

func TestDecodeKeepsUnknownEnumValues(t *testing.T) {
	var w widget
	require.NoError(t, Decode(map[string]any{"color": "GREEN"}, &w))
	assert.Equal(t, color("GREEN"), *w.Color)
}

func TestDecodeStrictEnums(t *testing.T) {
	payload := map[string]any{
		"color": "GREEN",
		"parts": []any{map[string]any{"color": "PURPLE"}, map[string]any{"color": "RED"}},
	}

	var w widget
	err := Decode(payload, &w, StrictEnums())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))
	assert.Contains(t, err.Error(), `"GREEN"`)
	assert.Contains(t, err.Error(), `"PURPLE"`)
	assert.NotContains(t, err.Error(), `"RED"`)
}

func TestCheckEnums(t *testing.T) {
	assert.NoError(t, CheckEnums(&widget{Color: ptr.To(colorRed)}))

	err := CheckEnums(&widget{
		Color: ptr.To(color("GREEN")),
		Parts: []*part{{Color: ptr.To(colorBlue)}, {Color: ptr.To(color("PINK"))}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))
	assert.Contains(t, err.Error(), "Color: cannot create color from \"GREEN\"")
	assert.Contains(t, err.Error(), "Parts[1].Color: cannot create color from \"PINK\"")
}

func TestErrors(t *testing.T) {
	assert.True(t, errors.Is(InvalidEnumValueError("QueueStatus", "X"), ErrInvalidEnumValue))
	assert.True(t, errors.Is(EmptyEnumValueError("QueueStatus"), ErrInvalidEnumValue))
	assert.True(t, errors.Is(DuplicateKeyError("Tags", "k"), ErrDuplicateKey))
	assert.EqualError(t, DuplicateKeyError("Tags", "k"), `duplicated key "k" provided for Tags: duplicate key`)
	assert.EqualError(t, InvalidEnumValueError("QueueStatus", "X"), `cannot create QueueStatus from "X": invalid enum value`)
}
