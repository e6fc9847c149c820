package record

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

func TestEqual(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var testCases = []struct {
		name     string
		a, b     any
		expected bool
	}{
		{
			name:     "empty records",
			a:        &widget{},
			b:        &widget{},
			expected: true,
		},
		{
			name:     "both nil",
			a:        (*widget)(nil),
			b:        (*widget)(nil),
			expected: true,
		},
		{
			name:     "nil and empty",
			a:        (*widget)(nil),
			b:        &widget{},
			expected: false,
		},
		{
			name:     "absent and present",
			a:        &widget{},
			b:        &widget{Name: ptr.To("")},
			expected: false,
		},
		{
			name:     "same scalars",
			a:        &widget{Name: ptr.To("a"), Count: ptr.To[int64](3), Enabled: ptr.To(true), Color: ptr.To(colorRed)},
			b:        &widget{Name: ptr.To("a"), Count: ptr.To[int64](3), Enabled: ptr.To(true), Color: ptr.To(colorRed)},
			expected: true,
		},
		{
			name:     "different scalars",
			a:        &widget{Count: ptr.To[int64](3)},
			b:        &widget{Count: ptr.To[int64](4)},
			expected: false,
		},
		{
			name:     "NaN equals NaN",
			a:        &widget{Ratio: ptr.To(math.NaN())},
			b:        &widget{Ratio: ptr.To(math.NaN())},
			expected: true,
		},
		{
			name:     "same instant in different zones",
			a:        &widget{Created: ptr.To(created)},
			b:        &widget{Created: ptr.To(created.In(time.FixedZone("X", 3600)))},
			expected: true,
		},
		{
			name:     "absent list and empty list",
			a:        &widget{},
			b:        &widget{Sizes: []int64{}},
			expected: false,
		},
		{
			name:     "list order matters",
			a:        &widget{Sizes: []int64{1, 2}},
			b:        &widget{Sizes: []int64{2, 1}},
			expected: false,
		},
		{
			name:     "nested records",
			a:        &widget{Parts: []*part{{Label: ptr.To("x")}, nil}},
			b:        &widget{Parts: []*part{{Label: ptr.To("x")}, nil}},
			expected: true,
		},
		{
			name:     "nested records differ",
			a:        &widget{Parts: []*part{{Label: ptr.To("x")}}},
			b:        &widget{Parts: []*part{{Label: ptr.To("y")}}},
			expected: false,
		},
		{
			name:     "maps ignore insertion order",
			a:        &widget{Labels: map[string]string{"a": "1", "b": "2"}},
			b:        &widget{Labels: map[string]string{"b": "2", "a": "1"}},
			expected: true,
		},
		{
			name:     "maps with different keys",
			a:        &widget{Labels: map[string]string{"a": "1"}},
			b:        &widget{Labels: map[string]string{"b": "1"}},
			expected: false,
		},
		{
			name:     "skipped fields are ignored",
			a:        &widget{Hidden: ptr.To("a"), base: base{Headers: map[string]string{"x": "1"}}},
			b:        &widget{Hidden: ptr.To("b")},
			expected: true,
		},
		{
			name:     "different concrete types",
			a:        &widget{},
			b:        &part{},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Equal(tc.a, tc.b))
			assert.Equal(t, tc.expected, Equal(tc.b, tc.a), "symmetry")
			if tc.expected {
				assert.Equal(t, Hash(tc.a), Hash(tc.b), "equal records must hash identically")
			}
		})
	}
}

func TestEqualIsReflexiveAndTransitive(t *testing.T) {
	build := func() *widget {
		return &widget{
			Name:   ptr.To("w"),
			Parts:  []*part{{Color: ptr.To(colorBlue)}},
			Labels: map[string]string{"k": "v"},
		}
	}
	a, b, c := build(), build(), build()

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, c))
	assert.True(t, Equal(a, c))
}
