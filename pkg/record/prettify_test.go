package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

func TestPrettify(t *testing.T) {
	var testCases = []struct {
		name     string
		given    any
		expected string
	}{
		{
			name:     "empty record",
			given:    widget{},
			expected: "{}",
		},
		{
			name:     "pointer to record",
			given:    &widget{Name: ptr.To("MyQueue"), Color: ptr.To(colorRed)},
			expected: "{Name: MyQueue,Color: RED}",
		},
		{
			name:     "numbers and booleans",
			given:    widget{Count: ptr.To[int64](42), Ratio: ptr.To(1.5), Enabled: ptr.To(false)},
			expected: "{Count: 42,Ratio: 1.5,Enabled: false}",
		},
		{
			name:     "timestamp",
			given:    widget{Created: ptr.To(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))},
			expected: "{Created: 2024-03-01T10:00:00Z}",
		},
		{
			name:     "nested list of records",
			given:    widget{Parts: []*part{{Label: ptr.To("a")}, {Color: ptr.To(colorBlue)}, nil}},
			expected: "{Parts: [{Label: a}, {Color: BLUE}, <nil>]}",
		},
		{
			name:     "empty list is present",
			given:    widget{Sizes: []int64{}},
			expected: "{Sizes: []}",
		},
		{
			name:     "map in key order",
			given:    widget{Labels: map[string]string{"b": "2", "a": "1"}},
			expected: "{Labels: {a=1, b=2}}",
		},
		{
			name:     "skipped fields never render",
			given:    widget{Hidden: ptr.To("secret")},
			expected: "{}",
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Prettify(tc.given), "case %q", tc.name)
	}
}

func TestPrettifyOmitsAbsentFields(t *testing.T) {
	w := &widget{Name: ptr.To("w")}
	assert.NotContains(t, Prettify(w), "Count:")

	w.Count = ptr.To[int64](0)
	assert.Contains(t, Prettify(w), "Count: 0")
}
