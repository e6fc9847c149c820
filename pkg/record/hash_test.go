package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

func TestHashAbsentFieldsContributeZero(t *testing.T) {
	// nine fields take part, each absent one contributes 0: 1*31^9
	assert.Equal(t, uint64(26439622160671), Hash(&widget{}))
	// two fields: 1*31^2
	assert.Equal(t, uint64(961), Hash(&part{}))
	assert.Equal(t, uint64(0), Hash((*part)(nil)))
}

func TestHashDistinguishesValues(t *testing.T) {
	var testCases = []struct {
		name string
		a, b *widget
	}{
		{
			name: "absent and empty list",
			a:    &widget{},
			b:    &widget{Sizes: []int64{}},
		},
		{
			name: "list order",
			a:    &widget{Sizes: []int64{1, 2}},
			b:    &widget{Sizes: []int64{2, 1}},
		},
		{
			name: "booleans",
			a:    &widget{Enabled: ptr.To(true)},
			b:    &widget{Enabled: ptr.To(false)},
		},
		{
			name: "field position",
			a:    &widget{Name: ptr.To("x")},
			b:    &widget{Hidden: ptr.To("x"), Parts: []*part{{Label: ptr.To("x")}}},
		},
	}

	for _, tc := range testCases {
		assert.NotEqual(t, Hash(tc.a), Hash(tc.b), "case %q", tc.name)
	}
}

func TestHashIgnoresSkippedFields(t *testing.T) {
	a := &widget{Name: ptr.To("x")}
	b := &widget{Name: ptr.To("x"), Hidden: ptr.To("y")}
	b.Headers = map[string]string{"h": "v"}

	assert.Equal(t, Hash(a), Hash(b))
}
