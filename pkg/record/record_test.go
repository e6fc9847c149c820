package record

import (
	"time"
)

type color string

const (
	colorRed  color = "RED"
	colorBlue color = "BLUE"
)

func (c color) String() string {
	return string(c)
}

func (c color) IsKnown() bool {
	switch c {
	case colorRed, colorBlue:
		return true
	}
	return false
}

type part struct {
	Label *string `json:"label,omitempty"`
	Color *color  `json:"color,omitempty"`
}

type base struct {
	Headers map[string]string `json:"-"`
}

type widget struct {
	base `json:"-"`

	Name    *string           `json:"name,omitempty"`
	Count   *int64            `json:"count,omitempty"`
	Ratio   *float64          `json:"ratio,omitempty"`
	Enabled *bool             `json:"enabled,omitempty"`
	Color   *color            `json:"color,omitempty"`
	Created *time.Time        `json:"created,omitempty"`
	Parts   []*part           `json:"parts,omitempty"`
	Sizes   []int64           `json:"sizes,omitempty"`
	Labels  map[string]string `json:"labels,omitempty"`
	Hidden  *string           `json:"-"`
}
