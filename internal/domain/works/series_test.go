package works_test

import (
	"testing"

	"gallery-app/internal/domain/works"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"The Light Series":     "the-light-series",
		"Journey Through Form": "journey-through-form",
		"Water   Echoes":       "water-echoes",
		"  Dawn & Dusk!  ":     "dawn-dusk",
		"2024 Retrospective":   "2024-retrospective",
	}

	for name, want := range cases {
		assert.Equal(t, want, works.Slugify(name), "name %q", name)
	}
}
