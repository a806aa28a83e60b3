package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Sports Day 2026", "sports-day-2026"},
		{"  Term One   Opens!  ", "term-one-opens"},
		{"P.7 Candidates' Briefing", "p-7-candidates-briefing"},
		{"Hello---World", "hello-world"},
		{"UPPER case", "upper-case"},
		{"!!!", "untitled"},
		{"", "untitled"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyNonASCII(t *testing.T) {
	// Non-ASCII letters are dropped rather than transliterated
	assert.Equal(t, "caf-menu", Slugify("café menu"))
}
