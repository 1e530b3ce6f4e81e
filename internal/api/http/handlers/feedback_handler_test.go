package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRating(t *testing.T) {
	cases := map[string]int{
		"":     5,
		"  ":   5,
		"3":    3,
		" 4 ":  4,
		"9":    9,
		"five": 0,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, parseRating(raw))
		})
	}
}
