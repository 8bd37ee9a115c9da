package misc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLimit(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		n        int
		expected string
	}{
		{name: "shorter than limit", s: "abc", n: 10, expected: "abc"},
		{name: "equal to limit", s: "abcde", n: 5, expected: "abcde"},
		{name: "longer than limit", s: "abcdefgh", n: 6, expected: "abc..."},
		{name: "tiny limit", s: "abcdefgh", n: 2, expected: "ab"},
		{name: "negative limit", s: "abc", n: -1, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringLimit(tt.s, tt.n))
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		whole    int
		expected int
	}{
		{name: "zero whole yields zero", part: 5, whole: 0, expected: 0},
		{name: "half", part: 1, whole: 2, expected: 50},
		{name: "rounds up", part: 2, whole: 3, expected: 67},
		{name: "rounds down", part: 1, whole: 3, expected: 33},
		{name: "over hundred", part: 3, whole: 2, expected: 150},
		{name: "zero part", part: 0, whole: 7, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.part, tt.whole))
		})
	}
}
