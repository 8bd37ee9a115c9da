package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected Level
	}{
		{name: "off", s: "off", expected: LevelOff},
		{name: "error uppercase", s: "ERROR", expected: LevelError},
		{name: "info mixed case", s: "Info", expected: LevelInfo},
		{name: "debug", s: "debug", expected: LevelDebug},
		{name: "trace", s: "trace", expected: LevelTrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		_, err := ParseLevel("verbose")
		assert.Error(t, err)
	})
}
