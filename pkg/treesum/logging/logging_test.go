package logging

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{"ERROR", log.ErrorLevel, false},
		{"trace", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidLevel, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestGet_SameLoggerPerComponent(t *testing.T) {
	a := Get("component-a")
	b := Get("component-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, Get("component-a"))
}

func TestInit_SetsLevelOnExistingLoggers(t *testing.T) {
	l := Get("component-c")
	require.NoError(t, Init("debug"))
	assert.Equal(t, log.DebugLevel, l.GetLevel())

	require.NoError(t, Init("error"))
	assert.Equal(t, log.ErrorLevel, l.GetLevel())
}

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init("nope"))
}
