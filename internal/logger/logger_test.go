package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{"console info", false, false, zapcore.InfoLevel},
		{"json debug", true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.True(t, l.Core().Enabled(tt.level))
			assert.False(t, l.Core().Enabled(tt.level-1))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello..."},
		{"trims first", "  hi  ", 2, "hi"},
		{"multibyte", "İstanbul", 3, "İst..."},
		{"zero limit", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.limit))
		})
	}
}
