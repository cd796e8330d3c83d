package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/transit-planner/internal/config"
)

func TestBuild(t *testing.T) {
	cases := []struct {
		name     string
		cfg      config.LogConfig
		level    zapcore.Level
		encoding string
	}{
		{"info json", config.LogConfig{Level: "info"}, zapcore.InfoLevel, FormatJSON},
		{"unknown level", config.LogConfig{Level: "loud"}, zapcore.InfoLevel, FormatJSON},
		{"warn console", config.LogConfig{Level: "warn", Format: FormatConsole}, zapcore.WarnLevel, FormatConsole},
		{"debug", config.LogConfig{Level: "debug"}, zapcore.DebugLevel, FormatConsole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			zc := build(tc.cfg)
			assert.Equal(t, tc.level, zc.Level.Level())
			assert.Equal(t, tc.encoding, zc.Encoding)
		})
	}
}

func TestNew(t *testing.T) {
	log, err := New(config.LogConfig{Level: "error"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
