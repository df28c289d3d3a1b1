package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, InitializeFromEnv())
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"bogus", zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, Initialize(tt.level))
			t.Cleanup(func() { SetLogger(nil) })

			assert.True(t, GetLogger().Core().Enabled(tt.enabled))
			assert.False(t, GetLogger().Core().Enabled(tt.muted))
		})
	}
}

func TestInitializeWritesToLogFile(t *testing.T) {
	t.Setenv(LogFileEnvVar, t.TempDir()+"/stepper.log")

	require.NoError(t, Initialize("info"))
	t.Cleanup(func() { SetLogger(nil) })

	Info("hello")
	Sync()
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogValueCommitted(1, 2, true)
	LogConfigFallback("step", "abc", errors.New("bad"))
	LogKeyboardTransition(false, 40, 40, 10)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "Value committed", entries[0].Message)
	assert.Equal(t, 2.0, entries[0].ContextMap()["value"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "step", entries[1].ContextMap()["option"])
	assert.Equal(t, false, entries[2].ContextMap()["visible"])
}
