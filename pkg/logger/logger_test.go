package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	assert.True(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	assert.True(t, SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, Level())

	assert.False(t, SetLevel("loud"))
	assert.Equal(t, zapcore.WarnLevel, Level())
}

func TestLogDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Log)
	Log.Info("no output expected")
}
