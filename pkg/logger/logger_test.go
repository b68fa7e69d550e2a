package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ErrorAttachesCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(zap.String("email", "ada@example.com"))

	l.Warn("load failed", zap.String("key", "user_ada@example.com"))
	l.Error("save failed", errors.New("boom"))
	l.Error("no cause", nil)

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "ada@example.com", entries[0].ContextMap()["email"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	_, hasErr := entries[2].ContextMap()["error"]
	assert.False(t, hasErr)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.With(zap.Int("n", 1)).Warn("x")
	})
}
