package logging

import (
	"context"
	"testing"

	dl "signup/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEntriesBecomeFields(t *testing.T) {
	assert := require.New(t)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromZap(zap.New(core))

	logger.Info(context.Background(), "Account has been created.", dl.Entry("route", "/"))
	logger.Error(context.Background(), "Could not create account.", dl.Entry("status", 500))

	entries := logs.AllUntimed()
	assert.Len(entries, 2)
	assert.Equal("Account has been created.", entries[0].Message)
	assert.Equal(zapcore.InfoLevel, entries[0].Level)
	assert.Equal("/", entries[0].ContextMap()["route"])
	assert.Equal(zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(int64(500), entries[1].ContextMap()["status"])
}

func TestNewZapLoggerWritesToFile(t *testing.T) {
	assert := require.New(t)
	path := t.TempDir() + "/signup.log"

	logger, err := NewZapLogger(path)
	assert.Nil(err)
	logger.Info(context.Background(), "hello")
	logger.Sync()
	assert.FileExists(path)
}
