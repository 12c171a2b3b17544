package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() {
		SetLogger(nil)
		LogMode = ""
	})
	return logs
}

func TestLogRedactsSecrets(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogInfo("載入設定",
		zap.String("spoonacular_api_key", "abcd1234"),
		zap.String("password", "hunter2"),
		zap.String("env", "test"),
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "****", fields["spoonacular_api_key"])
	assert.Equal(t, "****", fields["password"])
	assert.Equal(t, "test", fields["env"])
}

func TestConciseModeFiltersInfo(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)
	LogMode = "concise"

	LogInfo("食譜搜尋完成")
	LogInfo("請求完成")
	LogWarn("上游請求失敗")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "請求完成", logs.All()[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestLogUpstreamCall(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogUpstreamCall("findByIngredients", 200, 50*time.Millisecond, nil)
	LogUpstreamCall("informationBulk", 402, 10*time.Millisecond, errors.New("quota"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
	assert.Equal(t, int64(402), logs.All()[1].ContextMap()["status"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestInitLoggerWithFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	path := t.TempDir() + "/logs/app.log"
	require.NoError(t, InitLogger("debug", path))
	LogInfo("啟動應用")
	Sync()
	assert.FileExists(t, path)
}
