package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deployboard/cli/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriterWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug")
	log.Debug("fetch settled", zap.String("action", "fetchAll"))
	require.NoError(t, log.Sync())

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "fetch settled", line["msg"])
	require.Equal(t, "debug", line["level"])
	require.Equal(t, "fetchAll", line["action"])
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn")
	log.Info("dropped")
	require.Zero(t, buf.Len())

	log.Warn("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNewWithWriterFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "chatty")
	log.Debug("dropped")
	log.Info("kept")
	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
}

func TestNewWithoutFileIsNop(t *testing.T) {
	log := logger.New(logger.Options{})
	require.NotNil(t, log)
	log.Info("nowhere")
}
