package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerDefaults(t *testing.T) {
	l, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("startup", String("component", "test"))
}

func TestFieldsReachZapCore(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	l.Info("search finished", String("doc_id", "claim-1"), Int("hits", 3), Float64("top_score", 0.72))

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "search finished", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "claim-1", fields["doc_id"])
	assert.Equal(t, int64(3), fields["hits"])
	assert.Equal(t, 0.72, fields["top_score"])
}

func TestWithAndNamed(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("engine").With(String("tenant", "acme"))

	l.Warn("pairing threshold low")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine", entries[0].LoggerName)
	assert.Equal(t, "acme", entries[0].ContextMap()["tenant"])
}

func TestErrFieldNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNopLoggerIsSilentAndChainable(t *testing.T) {
	l := NewNopLogger()
	l.Debug("ignored")
	assert.Equal(t, l, l.With(String("k", "v")))
	assert.Equal(t, l, l.Named("child"))
}
