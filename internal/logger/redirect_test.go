package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Writer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewWriter(zap.New(core), level), logs
}

func TestWriterOneEntryPerLine(t *testing.T) {
	w, logs := newObserved(zapcore.InfoLevel)

	n, err := fmt.Fprint(w, "first\nsecond\r\n\nthird")
	require.NoError(t, err)
	assert.Equal(t, len("first\nsecond\r\n\nthird"), n)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	w.Flush()
	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "third", logs.AllUntimed()[2].Message)

	w.Flush()
	assert.Equal(t, 3, logs.Len(), "flush with empty buffer logs nothing")
}

func TestWriterJoinsSplitWrites(t *testing.T) {
	w, logs := newObserved(zapcore.ErrorLevel)

	_, _ = w.Write([]byte("Traceback "))
	_, _ = w.Write([]byte("(most recent"))
	assert.Zero(t, logs.Len())

	_, _ = w.Write([]byte(" call last)\n"))
	require.Equal(t, 1, logs.Len())
	entry := logs.AllUntimed()[0]
	assert.Equal(t, "Traceback (most recent call last)", entry.Message)
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
}

func TestWriterRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	w := NewWriter(zap.New(core), zapcore.InfoLevel)

	_, _ = w.Write([]byte("dropped\n"))
	assert.Zero(t, logs.Len())
}

func TestStdWritersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Log
	Log = zap.New(core)
	defer func() { Log = prev }()

	_, _ = StdoutWriter("vectest").Write([]byte("hello\n"))
	_, _ = StderrWriter("vectest").Write([]byte("oops\n"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "vectest", entries[0].LoggerName)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
