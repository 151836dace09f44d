package selftest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunPasses(t *testing.T) {
	report := Run(1e-5)

	require.NotEmpty(t, report.Checks)
	assert.Empty(t, report.Failed())
	assert.NoError(t, report.Err())

	names := make(map[string]bool)
	for _, c := range report.Checks {
		names[c.Name] = true
	}
	for _, want := range []string{"vec3 add", "vec3 cross", "vec3 dot", "euler zero is identity"} {
		assert.True(t, names[want], "missing check %q", want)
	}
}

func TestRunWithNegativeToleranceFails(t *testing.T) {
	// nothing is strictly closer than a negative tolerance
	report := Run(-1)

	assert.Len(t, report.Failed(), len(report.Checks))
	err := report.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vec3 add")
}

func TestReportLog(t *testing.T) {
	report := Report{Checks: []Check{
		{Name: "ok", Got: "1", Want: "1", Pass: true},
		{Name: "bad", Got: "2", Want: "1", Pass: false},
	}}

	core, logs := observer.New(zapcore.DebugLevel)
	report.Log(zap.New(core), zapcore.DebugLevel)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "ok", entries[0].ContextMap()["check"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "bad", entries[1].ContextMap()["check"])
	assert.Equal(t, "self-check finished", entries[2].Message)
	assert.Equal(t, int64(1), entries[2].ContextMap()["failed"])
}

func TestReportLogSkipsBelowLevel(t *testing.T) {
	report := Report{Checks: []Check{{Name: "ok", Pass: true}}}

	core, logs := observer.New(zapcore.InfoLevel)
	report.Log(zap.New(core), zapcore.DebugLevel)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "self-check finished", entries[0].Message)
}
