package platform

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCollect(t *testing.T) {
	info := Collect()

	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Positive(t, info.NumCPU)
	assert.NotNil(t, info.CPUFeatures)
}

func TestFieldsLogged(t *testing.T) {
	info := Info{
		OS:          "linux",
		Arch:        "amd64",
		GoVersion:   "go1.24.0",
		NumCPU:      8,
		Hostname:    "build-01",
		CPUFeatures: []string{"sse2", "avx2"},
	}

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("platform", info.Fields(true)...)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "linux", ctx["os"])
	assert.Equal(t, "amd64", ctx["arch"])
	assert.Equal(t, int64(8), ctx["cpus"])
	assert.Equal(t, "build-01", ctx["host"])
	assert.Equal(t, []interface{}{"sse2", "avx2"}, ctx["cpu_features"])

	assert.Len(t, info.Fields(false), 5)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, Info{OS: "windows", Arch: "arm64", GoVersion: "go1.24.0", NumCPU: 4})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "windows/arm64")
	assert.Contains(t, out, "CPUs:         4")
	assert.Contains(t, out, "CPU features: -")
}
