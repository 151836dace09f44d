// Package platform reports what machine a script host is running on.
package platform

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

// Info describes the host platform.
type Info struct {
	OS          string
	Arch        string
	GoVersion   string
	NumCPU      int
	Hostname    string   // empty if it could not be determined
	CPUFeatures []string // notable instruction set extensions
}

// Collect gathers information about the running platform.
func Collect() Info {
	host, err := os.Hostname()
	if err != nil {
		host = ""
	}
	return Info{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		GoVersion:   runtime.Version(),
		NumCPU:      runtime.NumCPU(),
		Hostname:    host,
		CPUFeatures: cpuFeatures(),
	}
}

type feature struct {
	name string
	has  bool
}

func cpuFeatures() []string {
	var candidates []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		candidates = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse3", cpu.X86.HasSSE3},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		candidates = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fp", cpu.ARM64.HasFP},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	features := make([]string, 0, len(candidates))
	for _, f := range candidates {
		if f.has {
			features = append(features, f.name)
		}
	}
	return features
}

// Fields renders info as structured log fields.
func (i Info) Fields(withCPUFeatures bool) []zap.Field {
	fields := []zap.Field{
		zap.String("os", i.OS),
		zap.String("arch", i.Arch),
		zap.String("go", i.GoVersion),
		zap.Int("cpus", i.NumCPU),
		zap.String("host", i.Hostname),
	}
	if withCPUFeatures {
		fields = append(fields, zap.Strings("cpu_features", i.CPUFeatures))
	}
	return fields
}

// Print writes a human-readable report of info to w.
func Print(w io.Writer, i Info) error {
	features := strings.Join(i.CPUFeatures, " ")
	if features == "" {
		features = "-"
	}
	_, err := fmt.Fprintf(w,
		"Platform:     %s/%s\nGo version:   %s\nCPUs:         %d\nHost:         %s\nCPU features: %s\n",
		i.OS, i.Arch, i.GoVersion, i.NumCPU, i.Hostname, features)
	return err
}
