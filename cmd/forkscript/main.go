// forkscript is the command-line host for the engine's script utilities.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/forkscript/internal/config"
	"github.com/Faultbox/forkscript/internal/logger"
	"github.com/Faultbox/forkscript/internal/platform"
	"github.com/Faultbox/forkscript/internal/selftest"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	switch command := args[0]; command {
	case "platform", "info":
		cmdPlatform(cfg)
	case "selftest", "test":
		if err := cmdSelfTest(cfg); err != nil {
			logger.Error("self-check failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`forkscript - engine script utilities

Usage:
  forkscript [flags] <command>

Commands:
  platform   Print platform information
  selftest   Run the vector math self-check (exit code 1 on failure)
  help       Show this help

Flags:
  -config <path>     Config file (default: ./forkscript.yaml or user config dir)
  -debug             Enable debug logging
  -log-file <path>   Also write logs to a rotating file
  -tolerance <x>     Self-check tolerance override
  -verbose           Log passing self-checks at info level`)
}

func cmdPlatform(cfg *config.Config) {
	info := platform.Collect()
	logger.Debug("platform", info.Fields(cfg.Platform.ShowCPUFeatures)...)

	if !cfg.Platform.ShowCPUFeatures {
		info.CPUFeatures = nil
	}
	if err := platform.Print(os.Stdout, info); err != nil {
		logger.Error("writing platform info", zap.Error(err))
	}
}

func cmdSelfTest(cfg *config.Config) error {
	report := selftest.Run(cfg.SelfTest.Tolerance)

	passLevel := zapcore.DebugLevel
	if cfg.SelfTest.Verbose {
		passLevel = zapcore.InfoLevel
	}
	report.Log(logger.Named("selftest"), passLevel)

	// Summary goes through the script stdout redirect like any script output
	out := logger.StdoutWriter("selftest")
	defer out.Flush()
	for _, c := range report.Checks {
		status := "ok"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-4s %s\n", status, c.Name)
	}

	return report.Err()
}
