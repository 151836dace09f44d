// Package config handles script host configuration loading and management.
package config

// Config holds all host settings.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Platform PlatformConfig `yaml:"platform"`
	SelfTest SelfTestConfig `yaml:"selftest"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// PlatformConfig controls what the platform report includes.
type PlatformConfig struct {
	ShowCPUFeatures bool `yaml:"show_cpu_features"`
}

// SelfTestConfig holds settings for the vector math self-check.
type SelfTestConfig struct {
	Tolerance float32 `yaml:"tolerance"` // Max absolute error per component
	Verbose   bool    `yaml:"verbose"`   // Log passing checks at info instead of debug
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Platform: PlatformConfig{
			ShowCPUFeatures: true,
		},
		SelfTest: SelfTestConfig{
			Tolerance: 1e-5,
			Verbose:   false,
		},
	}
}
