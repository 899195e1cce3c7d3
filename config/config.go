package config

import (
	"runtime"
	"time"

	coretypes "github.com/projecteru2/core/types"
)

// Config holds global prlctl client configuration.
type Config struct {
	// PrlctlBinary is the path or name of the prlctl executable.
	// Env: PRLCTL_PRLCTL_BINARY. Default: "prlctl".
	PrlctlBinary string `json:"prlctl_binary" mapstructure:"prlctl_binary"`
	// PrlsrvctlBinary is the path or name of the prlsrvctl executable.
	// Default: "prlsrvctl".
	PrlsrvctlBinary string `json:"prlsrvctl_binary" mapstructure:"prlsrvctl_binary"`
	// CommandTimeoutSeconds bounds every single CLI invocation.
	// Zero means no limit.
	CommandTimeoutSeconds int `json:"command_timeout_seconds" mapstructure:"command_timeout_seconds"`
	// PoolSize is the goroutine pool size for batch operations.
	// Defaults to runtime.NumCPU() if zero.
	PoolSize int `json:"pool_size" mapstructure:"pool_size"`
	// LockFile, when set, serializes client operations across processes
	// with flock(2). Empty means in-process serialization only.
	LockFile string `json:"lock_file" mapstructure:"lock_file"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PrlctlBinary:    "prlctl",
		PrlsrvctlBinary: "prlsrvctl",
		PoolSize:        runtime.NumCPU(),
		Log: coretypes.ServerLogConfig{
			Level:      "info",
			MaxSize:    500,
			MaxAge:     28,
			MaxBackups: 3,
		},
	}
}

// CommandTimeout returns CommandTimeoutSeconds as a duration.
func (c *Config) CommandTimeout() time.Duration {
	if c.CommandTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}
