package core

import (
	"context"
	"fmt"
	"strconv"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/cocoonstack/prlctl/config"
	"github.com/cocoonstack/prlctl/hypervisor/parallels"
)

// BaseHandler provides shared config access for all command handlers.
type BaseHandler struct {
	ConfProvider func() *config.Config
}

// Init returns the command context and validated config in one call.
func (h BaseHandler) Init(cmd *cobra.Command) (context.Context, *config.Config, error) {
	conf, err := h.Conf()
	if err != nil {
		return nil, nil, err
	}
	return CommandContext(cmd), conf, nil
}

// Conf validates and returns the config. All handlers call this first.
func (h BaseHandler) Conf() (*config.Config, error) {
	if h.ConfProvider == nil {
		return nil, fmt.Errorf("config provider is nil")
	}
	conf := h.ConfProvider()
	if conf == nil {
		return nil, fmt.Errorf("config not initialized")
	}
	return conf, nil
}

// InitClient returns the command context and a Parallels client.
func (h BaseHandler) InitClient(cmd *cobra.Command) (context.Context, *parallels.Parallels, error) {
	ctx, conf, err := h.Init(cmd)
	if err != nil {
		return nil, nil, err
	}
	p, err := parallels.New(conf, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("init parallels: %w", err)
	}
	return ctx, p, nil
}

// CommandContext returns command context, falling back to Background.
func CommandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// ParseMemoryMB parses a human size ("8G", "512MiB", "2048M") into megabytes.
// A bare number is taken as megabytes, the unit prlctl uses.
func ParseMemoryMB(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	b, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid memory size %q: %w", s, err)
	}
	return int(b >> 20), nil //nolint:mnd
}

// FormatMemoryMB renders megabytes for display.
func FormatMemoryMB(mb int) string {
	return units.BytesSize(float64(int64(mb) << 20)) //nolint:mnd
}
