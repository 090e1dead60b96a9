package cli

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds every knob the flowbench command-line tools understand.
// Generator parameters default to the canonical benchmark instance
// (flow 100, 1000 layers of 500 vertices, density 1).
type Config struct {
	Flow         int64   `koanf:"flow"`
	LayerSize    int     `koanf:"layer-size"`
	NLayers      int     `koanf:"n-layers"`
	ConnectRatio float64 `koanf:"connect-ratio"`
	// Seed pins the generator RNG; 0 means "seed from wall time".
	Seed    int64 `koanf:"seed"`
	Verbose bool  `koanf:"verbose"`
	Watch   bool  `koanf:"watch"`
}

// Load resolves configuration from defaults, an optional flowbench.toml,
// FLOWBENCH_* environment variables, and the parsed flag set, in that order
// (flags win). Underscores in environment keys map to flag-style dashes,
// e.g. FLOWBENCH_LAYER_SIZE → layer-size.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"flow":          int64(100),
		"layer-size":    500,
		"n-layers":      1000,
		"connect-ratio": 1.0,
		"seed":          int64(0),
		"verbose":       false,
		"watch":         false,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("cli: load defaults: %w", err)
	}

	// 2. Config file (optional); absence is not an error.
	_ = k.Load(file.Provider("flowbench.toml"), toml.Parser())

	// 3. Environment variables
	if err := k.Load(env.Provider("FLOWBENCH_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "FLOWBENCH_")), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("cli: load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("cli: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("cli: unmarshal config: %w", err)
	}

	return &cfg, nil
}

// mapProvider adapts a plain map to the koanf provider interface.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
