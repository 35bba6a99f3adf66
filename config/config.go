// Package config holds the sizing knobs for a hashlife store. Capacities are
// fixed for the lifetime of a store; a full store is recovered from by
// constructing a fresh one from a bigger Config and replaying the pattern.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLeafCapacity = 1 << 16
	DefaultNodeCapacity = 1 << 20
)

var ErrBadCapacity = errors.New("config: capacities must be > 0")

// Config sizes the two canonical sets of a store.
type Config struct {
	// LeafCapacity is the slot count of the 8x8 leaf set.
	LeafCapacity uint32 `yaml:"leafCapacity"`
	// NodeCapacity is the slot count of the interior node set. Every level
	// above the leaves shares it, so it dominates memory use.
	NodeCapacity uint32 `yaml:"nodeCapacity"`
}

// Default returns the stock sizing, adequate for medium patterns over long
// runs.
func Default() Config {
	return Config{
		LeafCapacity: DefaultLeafCapacity,
		NodeCapacity: DefaultNodeCapacity,
	}
}

// Validate checks that both capacities are usable.
func (c Config) Validate() error {
	if c.LeafCapacity == 0 || c.NodeCapacity == 0 {
		return ErrBadCapacity
	}
	return nil
}

// Load reads a yaml Config from r, with unset fields taking the defaults.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a yaml Config from path, with unset fields taking the
// defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Load(f)
}

// Per-slot storage costs of a store built from a Config: a leaf slot is an
// 8-byte square plus its sentinel byte; a node slot is four 4-byte child
// handles, a sentinel byte, and two 4-byte future slots.
const (
	LeafSlotBytes = 8 + 1
	NodeSlotBytes = 16 + 1 + 8
)

// EstimatedBytes returns the approximate heap footprint of a store sized by
// c, excluding fixed per-store overhead. Useful for picking capacities to
// fit a memory budget.
func (c Config) EstimatedBytes() uint64 {
	return uint64(c.LeafCapacity)*LeafSlotBytes + uint64(c.NodeCapacity)*NodeSlotBytes
}

// Presets are ready-made sizings by rough working-set size.
var Presets = map[string]Config{
	"tiny":    {LeafCapacity: 1 << 8, NodeCapacity: 1 << 10},
	"small":   {LeafCapacity: 1 << 12, NodeCapacity: 1 << 16},
	"default": {LeafCapacity: DefaultLeafCapacity, NodeCapacity: DefaultNodeCapacity},
	"large":   {LeafCapacity: 1 << 20, NodeCapacity: 1 << 24},
}

// GetPreset returns the named preset, or false if there is none.
func GetPreset(name string) (Config, bool) {
	cfg, ok := Presets[name]
	return cfg, ok
}
