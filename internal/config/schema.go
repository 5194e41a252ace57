package config

import (
	"fmt"

	"golang.org/x/exp/slices"

	"regmap-generator/internal/model"
	"regmap-generator/utils"
)

// Config represents the root of a YAML generation config file.
// This is the authoritative, human-reviewed run configuration.
type Config struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Output is the directory generated units are written to.
	Output string `yaml:"output,omitempty"`

	// Package is reserved for future single-package emission.
	Package string `yaml:"package,omitempty"`

	// Defaults supplies register property fallbacks consulted when
	// neither the register nor the device declares a value.
	Defaults Defaults `yaml:"defaults,omitempty"`

	// Peripherals is an optional include filter of peripheral names.
	// Empty means every peripheral of the device.
	Peripherals []string `yaml:"peripherals,omitempty"`
}

// Defaults mirrors the device-level register property defaults.
type Defaults struct {
	// Size in bits.
	Size *uint32 `yaml:"size,omitempty"`
	// ResetValue of a register after reset.
	ResetValue *uint64 `yaml:"reset_value,omitempty"`
}

// Includes reports whether the peripheral filter admits a name. An empty
// filter admits everything.
func (c *Config) Includes(name string) bool {
	if len(c.Peripherals) == 0 {
		return true
	}

	return slices.Contains(c.Peripherals, name)
}

// MergeDefaults fills device-level defaults the SVD leaves unset. Values
// the device declares always win.
func (c *Config) MergeDefaults(d *model.Device) {
	if d.Defaults.Size == nil {
		d.Defaults.Size = c.Defaults.Size
	}

	if d.Defaults.ResetValue == nil {
		d.Defaults.ResetValue = c.Defaults.ResetValue
	}
}

// Validate checks the config for values no generation run could honor.
func (c *Config) Validate() error {
	if c.Version != "" && c.Version != "1" {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	if c.Defaults.Size != nil && !utils.IsInRange(1, *c.Defaults.Size, 32) {
		return fmt.Errorf("default size %d is outside 1..32", *c.Defaults.Size)
	}

	return nil
}
