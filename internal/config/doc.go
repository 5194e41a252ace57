// Package config provides the YAML schema, parsing, and defaults for
// generation runs.
//
// YAML is a first-class feature that makes regeneration deterministic
// without retyping flags.
//
// # Key capabilities
//
//   - Pin the output directory per project
//   - Supply register size and reset value fallbacks for devices that
//     declare none
//   - Filter generation to a named subset of peripherals
//
// # Schema Overview
//
// The config file has the following structure:
//
//	version: "1"
//	output: ./generated
//	defaults:
//	  size: 32
//	  reset_value: 0x0
//	peripherals:
//	  - TIMER0
//	  - UART1
//
// # Defaults Precedence
//
// Register properties resolve in this order:
//  1. The register's own declaration (highest)
//  2. The device-level default from the SVD
//  3. The config fallback (lowest)
package config
