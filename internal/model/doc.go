// Package model defines the device description consumed by the planner:
// peripherals, registers, fields, and enumerated value sets, plus the
// device-wide defaults that fill in missing register properties.
//
// Key capabilities:
//   - Two-shape register representation (single registers and dim arrays)
//   - Access and usage enumerations with parsers for the SVD spellings
//   - Optional properties kept distinguishable from absent ones
package model
