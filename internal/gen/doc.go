// Package gen provides deterministic Go code generation for register
// access units.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - Peripheral register block structs with reserved padding members
//   - Register wrappers over volatile storage cells
//   - Read and write views with per-field accessors
//   - Enumerated field types with total decode on the read side
//   - Builder-style write chains seeded with the reset value
package gen
