// Package plan provides the resolution pipeline that turns the device
// model into a generation plan consumed by code emission.
//
// Resolution pipeline:
//  1. Expand register arrays → sorted instance list with shared types
//  2. Build the peripheral memory layout (gap padding, overlap recovery)
//  3. For each declared register:
//     - Infer the effective access mode from fields when undeclared
//     - Select the operation set for the access mode
//     - Resolve enumerated value sets per field and per view
//  4. Emit diagnostics (overlapping registers) and fail on unresolvable
//     properties
package plan
