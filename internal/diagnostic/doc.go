// Package diagnostic provides structured warnings, errors, and notes for
// the register map generator.
//
// Key capabilities:
//   - Overlapping register warnings
//   - Unresolvable property errors with peripheral and register context
//   - Aggregation across peripherals with a combined error view
package diagnostic
