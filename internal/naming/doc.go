// Package naming converts vendor identifiers from hardware descriptions
// into valid Go identifiers.
//
// Key capabilities:
//   - snake_case and PascalCase sanitizers safe for any input spelling
//   - Keyword and leading-digit repair
//   - Whitespace normalization for doc comments
package naming
