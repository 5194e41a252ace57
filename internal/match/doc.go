// Package match provides name normalization and Levenshtein distance
// calculation for suggesting the closest peripheral name on a failed
// lookup.
//
// Key functions:
//   - NormalizeIdent: normalizes hardware names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best candidate above the suggestion threshold
package match
