// Package svd reads SVD-style hardware description files and converts
// them into the device model.
//
// Key capabilities:
//   - XML decoding with vendor numeric forms (decimal, 0x, 0b, #binary)
//   - All three bit-range spellings (offset+width, lsb/msb, [msb:lsb])
//   - dimIndex label lists and integer ranges
//   - Peripheral derivedFrom resolution
package svd
