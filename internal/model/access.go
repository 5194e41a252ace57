package model

import "fmt"

//go:generate go tool stringer -type=Access -output=access_string.go

// Access describes the permitted directions of a register or field.
type Access int

const (
	// AccessUnspecified means the declaration carries no access element.
	AccessUnspecified Access = iota
	AccessReadOnly
	AccessWriteOnly
	AccessReadWrite
)

// ParseAccess converts the SVD access spelling into an Access value.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "":
		return AccessUnspecified, nil
	case "read-only":
		return AccessReadOnly, nil
	case "write-only":
		return AccessWriteOnly, nil
	case "read-write":
		return AccessReadWrite, nil
	default:
		return AccessUnspecified, fmt.Errorf("unknown access value %q", s)
	}
}
