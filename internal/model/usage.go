package model

import "fmt"

//go:generate go tool stringer -type=Usage -output=usage_string.go

// Usage restricts an enumerated value set to one side of the access API.
type Usage int

const (
	// UsageUnspecified means the set carries no usage element and serves
	// both sides.
	UsageUnspecified Usage = iota
	UsageRead
	UsageWrite
	UsageReadWrite
)

// ParseUsage converts the SVD usage spelling into a Usage value.
func ParseUsage(s string) (Usage, error) {
	switch s {
	case "":
		return UsageUnspecified, nil
	case "read":
		return UsageRead, nil
	case "write":
		return UsageWrite, nil
	case "read-write":
		return UsageReadWrite, nil
	default:
		return UsageUnspecified, fmt.Errorf("unknown usage value %q", s)
	}
}
