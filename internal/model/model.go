package model

import "regmap-generator/internal/common"

// Device is the root of a loaded hardware description.
type Device struct {
	Name        string
	Description string
	// Defaults fill in register properties the declaration leaves out.
	Defaults Defaults
	// Peripherals in document order.
	Peripherals []Peripheral
}

// Defaults holds device-wide fallback values. A nil pointer means the
// device declares no fallback for that property.
type Defaults struct {
	// Size is the default register width in bits.
	Size *uint32
	// ResetValue is the default register reset value.
	ResetValue *uint64
}

// Peripheral is a named block of registers at a common base address.
type Peripheral struct {
	Name        string
	Description string
	// DerivedFrom names another peripheral this one inherits from. The
	// loader resolves it; the planner rejects any peripheral where it is
	// still set.
	DerivedFrom string
	BaseAddress uint64
	// Registers is nil when the peripheral declares no register list,
	// which is distinct from declaring an empty one.
	Registers []Register
}

// RegisterKind discriminates the two register shapes.
type RegisterKind int

const (
	RegisterKindUnknown RegisterKind = iota
	RegisterKindSingle               // one register at one offset
	RegisterKindArray                // dim group expanding to several instances
)

// String returns a human-readable representation of the RegisterKind.
func (k RegisterKind) String() string {
	switch k {
	case RegisterKindSingle:
		return "single"
	case RegisterKindArray:
		return "array"
	default:
		return common.UnknownStr
	}
}

// Register is either a single register or a register array. Array is set
// exactly when Kind is RegisterKindArray.
type Register struct {
	Kind  RegisterKind
	Info  RegisterInfo
	Array *ArrayInfo
}

// RegisterInfo carries the properties shared by both register shapes.
type RegisterInfo struct {
	// Name as declared. For arrays it contains the "%s" or "[%s]"
	// placeholder.
	Name        string
	Description string
	// AddressOffset is relative to the peripheral base, in bytes.
	AddressOffset uint32
	// Size in bits. Nil falls back to the device default.
	Size *uint32
	// Access as declared. AccessUnspecified means inference from fields.
	Access Access
	// ResetValue after a system reset. Nil falls back to the device
	// default; unresolvable values drop the builder-style write.
	ResetValue *uint64
	// Fields is nil when the register declares no field list, which is
	// distinct from declaring an empty one.
	Fields []Field
}

// ArrayInfo describes how a register array expands into instances.
type ArrayInfo struct {
	// Count of instances.
	Count uint32
	// Increment between consecutive instance offsets, in bytes.
	Increment uint32
	// Indices are the substitution labels, one per instance. Nil means
	// positional labels "0".."Count-1".
	Indices []string
}

// Field is a named bit range within a register.
type Field struct {
	Name        string
	Description string
	// BitOffset is the position of the least significant bit.
	BitOffset uint32
	// BitWidth is the number of bits, 1 to 32.
	BitWidth uint32
	// Access as declared on the field. AccessUnspecified inherits the
	// register behavior.
	Access Access
	// EnumeratedValues lists the value sets declared on the field.
	EnumeratedValues []EnumeratedValues
}

// EnumeratedValues is one named set of field values.
type EnumeratedValues struct {
	Name string
	// DerivedFrom names a set declared elsewhere, either bare ("MODE") or
	// qualified by register ("CR2.MODE").
	DerivedFrom string
	// Usage restricts the set to one side of the access API.
	Usage Usage
	Values []EnumeratedValue
}

// EnumeratedValue is one (name, code) entry of a value set.
type EnumeratedValue struct {
	Name        string
	Description string
	// Value is the hardware code. Nil is tolerated on read-side sets and
	// fatal on write-side ones.
	Value *uint64
}
