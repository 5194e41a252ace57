package plan

import (
	"regmap-generator/internal/common"
	"regmap-generator/internal/diagnostic"
	"regmap-generator/internal/model"
)

// DevicePlan is the final output of the resolution pipeline. It contains
// everything needed for code generation.
type DevicePlan struct {
	// Name is the device name as declared.
	Name string
	// Peripherals is the list of resolved peripheral plans in document
	// order.
	Peripherals []*PeripheralPlan
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// PeripheralPlan is the fully resolved generation plan for one peripheral.
type PeripheralPlan struct {
	// Name is the sanitized pascal type name of the register block.
	Name string
	// UnitName is the sanitized snake name used for the package, the
	// directory, and the file.
	UnitName string
	// Doc is the respaced peripheral description. Empty means none.
	Doc string
	// Layout is the padded member list of the register block struct.
	Layout []LayoutElement
	// Registers holds one plan per declared register, in declaration
	// order. Array registers contribute a single shared entry.
	Registers []*RegisterPlan
}

// TypeRef identifies the generated register type an instance uses.
type TypeRef struct {
	// Name is the sanitized pascal type name.
	Name string
	// Shared is true when the type is the canonical type of a register
	// array, referenced by every expanded instance.
	Shared bool
}

// ExpandedRegister is one register instance after array expansion.
type ExpandedRegister struct {
	// Info points at the declaring register's properties.
	Info *model.RegisterInfo
	// Name is the sanitized snake instance name.
	Name string
	// Offset is the instance address offset in bytes.
	Offset uint32
	// Type of the generated register.
	Type TypeRef
}

// LayoutKind discriminates the members of the register block struct.
type LayoutKind int

const (
	LayoutKindUnknown LayoutKind = iota
	// LayoutKindPadding is a reserved byte run covering an address gap.
	LayoutKindPadding
	// LayoutKindRegister is a register instance member.
	LayoutKindRegister
)

// String returns a human-readable layout kind name.
func (k LayoutKind) String() string {
	switch k {
	case LayoutKindPadding:
		return "padding"
	case LayoutKindRegister:
		return "register"
	default:
		return common.UnknownStr
	}
}

// LayoutElement is one member of the generated register block struct.
type LayoutElement struct {
	Kind LayoutKind

	// PadName and PadBytes describe a padding member.
	PadName  string
	PadBytes uint32

	// FieldName is the exported member name of a register instance.
	FieldName string
	// TypeName is the register type of the member.
	TypeName string
	// Offset is the byte offset the member starts at.
	Offset uint32
	// Doc is the member doc line, e.g. "0x00 - Control register".
	Doc string
}

// RegisterPlan is the generation plan for one declared register type.
type RegisterPlan struct {
	// TypeName is the sanitized pascal register type name. For arrays it
	// is the declared name with the placeholder removed.
	TypeName string
	// Doc is the respaced register description. Empty means none.
	Doc string
	// Access is the effective access mode, never unspecified.
	Access model.Access
	// CarrierBits is the storage width of the register: 8, 16, or 32.
	CarrierBits int
	// HasFields is true when the register declares a field list, even an
	// empty one.
	HasFields bool
	// ResetValue resolved from the register else the device default. Nil
	// drops the builder-style write operation.
	ResetValue *uint64
	// Read describes the read view. Nil when the register is write-only
	// or has no field list.
	Read *ProxyPlan
	// Write describes the write view. Nil when the register is read-only
	// or has no field list.
	Write *ProxyPlan
}

// EnumView selects which side of the access API an enum serves.
type EnumView int

const (
	EnumViewUnknown EnumView = iota
	EnumViewRead
	EnumViewWrite
)

// String returns a human-readable view name.
func (v EnumView) String() string {
	switch v {
	case EnumViewRead:
		return "read"
	case EnumViewWrite:
		return "write"
	default:
		return common.UnknownStr
	}
}

// ProxyPlan is one side of a register's field API.
type ProxyPlan struct {
	// TypeName is the proxy struct name, e.g. "CrR" or "CrW".
	TypeName string
	View     EnumView
	// Fields lists the surviving fields in declaration order. Reserved
	// fields and fields inaccessible on this side are excluded.
	Fields []FieldPlan
}

// FieldPlan is one field of a register view.
type FieldPlan struct {
	// MethodName is the exported accessor name, e.g. "Mode".
	MethodName string
	// Doc is the accessor doc line, e.g. "Bits 1:2 - Counting mode".
	// Empty when the field has no description.
	Doc       string
	BitOffset uint32
	BitWidth  uint32
	// CarrierBits is 8, 16, or 32 for the field value type.
	CarrierBits int
	// Enum is nil for plain bool or integer fields.
	Enum *EnumSpec
}

// Mask returns the field mask before shifting, e.g. 0x3 for two bits.
func (f *FieldPlan) Mask() uint64 {
	return 1<<f.BitWidth - 1
}

// EnumSpec describes the enum type one field view uses.
type EnumSpec struct {
	// TypeName is the generated type name, e.g. "CrRMode".
	TypeName string
	// EmitBody is true when this field introduces the type body. The
	// per-peripheral registry clears it on later references.
	EmitBody bool
	// EmitAlias is true when this field introduces an alias declaration
	// for a set derived from another register.
	EmitAlias bool
	// AliasOf is the base type name the alias points at.
	AliasOf string
	// Variants in code order. Read views are total over the field width;
	// write views carry the declared entries only.
	Variants []EnumVariant
	// Covered is true when every representable code has a named variant.
	Covered bool
}

// EnumVariant is one constant of a generated enum type.
type EnumVariant struct {
	// Name is the variant name without the type prefix, e.g. "Up".
	Name string
	// Doc is the entry description. Empty means none.
	Doc string
	// Value is the hardware code.
	Value uint64
	// Reserved marks synthesized variants for codes with no declared
	// entry.
	Reserved bool
}

// genContext tracks enum type names already introduced while resolving
// one peripheral so bodies and aliases come out exactly once.
type genContext struct {
	emitted map[string]bool
}

func newGenContext() *genContext {
	return &genContext{emitted: make(map[string]bool)}
}

// claim records the type name and reports whether this was the first
// claim.
func (c *genContext) claim(name string) bool {
	if c.emitted[name] {
		return false
	}

	c.emitted[name] = true

	return true
}
