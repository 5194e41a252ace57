package gen

import (
	"fmt"
	"path/filepath"
	"strings"

	"regmap-generator/internal/model"
	"regmap-generator/internal/plan"
)

// templateData holds all data needed for the unit file template.
type templateData struct {
	PackageName string
	Doc         string
	Filename    string
	Imports     []string
	Items       []string
}

// buildTemplateData constructs the template data for one peripheral unit.
// Every top-level declaration of the unit becomes one item; the file
// template joins them.
func buildTemplateData(p *plan.PeripheralPlan) *templateData {
	data := &templateData{
		PackageName: p.UnitName,
		Doc:         p.Doc,
		Filename:    filepath.Join(p.UnitName, p.UnitName+".go"),
	}

	if len(p.Registers) > 0 {
		data.Imports = append(data.Imports, "runtime/volatile")
	}

	data.Items = append(data.Items, renderBlock(p))

	for _, r := range p.Registers {
		data.Items = append(data.Items, renderRegister(r)...)
	}

	return data
}

// renderBlock renders the peripheral register block struct. Members come
// out in layout order with padding members covering the address gaps.
func renderBlock(p *plan.PeripheralPlan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "// %s is the peripheral register block.\n", p.Name)
	fmt.Fprintf(&sb, "type %s struct {\n", p.Name)

	for _, el := range p.Layout {
		if el.Kind == plan.LayoutKindPadding {
			fmt.Fprintf(&sb, "\t%s [%d]byte\n", el.PadName, el.PadBytes)

			continue
		}

		fmt.Fprintf(&sb, "\t// %s\n", el.Doc)
		fmt.Fprintf(&sb, "\t%s %s\n", el.FieldName, el.TypeName)
	}

	sb.WriteString("}")

	return sb.String()
}

// renderRegister renders everything one declared register contributes to
// the unit: the wrapper with its access operations, then the read view,
// then the write view.
func renderRegister(r *plan.RegisterPlan) []string {
	items := renderWrapper(r)

	if r.Read != nil {
		items = append(items, renderView(r, r.Read)...)
	}

	if r.Write != nil {
		items = append(items, renderView(r, r.Write)...)
	}

	return items
}

// renderWrapper renders the register wrapper struct and the operations
// its access mode permits.
func renderWrapper(r *plan.RegisterPlan) []string {
	var items []string

	var sb strings.Builder

	if r.Doc != "" {
		fmt.Fprintf(&sb, "// %s\n", r.Doc)
	}

	fmt.Fprintf(&sb, "type %s struct {\n\tregister volatile.Register%d\n}", r.TypeName, r.CarrierBits)
	items = append(items, sb.String())

	if !r.HasFields {
		return append(items, renderPlainOps(r)...)
	}

	c := carrier(r.CarrierBits)

	if r.Read != nil {
		items = append(items, fmt.Sprintf(
			"// ReadBits returns the raw register value.\nfunc (r *%s) ReadBits() %s {\n\treturn r.register.Get()\n}",
			r.TypeName, c))
	}

	if r.Read != nil && r.Write != nil {
		items = append(items, fmt.Sprintf(
			"// ModifyBits reads the register, applies f to the raw value, and\n// writes the result back.\nfunc (r *%[1]s) ModifyBits(f func(%[2]s) %[2]s) {\n\tr.register.Set(f(r.register.Get()))\n}",
			r.TypeName, c))
	}

	if r.Write != nil {
		items = append(items, fmt.Sprintf(
			"// WriteBits replaces the whole register value.\nfunc (r *%s) WriteBits(bits %s) {\n\tr.register.Set(bits)\n}",
			r.TypeName, c))
	}

	if r.Read != nil && r.Write != nil {
		items = append(items, fmt.Sprintf(
			"// Modify reads the register, passes both views to f, and writes the\n// returned write view back.\nfunc (r *%[1]s) Modify(f func(%[2]s, *%[3]s) *%[3]s) {\n\tbits := r.register.Get()\n\tw := %[3]s{bits: bits}\n\n\tr.register.Set(f(%[2]s{bits: bits}, &w).bits)\n}",
			r.TypeName, r.Read.TypeName, r.Write.TypeName))
	}

	if r.Read != nil {
		items = append(items, fmt.Sprintf(
			"// Read returns a point-in-time read view of the register.\nfunc (r *%[1]s) Read() %[2]s {\n\treturn %[2]s{bits: r.register.Get()}\n}",
			r.TypeName, r.Read.TypeName))
	}

	if r.Write != nil && r.ResetValue != nil {
		items = append(items, fmt.Sprintf(
			"// Write seeds a write view with the reset value, passes it to f, and\n// writes the result.\nfunc (r *%[1]s) Write(f func(*%[2]s) *%[2]s) {\n\tw := %[2]s{bits: %#[3]x}\n\n\tr.register.Set(f(&w).bits)\n}",
			r.TypeName, r.Write.TypeName, *r.ResetValue))
	}

	return items
}

// renderPlainOps renders the value-level operations of a register with
// no field list.
func renderPlainOps(r *plan.RegisterPlan) []string {
	var items []string

	c := carrier(r.CarrierBits)

	if r.Access != model.AccessWriteOnly {
		items = append(items, fmt.Sprintf(
			"// Read returns the register value.\nfunc (r *%s) Read() %s {\n\treturn r.register.Get()\n}",
			r.TypeName, c))
	}

	if r.Access != model.AccessReadOnly {
		items = append(items, fmt.Sprintf(
			"// Write sets the register value.\nfunc (r *%s) Write(value %s) {\n\tr.register.Set(value)\n}",
			r.TypeName, c))
	}

	return items
}

// renderView renders one view struct followed by everything its fields
// contribute: enum declarations, accessors, and setters.
func renderView(r *plan.RegisterPlan, v *plan.ProxyPlan) []string {
	var items []string

	side := "read"
	if v.View == plan.EnumViewWrite {
		side = "write"
	}

	items = append(items, fmt.Sprintf(
		"// %[1]s is a %[2]s view of %[3]s.\ntype %[1]s struct {\n\tbits %[4]s\n}",
		v.TypeName, side, r.TypeName, carrier(r.CarrierBits)))

	for i := range v.Fields {
		f := &v.Fields[i]

		if f.Enum != nil {
			items = append(items, renderEnumDecls(f, v.View)...)
		}

		if v.View == plan.EnumViewRead {
			items = append(items, renderReadAccessor(v.TypeName, f))

			continue
		}

		items = append(items, renderWriteField(r, v.TypeName, f)...)
	}

	return items
}

// renderEnumDecls renders the enum type body or alias a field view
// introduces. Fields referencing an already declared type add nothing.
func renderEnumDecls(f *plan.FieldPlan, view plan.EnumView) []string {
	switch {
	case f.Enum.EmitAlias:
		return []string{fmt.Sprintf(
			"// %[1]s is an alias of %[2]s.\ntype %[1]s = %[2]s", f.Enum.TypeName, f.Enum.AliasOf)}
	case f.Enum.EmitBody:
		return renderEnumBody(f, view == plan.EnumViewRead)
	default:
		return nil
	}
}

// renderEnumBody renders the enum type, its constants, the Bits accessor,
// and on the read side one predicate per named variant. Read variants
// cover every representable code; the synthesized ones stay unexported.
func renderEnumBody(f *plan.FieldPlan, predicates bool) []string {
	spec := f.Enum
	c := carrier(f.CarrierBits)

	var sb strings.Builder

	fmt.Fprintf(&sb, "// Possible values of the %s field.\n", f.MethodName)
	fmt.Fprintf(&sb, "type %s %s\n", spec.TypeName, c)

	if len(spec.Variants) > 0 {
		sb.WriteString("\nconst (\n")

		for _, v := range spec.Variants {
			if v.Reserved {
				fmt.Fprintf(&sb, "\t_%s%s %s = %#x\n", spec.TypeName, v.Name, spec.TypeName, v.Value)

				continue
			}

			if v.Doc != "" {
				fmt.Fprintf(&sb, "\t// %s\n", v.Doc)
			}

			fmt.Fprintf(&sb, "\t%s%s %s = %#x\n", spec.TypeName, v.Name, spec.TypeName, v.Value)
		}

		sb.WriteString(")")
	}

	items := []string{sb.String()}

	items = append(items, fmt.Sprintf(
		"// Bits returns the hardware code of the value.\nfunc (v %s) Bits() %s {\n\treturn %s(v)\n}",
		spec.TypeName, c, c))

	if !predicates {
		return items
	}

	for _, v := range spec.Variants {
		if v.Reserved {
			continue
		}

		items = append(items, fmt.Sprintf(
			"// Is%[2]s returns true when the value is %[2]s.\nfunc (v %[1]s) Is%[2]s() bool {\n\treturn v == %[1]s%[2]s\n}",
			spec.TypeName, v.Name))
	}

	return items
}

// renderReadAccessor renders one field accessor of a read view. Single
// bits decode to bool, enumerated fields to their enum type, and the
// rest to the narrowest unsigned carrier.
func renderReadAccessor(viewName string, f *plan.FieldPlan) string {
	var sb strings.Builder

	if f.Doc != "" {
		fmt.Fprintf(&sb, "// %s\n", f.Doc)
	}

	switch {
	case f.Enum != nil:
		fmt.Fprintf(&sb, "func (r %s) %s() %s {\n", viewName, f.MethodName, f.Enum.TypeName)
		sb.WriteString(constBlock(f))
		fmt.Fprintf(&sb, "\treturn %s(r.bits >> offset & mask)\n}", f.Enum.TypeName)
	case f.BitWidth == 1:
		fmt.Fprintf(&sb, "func (r %s) %s() bool {\n", viewName, f.MethodName)
		sb.WriteString(constBlock(f))
		sb.WriteString("\treturn r.bits>>offset&mask != 0\n}")
	default:
		fmt.Fprintf(&sb, "func (r %s) %s() %s {\n", viewName, f.MethodName, carrier(f.CarrierBits))
		sb.WriteString(constBlock(f))
		fmt.Fprintf(&sb, "\treturn %s(r.bits >> offset & mask)\n}", carrier(f.CarrierBits))
	}

	return sb.String()
}

// renderWriteField renders everything one field contributes to a write
// view: for enumerated fields the variant proxy plus the accessor trio,
// otherwise a single setter.
func renderWriteField(r *plan.RegisterPlan, viewName string, f *plan.FieldPlan) []string {
	if f.Enum == nil {
		return []string{renderSetter(r, viewName, f)}
	}

	items := renderWriteProxy(r, viewName, f)

	var sb strings.Builder

	if f.Doc != "" {
		fmt.Fprintf(&sb, "// %s\n", f.Doc)
	}

	fmt.Fprintf(&sb, "func (w *%s) %s() %s {\n\treturn %s{w: w}\n}",
		viewName, f.MethodName, proxyName(r, f), proxyName(r, f))
	items = append(items, sb.String())

	bitsName := f.MethodName + "Bits"
	bitsDoc := fmt.Sprintf("// %[1]sBits writes the raw %[1]s field value.", f.MethodName)

	if !f.Enum.Covered {
		bitsName = "Unsafe" + bitsName
		bitsDoc = fmt.Sprintf(
			"// Unsafe%[1]sBits writes a raw %[1]s field value that may not\n// correspond to a named one.", f.MethodName)
	}

	items = append(items, fmt.Sprintf(
		"%s\nfunc (w *%s) %s(value %s) *%s {\n%s\tw.bits &^= mask << offset\n\tw.bits |= %s(value&mask) << offset\n\n\treturn w\n}",
		bitsDoc, viewName, bitsName, carrier(f.CarrierBits), viewName, constBlock(f), carrier(r.CarrierBits)))

	items = append(items, fmt.Sprintf(
		"// %[1]sEnum writes a named %[1]s field value.\nfunc (w *%[2]s) %[1]sEnum(value %[3]s) *%[2]s {\n%[4]s\tw.bits &^= mask << offset\n\tw.bits |= %[5]s(value.Bits()&mask) << offset\n\n\treturn w\n}",
		f.MethodName, viewName, f.Enum.TypeName, constBlock(f), carrier(r.CarrierBits)))

	return items
}

// renderWriteProxy renders the unexported variant proxy of an enumerated
// write field: one chainable method per named variant.
func renderWriteProxy(r *plan.RegisterPlan, viewName string, f *plan.FieldPlan) []string {
	name := proxyName(r, f)

	items := []string{fmt.Sprintf(
		"// %[1]s selects a named %[2]s value on %[3]s.\ntype %[1]s struct {\n\tw *%[3]s\n}",
		name, f.MethodName, viewName)}

	for _, v := range f.Enum.Variants {
		var sb strings.Builder

		if v.Doc != "" {
			fmt.Fprintf(&sb, "// %s\n", v.Doc)
		}

		fmt.Fprintf(&sb, "func (p %s) %s() *%s {\n", name, v.Name, viewName)
		sb.WriteString(constBlock(f))
		fmt.Fprintf(&sb, "\tp.w.bits &^= mask << offset\n\tp.w.bits |= %#x << offset\n\n\treturn p.w\n}", v.Value)

		items = append(items, sb.String())
	}

	return items
}

// renderSetter renders the chainable setter of a plain write field.
// Single bits take a bool, wider fields the narrowest unsigned carrier
// masked to the field width.
func renderSetter(r *plan.RegisterPlan, viewName string, f *plan.FieldPlan) string {
	var sb strings.Builder

	if f.Doc != "" {
		fmt.Fprintf(&sb, "// %s\n", f.Doc)
	}

	if f.BitWidth == 1 {
		fmt.Fprintf(&sb, "func (w *%[1]s) %[2]s(value bool) *%[1]s {\n", viewName, f.MethodName)
		sb.WriteString(constBlock(f))
		sb.WriteString("\tif value {\n\t\tw.bits |= mask << offset\n\t} else {\n\t\tw.bits &^= mask << offset\n\t}\n\n\treturn w\n}")

		return sb.String()
	}

	fmt.Fprintf(&sb, "func (w *%[1]s) %[2]s(value %[3]s) *%[1]s {\n", viewName, f.MethodName, carrier(f.CarrierBits))
	sb.WriteString(constBlock(f))
	fmt.Fprintf(&sb, "\tw.bits &^= mask << offset\n\tw.bits |= %s(value&mask) << offset\n\n\treturn w\n}", carrier(r.CarrierBits))

	return sb.String()
}

// proxyName returns the unexported variant proxy type name of a write
// field, e.g. "crWMode".
func proxyName(r *plan.RegisterPlan, f *plan.FieldPlan) string {
	return lowerFirst(r.TypeName) + "W" + f.MethodName
}

// constBlock renders the mask and offset constants every field method
// opens with.
func constBlock(f *plan.FieldPlan) string {
	return fmt.Sprintf("\tconst (\n\t\tmask   = %#x\n\t\toffset = %d\n\t)\n\n", f.Mask(), f.BitOffset)
}

// carrier returns the unsigned Go type spelling of a storage width.
func carrier(bits int) string {
	return fmt.Sprintf("uint%d", bits)
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToLower(s[:1]) + s[1:]
}
