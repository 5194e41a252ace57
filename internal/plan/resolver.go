package plan

import (
	"fmt"
	"strings"

	"regmap-generator/internal/diagnostic"
	"regmap-generator/internal/model"
	"regmap-generator/internal/naming"
)

// ResolveDevice resolves every peripheral of the device into a plan.
// Warnings accumulate in the plan's diagnostics; unresolvable properties
// abort with an error.
func ResolveDevice(dev *model.Device) (*DevicePlan, error) {
	plan := &DevicePlan{Name: dev.Name}

	for i := range dev.Peripherals {
		pp, err := ResolvePeripheral(&dev.Peripherals[i], dev.Defaults, &plan.Diagnostics)
		if err != nil {
			return nil, err
		}

		plan.Peripherals = append(plan.Peripherals, pp)
	}

	return plan, nil
}

// ResolvePeripheral resolves one peripheral: the padded struct layout
// plus one register plan per declared register.
func ResolvePeripheral(p *model.Peripheral, d model.Defaults, diags *diagnostic.Diagnostics) (*PeripheralPlan, error) {
	if p.DerivedFrom != "" {
		return nil, fmt.Errorf("peripheral %s: unresolved derivedFrom %q", p.Name, p.DerivedFrom)
	}

	if p.Registers == nil {
		return nil, fmt.Errorf("peripheral %s has no registers", p.Name)
	}

	expanded := ExpandRegisters(p.Registers)

	layout, err := BuildLayout(expanded, d, p.Name, diags)
	if err != nil {
		return nil, fmt.Errorf("peripheral %s: %w", p.Name, err)
	}

	ctx := newGenContext()

	plans := make([]*RegisterPlan, 0, len(p.Registers))
	for i := range p.Registers {
		rp, err := resolveRegister(&p.Registers[i], d, p.Registers, ctx)
		if err != nil {
			return nil, fmt.Errorf("peripheral %s: %w", p.Name, err)
		}

		plans = append(plans, rp)
	}

	return &PeripheralPlan{
		Name:      naming.SanitizedPascal(p.Name),
		UnitName:  naming.SanitizedSnake(p.Name),
		Doc:       naming.Respace(p.Description),
		Layout:    layout,
		Registers: plans,
	}, nil
}

// resolveRegister builds the plan for one declared register: storage
// width, effective access, reset value, and the views the access mode
// permits.
func resolveRegister(r *model.Register, d model.Defaults, registers []model.Register, ctx *genContext) (*RegisterPlan, error) {
	tyName := TypeOf(r)

	size := r.Info.Size
	if size == nil {
		size = d.Size
	}

	if size == nil {
		return nil, fmt.Errorf("register %s has no size and the device declares no default", r.Info.Name)
	}

	carrier, err := CarrierBits(*size)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", r.Info.Name, err)
	}

	reset := r.Info.ResetValue
	if reset == nil {
		reset = d.ResetValue
	}

	rp := &RegisterPlan{
		TypeName:    tyName,
		Doc:         naming.Respace(r.Info.Description),
		Access:      EffectiveAccess(r),
		CarrierBits: carrier,
		HasFields:   r.Info.Fields != nil,
		ResetValue:  reset,
	}

	if !rp.HasFields {
		return rp, nil
	}

	if rp.Access != model.AccessWriteOnly {
		rp.Read, err = buildProxy(r, EnumViewRead, tyName, registers, ctx)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", r.Info.Name, err)
		}
	}

	if rp.Access != model.AccessReadOnly {
		rp.Write, err = buildProxy(r, EnumViewWrite, tyName, registers, ctx)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", r.Info.Name, err)
		}
	}

	return rp, nil
}

// buildProxy collects the surviving fields of one view. Fields named
// "reserved" are never exposed; explicitly write-only fields are absent
// from the read view and explicitly read-only ones from the write view.
func buildProxy(r *model.Register, view EnumView, tyName string, registers []model.Register, ctx *genContext) (*ProxyPlan, error) {
	letter := "R"
	skip := model.AccessWriteOnly

	if view == EnumViewWrite {
		letter = "W"
		skip = model.AccessReadOnly
	}

	proxy := &ProxyPlan{TypeName: tyName + letter, View: view}

	fields := r.Info.Fields
	for i := range fields {
		f := &fields[i]

		if strings.ToLower(f.Name) == "reserved" {
			continue
		}

		if f.Access == skip {
			continue
		}

		carrier, err := CarrierBits(f.BitWidth)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		enum, err := resolveEnum(f, view, tyName, fields, registers, ctx)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		proxy.Fields = append(proxy.Fields, FieldPlan{
			MethodName:  naming.SanitizedPascal(f.Name),
			Doc:         fieldDoc(f),
			BitOffset:   f.BitOffset,
			BitWidth:    f.BitWidth,
			CarrierBits: carrier,
			Enum:        enum,
		})
	}

	return proxy, nil
}

// fieldDoc renders the bit position doc line, empty when the field has no
// description.
func fieldDoc(f *model.Field) string {
	if f.Description == "" {
		return ""
	}

	bits := fmt.Sprintf("Bit %d", f.BitOffset)
	if f.BitWidth > 1 {
		bits = fmt.Sprintf("Bits %d:%d", f.BitOffset, f.BitOffset+f.BitWidth-1)
	}

	return bits + " - " + naming.Respace(f.Description)
}
