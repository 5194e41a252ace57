package svd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"regmap-generator/internal/model"
)

// ToModel converts the document into the device model. Peripheral
// derivedFrom references are resolved here so the planner never sees one.
func (doc *Document) ToModel() (*model.Device, error) {
	dev := &model.Device{
		Name:        doc.Name,
		Description: deref(doc.Description),
		Defaults: model.Defaults{
			Size:       uint32Ptr(doc.Size),
			ResetValue: uint64Ptr(doc.ResetValue),
		},
	}

	byName := make(map[string]*Peripheral, len(doc.Peripherals))
	for _, p := range doc.Peripherals {
		byName[p.Name] = p
	}

	for _, p := range doc.Peripherals {
		mp, err := convertPeripheral(p, byName)
		if err != nil {
			return nil, fmt.Errorf("peripheral %s: %w", p.Name, err)
		}

		dev.Peripherals = append(dev.Peripherals, *mp)
	}

	return dev, nil
}

// convertPeripheral materializes a peripheral, walking its derivation
// chain for every property it does not declare itself.
func convertPeripheral(p *Peripheral, byName map[string]*Peripheral) (*model.Peripheral, error) {
	desc := p.Description
	baseAddr := p.BaseAddress
	regs := p.Registers

	seen := map[string]bool{p.Name: true}
	for cur := p; cur.DerivedFrom != nil; {
		baseName := *cur.DerivedFrom

		base, ok := byName[baseName]
		if !ok {
			return nil, fmt.Errorf("derived from unknown peripheral %q", baseName)
		}

		if seen[baseName] {
			return nil, fmt.Errorf("derivation cycle through %q", baseName)
		}
		seen[baseName] = true

		if desc == nil {
			desc = base.Description
		}

		if baseAddr == nil {
			baseAddr = base.BaseAddress
		}

		if regs == nil {
			regs = base.Registers
		}

		cur = base
	}

	out := &model.Peripheral{
		Name:        p.Name,
		Description: deref(desc),
	}
	if baseAddr != nil {
		out.BaseAddress = uint64(*baseAddr)
	}

	if regs != nil {
		out.Registers = make([]model.Register, 0, len(regs.Register))
		for _, r := range regs.Register {
			mr, err := convertRegister(r)
			if err != nil {
				return nil, fmt.Errorf("register %s: %w", r.Name, err)
			}

			out.Registers = append(out.Registers, *mr)
		}
	}

	return out, nil
}

func convertRegister(r *Register) (*model.Register, error) {
	acc, err := model.ParseAccess(deref(r.Access))
	if err != nil {
		return nil, err
	}

	info := model.RegisterInfo{
		Name:          r.Name,
		Description:   deref(r.Description),
		AddressOffset: uint32(r.AddressOffset),
		Size:          uint32Ptr(r.Size),
		Access:        acc,
		ResetValue:    uint64Ptr(r.ResetValue),
	}

	if r.Fields != nil {
		info.Fields = make([]model.Field, 0, len(r.Fields.Field))
		for _, f := range r.Fields.Field {
			mf, err := convertField(f)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}

			info.Fields = append(info.Fields, *mf)
		}
	}

	if r.Dim == nil {
		return &model.Register{Kind: model.RegisterKindSingle, Info: info}, nil
	}

	if r.DimIncrement == nil {
		return nil, errors.New("dim without dimIncrement")
	}

	indices, err := parseDimIndex(r.DimIndex)
	if err != nil {
		return nil, err
	}

	return &model.Register{
		Kind: model.RegisterKindArray,
		Info: info,
		Array: &model.ArrayInfo{
			Count:     uint32(*r.Dim),
			Increment: uint32(*r.DimIncrement),
			Indices:   indices,
		},
	}, nil
}

func convertField(f *Field) (*model.Field, error) {
	offset, width, err := bitRange(f)
	if err != nil {
		return nil, err
	}

	acc, err := model.ParseAccess(deref(f.Access))
	if err != nil {
		return nil, err
	}

	out := &model.Field{
		Name:        f.Name,
		Description: deref(f.Description),
		BitOffset:   offset,
		BitWidth:    width,
		Access:      acc,
	}

	for _, evs := range f.EnumeratedValues {
		mevs, err := convertEnumeratedValues(evs)
		if err != nil {
			return nil, err
		}

		out.EnumeratedValues = append(out.EnumeratedValues, *mevs)
	}

	return out, nil
}

// bitRange resolves the three SVD bit-range spellings into offset and
// width. The pattern form wins over lsb/msb, which wins over
// bitOffset/bitWidth.
func bitRange(f *Field) (uint32, uint32, error) {
	switch {
	case f.BitRange != nil:
		s := strings.TrimSpace(*f.BitRange)
		if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
			return 0, 0, fmt.Errorf("malformed bitRange %q", s)
		}

		msbStr, lsbStr, ok := strings.Cut(s[1:len(s)-1], ":")
		if !ok {
			return 0, 0, fmt.Errorf("malformed bitRange %q", s)
		}

		msb, err := strconv.ParseUint(strings.TrimSpace(msbStr), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed bitRange %q: %w", s, err)
		}

		lsb, err := strconv.ParseUint(strings.TrimSpace(lsbStr), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed bitRange %q: %w", s, err)
		}

		if msb < lsb {
			return 0, 0, fmt.Errorf("bitRange %q has msb below lsb", s)
		}

		return uint32(lsb), uint32(msb - lsb + 1), nil

	case f.LSB != nil || f.MSB != nil:
		if f.LSB == nil || f.MSB == nil {
			return 0, 0, errors.New("lsb and msb must both be present")
		}

		if *f.MSB < *f.LSB {
			return 0, 0, fmt.Errorf("msb %d below lsb %d", uint32(*f.MSB), uint32(*f.LSB))
		}

		return uint32(*f.LSB), uint32(*f.MSB - *f.LSB + 1), nil

	case f.BitOffset != nil:
		width := uint32(1)
		if f.BitWidth != nil {
			width = uint32(*f.BitWidth)
		}

		return uint32(*f.BitOffset), width, nil

	default:
		return 0, 0, errors.New("field declares no bit range")
	}
}

// parseDimIndex expands the dimIndex element into substitution labels:
// either a comma list or an ascending integer range like "0-3".
func parseDimIndex(s *string) ([]string, error) {
	if s == nil {
		return nil, nil
	}

	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil, nil
	}

	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		return parts, nil
	}

	if loStr, hiStr, ok := strings.Cut(raw, "-"); ok {
		lo, errLo := strconv.ParseUint(loStr, 10, 32)
		hi, errHi := strconv.ParseUint(hiStr, 10, 32)
		if errLo == nil && errHi == nil {
			if lo > hi {
				return nil, fmt.Errorf("descending dimIndex range %q", raw)
			}

			out := make([]string, 0, hi-lo+1)
			for i := lo; i <= hi; i++ {
				out = append(out, strconv.FormatUint(i, 10))
			}

			return out, nil
		}
	}

	return []string{raw}, nil
}

func convertEnumeratedValues(evs *EnumeratedValues) (*model.EnumeratedValues, error) {
	usage, err := model.ParseUsage(deref(evs.Usage))
	if err != nil {
		return nil, err
	}

	out := &model.EnumeratedValues{
		Name:        deref(evs.Name),
		DerivedFrom: deref(evs.DerivedFrom),
		Usage:       usage,
	}

	for _, ev := range evs.EnumeratedValue {
		v, ok, err := ev.Val()
		if err != nil {
			return nil, fmt.Errorf("enumerated value %s: %w", deref(ev.Name), err)
		}

		entry := model.EnumeratedValue{
			Name:        deref(ev.Name),
			Description: deref(ev.Description),
		}
		if ok {
			value := v
			entry.Value = &value
		}

		out.Values = append(out.Values, entry)
	}

	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func uint32Ptr(u *Uint) *uint32 {
	if u == nil {
		return nil
	}

	v := uint32(*u)

	return &v
}

func uint64Ptr(u *Uint64) *uint64 {
	if u == nil {
		return nil
	}

	v := uint64(*u)

	return &v
}
