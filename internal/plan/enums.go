package plan

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"regmap-generator/internal/common"
	"regmap-generator/internal/model"
	"regmap-generator/internal/naming"
	"regmap-generator/utils"
)

// resolveEnum selects and resolves the enumerated value set a field uses
// on one view, following derivedFrom references. It returns nil when no
// set is eligible for the view.
func resolveEnum(field *model.Field, view EnumView, rTypeName string,
	fields []model.Field, registers []model.Register, ctx *genContext) (*EnumSpec, error) {
	sets := field.EnumeratedValues

	var (
		resolved *model.EnumeratedValues
		baseReg  string
		derived  bool
	)

	switch {
	case common.IsEmpty(sets):
		return nil, nil

	case common.IsSingle(sets):
		evs := &sets[0]
		if evs.DerivedFrom != "" {
			var err error

			resolved, baseReg, err = resolveDerived(evs.DerivedFrom, view, fields, registers)
			if err != nil {
				return nil, err
			}

			derived = true
		} else {
			if !eligible(evs.Usage, view) {
				return nil, nil
			}

			resolved = evs
		}

	default:
		resolved = firstForView(sets, view)
		if resolved == nil {
			return nil, nil
		}
	}

	evsName := naming.SanitizedPascal(resolved.Name)
	if resolved.Name == "" {
		evsName = naming.SanitizedPascal(field.Name)
	}

	letter := "R"
	if view == EnumViewWrite {
		letter = "W"
	}

	spec := &EnumSpec{TypeName: rTypeName + letter + evsName}

	if view == EnumViewRead {
		spec.Variants, spec.Covered = readVariants(resolved.Values, field.BitWidth)
	} else {
		variants, err := writeVariants(resolved.Values)
		if err != nil {
			return nil, err
		}

		spec.Variants = variants
		spec.Covered = uint64(len(variants)) == uint64(1)<<field.BitWidth
	}

	switch {
	case baseReg != "":
		spec.AliasOf = naming.SanitizedPascal(baseReg) + letter + evsName
		spec.EmitAlias = ctx.claim(spec.TypeName)
	case derived:
		// A bare derivation reuses a type declared by another field of
		// the same register; nothing to introduce here.
	default:
		spec.EmitBody = ctx.claim(spec.TypeName)
	}

	return spec, nil
}

// resolveDerived follows a derivedFrom reference. Qualified references
// ("CR2.MODE") search every field of the named register; bare ones search
// every field of the current register. The target is the first set with
// the wanted name that is eligible for the view.
func resolveDerived(ref string, view EnumView, fields []model.Field,
	registers []model.Register) (*model.EnumeratedValues, string, error) {
	haystack := fields
	needle := ref
	baseReg := ""

	if strings.Contains(ref, ".") {
		regName, setName := utils.Unpack2(strings.Split(ref, "."))

		idx := slices.IndexFunc(registers, func(r model.Register) bool {
			return r.Info.Name == regName
		})
		if idx < 0 {
			return nil, "", fmt.Errorf("base register %q not found", regName)
		}

		if registers[idx].Info.Fields == nil {
			return nil, "", fmt.Errorf("base register %q has no field list", regName)
		}

		haystack = registers[idx].Info.Fields
		needle = setName
		baseReg = regName
	}

	for i := range haystack {
		for j := range haystack[i].EnumeratedValues {
			evs := &haystack[i].EnumeratedValues[j]
			if evs.Name == needle && eligible(evs.Usage, view) {
				return evs, baseReg, nil
			}
		}
	}

	return nil, "", fmt.Errorf("base enumerated values %q not found", needle)
}

// eligible reports whether a set with the given usage can serve the view.
// Unspecified usage serves both sides.
func eligible(u model.Usage, view EnumView) bool {
	if view == EnumViewRead {
		return u != model.UsageWrite
	}

	return u != model.UsageRead
}

// firstForView picks the first set explicitly tagged for the view among
// multiple declared sets.
func firstForView(sets []model.EnumeratedValues, view EnumView) *model.EnumeratedValues {
	want := model.UsageRead
	if view == EnumViewWrite {
		want = model.UsageWrite
	}

	for i := range sets {
		if sets[i].Usage == want || sets[i].Usage == model.UsageReadWrite {
			return &sets[i]
		}
	}

	return nil
}

// readVariants builds the total variant list of a read enum: one entry
// per representable code, with synthesized reserved variants filling the
// holes. The first declared entry for a code wins.
func readVariants(values []model.EnumeratedValue, width uint32) ([]EnumVariant, bool) {
	codes := uint64(1) << width
	out := make([]EnumVariant, 0, codes)
	named := uint64(0)

	for code := uint64(0); code < codes; code++ {
		if entry := findValue(values, code); entry != nil {
			out = append(out, EnumVariant{
				Name:  naming.SanitizedPascal(entry.Name),
				Doc:   naming.Respace(entry.Description),
				Value: code,
			})
			named++

			continue
		}

		out = append(out, EnumVariant{
			Name:     fmt.Sprintf("Reserved%b", code),
			Value:    code,
			Reserved: true,
		})
	}

	return out, named == codes
}

// writeVariants builds the declared variant list of a write enum. Every
// entry must carry a value.
func writeVariants(values []model.EnumeratedValue) ([]EnumVariant, error) {
	out := make([]EnumVariant, 0, len(values))
	for i := range values {
		v := &values[i]
		if v.Value == nil {
			return nil, fmt.Errorf("enumerated value %s has no value", v.Name)
		}

		out = append(out, EnumVariant{
			Name:  naming.SanitizedPascal(v.Name),
			Doc:   naming.Respace(v.Description),
			Value: *v.Value,
		})
	}

	return out, nil
}

func findValue(values []model.EnumeratedValue, code uint64) *model.EnumeratedValue {
	for i := range values {
		if values[i].Value != nil && *values[i].Value == code {
			return &values[i]
		}
	}

	return nil
}
