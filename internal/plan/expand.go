package plan

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"regmap-generator/internal/model"
	"regmap-generator/internal/naming"
)

// ExpandRegisters flattens register arrays into their instances and
// returns all instances sorted by ascending address offset. Ties keep
// declaration order. Array instances share one canonical type.
func ExpandRegisters(registers []model.Register) []ExpandedRegister {
	var out []ExpandedRegister

	for i := range registers {
		r := &registers[i]
		switch r.Kind {
		case model.RegisterKindArray:
			ty := TypeOf(r)

			labels := r.Array.Indices
			if labels == nil {
				labels = make([]string, 0, r.Array.Count)
				for j := uint32(0); j < r.Array.Count; j++ {
					labels = append(labels, strconv.FormatUint(uint64(j), 10))
				}
			}

			for j, label := range labels {
				out = append(out, ExpandedRegister{
					Info:   &r.Info,
					Name:   naming.SanitizedSnake(substitute(r.Info.Name, label)),
					Offset: r.Info.AddressOffset + uint32(j)*r.Array.Increment,
					Type:   TypeRef{Name: ty, Shared: true},
				})
			}
		default:
			out = append(out, ExpandedRegister{
				Info:   &r.Info,
				Name:   naming.SanitizedSnake(r.Info.Name),
				Offset: r.Info.AddressOffset,
				Type:   TypeRef{Name: naming.SanitizedPascal(r.Info.Name)},
			})
		}
	}

	slices.SortStableFunc(out, func(a, b ExpandedRegister) bool {
		return a.Offset < b.Offset
	})

	return out
}

// TypeOf returns the canonical generated type name for a declared
// register. For arrays the dim placeholder is removed first.
func TypeOf(r *model.Register) string {
	name := r.Info.Name
	if r.Kind == model.RegisterKindArray {
		name = stripPlaceholder(name)
	}

	return naming.SanitizedPascal(name)
}

// substitute replaces the dim placeholder with an instance label. The
// bracketed form wins when present.
func substitute(name, label string) string {
	if strings.Contains(name, "[%s]") {
		return strings.ReplaceAll(name, "[%s]", label)
	}

	return strings.ReplaceAll(name, "%s", label)
}

func stripPlaceholder(name string) string {
	if strings.Contains(name, "[%s]") {
		return strings.ReplaceAll(name, "[%s]", "")
	}

	return strings.ReplaceAll(name, "%s", "")
}
