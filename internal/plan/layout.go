package plan

import (
	"fmt"

	"regmap-generator/internal/diagnostic"
	"regmap-generator/internal/model"
	"regmap-generator/internal/naming"
)

// BuildLayout walks the expanded instances in offset order and produces
// the member list of the register block struct. Address gaps become
// reserved padding members. An instance that overlaps the one before it
// is dropped with a warning and does not advance the cursor.
func BuildLayout(expanded []ExpandedRegister, d model.Defaults, peripheral string, diags *diagnostic.Diagnostics) ([]LayoutElement, error) {
	var out []LayoutElement

	cursor := uint32(0)
	padIndex := 0

	for i := range expanded {
		reg := &expanded[i]

		if reg.Offset < cursor {
			diags.AddWarning("register_overlap",
				fmt.Sprintf("%s overlaps with another register at offset %d. Ignoring.",
					reg.Name, reg.Offset),
				peripheral, reg.Name)

			continue
		}

		if pad := reg.Offset - cursor; pad != 0 {
			out = append(out, LayoutElement{
				Kind:     LayoutKindPadding,
				PadName:  fmt.Sprintf("_reserved%d", padIndex),
				PadBytes: pad,
			})
			padIndex++
		}

		size := reg.Info.Size
		if size == nil {
			size = d.Size
		}

		if size == nil {
			return nil, fmt.Errorf("register %s has no size and the device declares no default", reg.Name)
		}

		doc := fmt.Sprintf("0x%02x", reg.Offset)
		if desc := naming.Respace(reg.Info.Description); desc != "" {
			doc += " - " + desc
		}

		out = append(out, LayoutElement{
			Kind:      LayoutKindRegister,
			FieldName: naming.SanitizedPascal(reg.Name),
			TypeName:  reg.Type.Name,
			Offset:    reg.Offset,
			Doc:       doc,
		})

		cursor = reg.Offset + *size/8
	}

	return out, nil
}
