package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regmap-generator/internal/diagnostic"
	"regmap-generator/internal/model"
)

func u32(v uint32) *uint32 {
	return &v
}

func sizedReg(name string, offset, size uint32) model.Register {
	r := singleReg(name, offset)
	r.Info.Size = u32(size)

	return r
}

func TestBuildLayoutContiguous(t *testing.T) {
	var diags diagnostic.Diagnostics

	expanded := ExpandRegisters([]model.Register{
		sizedReg("CR", 0x0, 32),
		sizedReg("SR", 0x4, 32),
	})

	layout, err := BuildLayout(expanded, model.Defaults{}, "TIMER0", &diags)
	require.NoError(t, err)
	require.Len(t, layout, 2)

	assert.Equal(t, LayoutKindRegister, layout[0].Kind)
	assert.Equal(t, "Cr", layout[0].FieldName)
	assert.Equal(t, "Cr", layout[0].TypeName)
	assert.Equal(t, "0x00", layout[0].Doc)
	assert.Equal(t, "Sr", layout[1].FieldName)
	assert.Empty(t, diags.Warnings)
}

func TestBuildLayoutPadsGaps(t *testing.T) {
	var diags diagnostic.Diagnostics

	expanded := ExpandRegisters([]model.Register{
		sizedReg("CR", 0x0, 32),
		sizedReg("SR", 0x10, 16),
		sizedReg("DR", 0x20, 32),
	})

	layout, err := BuildLayout(expanded, model.Defaults{}, "TIMER0", &diags)
	require.NoError(t, err)
	require.Len(t, layout, 5)

	assert.Equal(t, LayoutKindPadding, layout[1].Kind)
	assert.Equal(t, "_reserved0", layout[1].PadName)
	assert.Equal(t, uint32(0xc), layout[1].PadBytes)

	assert.Equal(t, LayoutKindPadding, layout[3].Kind)
	assert.Equal(t, "_reserved1", layout[3].PadName)
	assert.Equal(t, uint32(0xe), layout[3].PadBytes)

	// Padding brings each member back to its declared offset.
	assert.Equal(t, uint32(0x10), layout[2].Offset)
	assert.Equal(t, uint32(0x20), layout[4].Offset)
}

func TestBuildLayoutDropsOverlap(t *testing.T) {
	var diags diagnostic.Diagnostics

	expanded := ExpandRegisters([]model.Register{
		sizedReg("CR", 0x0, 32),
		sizedReg("SR", 0x2, 32),
		sizedReg("DR", 0x4, 32),
	})

	layout, err := BuildLayout(expanded, model.Defaults{}, "TIMER0", &diags)
	require.NoError(t, err)
	require.Len(t, layout, 2)
	assert.Equal(t, "Cr", layout[0].FieldName)
	assert.Equal(t, "Dr", layout[1].FieldName)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "register_overlap", diags.Warnings[0].Code)
	assert.Equal(t, "sr overlaps with another register at offset 2. Ignoring.", diags.Warnings[0].Message)
	assert.Equal(t, "TIMER0", diags.Warnings[0].Peripheral)
}

func TestBuildLayoutDefaultSize(t *testing.T) {
	var diags diagnostic.Diagnostics

	expanded := ExpandRegisters([]model.Register{
		singleReg("CR", 0x0),
		singleReg("SR", 0x2),
	})

	layout, err := BuildLayout(expanded, model.Defaults{Size: u32(16)}, "TIMER0", &diags)
	require.NoError(t, err)
	require.Len(t, layout, 2)
	assert.Empty(t, diags.Warnings)
}

func TestBuildLayoutMissingSize(t *testing.T) {
	var diags diagnostic.Diagnostics

	expanded := ExpandRegisters([]model.Register{singleReg("CR", 0x0)})

	_, err := BuildLayout(expanded, model.Defaults{}, "TIMER0", &diags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no size")
}

func TestBuildLayoutRegisterDoc(t *testing.T) {
	var diags diagnostic.Diagnostics

	r := sizedReg("CR", 0x8, 32)
	r.Info.Description = "Control\n          register"

	layout, err := BuildLayout(ExpandRegisters([]model.Register{r}), model.Defaults{}, "TIMER0", &diags)
	require.NoError(t, err)
	require.Len(t, layout, 2)
	assert.Equal(t, "0x08 - Control register", layout[1].Doc)
}
