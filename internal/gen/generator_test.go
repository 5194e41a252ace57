package gen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regmap-generator/internal/model"
	"regmap-generator/internal/plan"
)

func u32(v uint32) *uint32 {
	return &v
}

func u64(v uint64) *uint64 {
	return &v
}

func timerDevice() model.Device {
	cr := model.Register{
		Kind: model.RegisterKindSingle,
		Info: model.RegisterInfo{
			Name:          "CR",
			Description:   "Control register",
			AddressOffset: 0x0,
			Size:          u32(32),
			ResetValue:    u64(0x100),
			Fields: []model.Field{
				{Name: "EN", Description: "Counter enable", BitOffset: 0, BitWidth: 1},
				{
					Name:        "MODE",
					Description: "Counting mode",
					BitOffset:   1,
					BitWidth:    2,
					EnumeratedValues: []model.EnumeratedValues{{
						Name:  "MODE_SEL",
						Usage: model.UsageReadWrite,
						Values: []model.EnumeratedValue{
							{Name: "UP", Description: "Count up", Value: u64(0)},
							{Name: "DOWN", Description: "Count down", Value: u64(1)},
						},
					}},
				},
				{Name: "PSC", Description: "Prescaler", BitOffset: 4, BitWidth: 3},
			},
		},
	}

	sr := model.Register{
		Kind: model.RegisterKindSingle,
		Info: model.RegisterInfo{
			Name:          "SR",
			Description:   "Status register",
			AddressOffset: 0x4,
			Size:          u32(32),
			Access:        model.AccessReadOnly,
			Fields: []model.Field{
				{Name: "UIF", Description: "Update flag", BitOffset: 0, BitWidth: 1},
			},
		},
	}

	egr := model.Register{
		Kind: model.RegisterKindSingle,
		Info: model.RegisterInfo{
			Name:          "EGR",
			AddressOffset: 0x8,
			Size:          u32(32),
			Access:        model.AccessWriteOnly,
			Fields: []model.Field{
				{Name: "UG", Description: "Update generation", BitOffset: 0, BitWidth: 1},
			},
		},
	}

	cnt := model.Register{
		Kind: model.RegisterKindSingle,
		Info: model.RegisterInfo{
			Name:          "CNT",
			Description:   "Counter value",
			AddressOffset: 0xc,
			Size:          u32(32),
		},
	}

	ch := model.Register{
		Kind: model.RegisterKindArray,
		Info: model.RegisterInfo{
			Name:          "CH[%s]",
			Description:   "Channel compare",
			AddressOffset: 0x10,
			Size:          u32(32),
		},
		Array: &model.ArrayInfo{Count: 2, Increment: 0x4},
	}

	icr := model.Register{
		Kind: model.RegisterKindSingle,
		Info: model.RegisterInfo{
			Name:          "ICR",
			AddressOffset: 0x18,
			Size:          u32(32),
			ResetValue:    u64(0),
			Fields: []model.Field{{
				Name:      "MODE2",
				BitOffset: 0,
				BitWidth:  2,
				EnumeratedValues: []model.EnumeratedValues{{
					DerivedFrom: "CR.MODE_SEL",
				}},
			}},
		},
	}

	return model.Device{
		Name: "TESTCHIP",
		Peripherals: []model.Peripheral{{
			Name:        "TIMER0",
			Description: "General purpose timer",
			BaseAddress: 0x40010000,
			Registers:   []model.Register{cr, sr, egr, cnt, ch, icr},
		}},
	}
}

func generateTimerUnit(t *testing.T) string {
	t.Helper()

	dev := timerDevice()

	dp, err := plan.ResolveDevice(&dev)
	require.NoError(t, err)
	require.True(t, dp.Diagnostics.IsValid())

	g := NewGenerator(GeneratorConfig{})

	files, err := g.Generate(dp)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "timer0/timer0.go", files[0].Filename)

	return string(files[0].Content)
}

func TestGenerateUnitFrame(t *testing.T) {
	content := generateTimerUnit(t)

	assert.True(t, strings.HasPrefix(content, "// Code generated by regmap-generator. DO NOT EDIT."))
	assert.Contains(t, content, "// General purpose timer\npackage timer0")
	assert.Contains(t, content, `"runtime/volatile"`)
}

func TestGenerateBlockStruct(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "type Timer0 struct {")
	assert.Contains(t, content, "// 0x00 - Control register")
	assert.Regexp(t, `Cr\s+Cr`, content)
	assert.Regexp(t, `Ch0\s+Ch`, content)
	assert.Regexp(t, `Ch1\s+Ch`, content)

	// The array instances share one register type.
	assert.Equal(t, 1, strings.Count(content, "type Ch struct {"))
}

func TestGenerateRegisterOps(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "type Cr struct {")
	assert.Regexp(t, `register\s+volatile\.Register32`, content)

	assert.Contains(t, content, "func (r *Cr) ReadBits() uint32 {")
	assert.Contains(t, content, "func (r *Cr) ModifyBits(f func(uint32) uint32) {")
	assert.Contains(t, content, "func (r *Cr) WriteBits(bits uint32) {")
	assert.Contains(t, content, "func (r *Cr) Modify(f func(CrR, *CrW) *CrW) {")
	assert.Contains(t, content, "func (r *Cr) Read() CrR {")
	assert.Contains(t, content, "func (r *Cr) Write(f func(*CrW) *CrW) {")

	// The builder write seeds the reset value.
	assert.Contains(t, content, "w := CrW{bits: 0x100}")
}

func TestGenerateReadOnlyRegister(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "func (r *Sr) ReadBits() uint32 {")
	assert.Contains(t, content, "func (r *Sr) Read() SrR {")
	assert.NotContains(t, content, "func (r *Sr) WriteBits")
	assert.NotContains(t, content, "type SrW struct {")
}

func TestGenerateWriteOnlyRegister(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "func (r *Egr) WriteBits(bits uint32) {")
	assert.NotContains(t, content, "func (r *Egr) ReadBits")
	assert.NotContains(t, content, "type EgrR struct {")

	// No reset value resolves for EGR, so the seeded write is dropped.
	assert.NotContains(t, content, "func (r *Egr) Write(f")
}

func TestGeneratePlainRegister(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "func (r *Cnt) Read() uint32 {")
	assert.Contains(t, content, "func (r *Cnt) Write(value uint32) {")
	assert.NotContains(t, content, "type CntR struct {")
	assert.NotContains(t, content, "type CntW struct {")
}

func TestGenerateReadView(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "type CrR struct {")
	assert.Contains(t, content, "// Bit 0 - Counter enable\nfunc (r CrR) En() bool {")
	assert.Contains(t, content, "return r.bits>>offset&mask != 0")
	assert.Contains(t, content, "func (r CrR) Mode() CrRModeSel {")
	assert.Contains(t, content, "func (r CrR) Psc() uint8 {")
}

func TestGenerateReadEnum(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "type CrRModeSel uint8")
	assert.Regexp(t, `CrRModeSelUp\s+CrRModeSel = 0x0`, content)
	assert.Regexp(t, `CrRModeSelDown\s+CrRModeSel = 0x1`, content)

	// Codes without a named value decode to unexported reserved variants.
	assert.Regexp(t, `_CrRModeSelReserved10\s+CrRModeSel = 0x2`, content)
	assert.Regexp(t, `_CrRModeSelReserved11\s+CrRModeSel = 0x3`, content)

	assert.Contains(t, content, "func (v CrRModeSel) Bits() uint8 {")
	assert.Contains(t, content, "func (v CrRModeSel) IsUp() bool {")
	assert.Contains(t, content, "func (v CrRModeSel) IsDown() bool {")
	assert.NotContains(t, content, "IsReserved10")
}

func TestGenerateWriteView(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "type CrW struct {")

	// Variant proxy for the enumerated field.
	assert.Contains(t, content, "type crWMode struct {")
	assert.Contains(t, content, "func (p crWMode) Up() *CrW {")
	assert.Contains(t, content, "func (p crWMode) Down() *CrW {")
	assert.Contains(t, content, "func (w *CrW) Mode() crWMode {")

	// Two named values out of four codes: raw writes stay unsafe.
	assert.Contains(t, content, "func (w *CrW) UnsafeModeBits(value uint8) *CrW {")
	assert.Contains(t, content, "func (w *CrW) ModeEnum(value CrWModeSel) *CrW {")

	assert.Contains(t, content, "func (w *CrW) En(value bool) *CrW {")
	assert.Contains(t, content, "func (w *CrW) Psc(value uint8) *CrW {")
}

func TestGenerateDerivedEnumAlias(t *testing.T) {
	content := generateTimerUnit(t)

	assert.Contains(t, content, "type IcrRModeSel = CrRModeSel")
	assert.Contains(t, content, "type IcrWModeSel = CrWModeSel")

	// The alias does not redeclare the constants.
	decls := regexp.MustCompile(`CrRModeSelUp\s+CrRModeSel = 0x0`).FindAllString(content, -1)
	assert.Len(t, decls, 1)

	assert.Contains(t, content, "func (w *IcrW) Mode2() icrWMode2 {")
	assert.Contains(t, content, "func (w *IcrW) Mode2Enum(value IcrWModeSel) *IcrW {")
}

func TestGenerateEmptyDoc(t *testing.T) {
	dev := timerDevice()
	dev.Peripherals[0].Description = ""

	dp, err := plan.ResolveDevice(&dev)
	require.NoError(t, err)

	g := NewGenerator(GeneratorConfig{})

	files, err := g.Generate(dp)
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.NotContains(t, content, "// \npackage")
	assert.Contains(t, content, "package timer0")
}
