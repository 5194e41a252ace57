package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regmap-generator/internal/gen"
	"regmap-generator/internal/plan"
	"regmap-generator/internal/svd"
)

// TestExamples_TimerDevice drives the whole pipeline over the checked-in
// sample SVD, exactly the way the CLI does.
func TestExamples_TimerDevice(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	doc, err := svd.LoadFile(filepath.Join(repoRoot, "examples", "timer.svd"))
	require.NoError(t, err)

	dev, err := doc.ToModel()
	require.NoError(t, err)

	dp, err := plan.ResolveDevice(dev)
	require.NoError(t, err)

	assert.Empty(t, dp.Diagnostics.Warnings)

	g := gen.NewGenerator(gen.DefaultGeneratorConfig())
	files, err := g.Generate(dp)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join("timer0", "timer0.go"), files[0].Filename)
	assert.Equal(t, filepath.Join("timer1", "timer1.go"), files[1].Filename)

	content := string(files[0].Content)

	assert.Contains(t, content, "package timer0")
	assert.Contains(t, content, `"runtime/volatile"`)
	assert.Contains(t, content, "type Timer0 struct {")

	// Wrapper operations of the read-write control register
	assert.Contains(t, content, "func (r *Cr) Modify(f func(CrR, *CrW) *CrW) {")
	assert.Contains(t, content, "func (r *Cr) Write(f func(*CrW) *CrW) {")

	// Enumerated field on both views, shared by derivation
	assert.Contains(t, content, "func (r CrR) Dir() CrRDirSel {")
	assert.Contains(t, content, "func (w *CrW) DirEnum(value CrWDirSel) *CrW {")
	assert.Contains(t, content, "type IcrRDirSel = CrRDirSel")
	assert.Contains(t, content, "type IcrWDirSel = CrWDirSel")

	// Access-limited registers keep only their legal operations
	assert.Contains(t, content, "func (r *Sr) Read() SrR {")
	assert.NotContains(t, content, "SrW")
	assert.Contains(t, content, "func (r *Egr) WriteBits(bits uint32) {")
	assert.NotContains(t, content, "EgrR")

	// Registers without fields expose value-level operations
	assert.Contains(t, content, "func (r *Cnt) Read() uint16 {")
	assert.Contains(t, content, "func (r *Ccr) Write(value uint32) {")

	// The derived peripheral gets its own unit package
	assert.Contains(t, string(files[1].Content), "package timer1")
	assert.Contains(t, string(files[1].Content), "type Timer1 struct {")

	// Written units land one directory per peripheral
	outDir := t.TempDir()
	require.NoError(t, gen.WriteFiles(files, outDir))

	for _, f := range files {
		written, err := os.ReadFile(filepath.Join(outDir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, written)
	}
}
