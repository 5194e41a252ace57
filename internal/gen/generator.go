package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"regmap-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: "./generated",
	}
}

// Generator generates Go register access units from a resolved device
// plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the unit-relative path of the file
	// (e.g. "timer0/timer0.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one unit per peripheral of the device plan.
// Returns a list of generated files.
func (g *Generator) Generate(d *plan.DevicePlan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, p := range d.Peripherals {
		file, err := g.GeneratePeripheral(p)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GeneratePeripheral generates the unit of a single peripheral: one
// package in its own directory, named after the peripheral.
func (g *Generator) GeneratePeripheral(p *plan.PeripheralPlan) (*GeneratedFile, error) {
	data := buildTemplateData(p)

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid
		// debugging. This is intentionally non-fatal for the write
		// attempt.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

var unitTemplate = template.Must(template.New("unit").Parse(`// Code generated by regmap-generator. DO NOT EDIT.

{{if .Doc}}// {{.Doc}}
{{end}}package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Items}}
{{.}}
{{end}}`))
