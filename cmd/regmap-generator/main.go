// Package main provides the CLI entrypoint for regmap-generator.
//
// regmap-generator is a codegen tool that:
//   - Parses SVD hardware description files
//   - Resolves register layouts, access modes, and enumerated values
//   - Generates type-safe Go register access units, one per peripheral
package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"regmap-generator/internal/config"
	"regmap-generator/internal/diagnostic"
	"regmap-generator/internal/gen"
	"regmap-generator/internal/match"
	"regmap-generator/internal/model"
	"regmap-generator/internal/plan"
	"regmap-generator/internal/svd"
)

var (
	genOpts = struct {
		input  string
		output string
		config string
	}{}

	rootCmd = &cobra.Command{
		Use:   "regmap-generator [peripheral]",
		Short: "Generate Go register access code from an SVD description",
		Long: "Generate Go register access code from an SVD hardware description.\n" +
			"Given a peripheral name, only that peripheral's unit is generated;\n" +
			"otherwise every peripheral of the device gets one.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&genOpts.input, "input", "i", "", "SVD file to generate from")
	rootCmd.Flags().StringVarP(&genOpts.output, "output", "o", "", "output directory (overrides the config)")
	rootCmd.Flags().StringVarP(&genOpts.config, "config", "c", "", "YAML config file")

	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("ERROR"), err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()

	if genOpts.config != "" {
		loaded, err := config.LoadFile(genOpts.config)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if genOpts.output != "" {
		cfg.Output = genOpts.output
	}

	doc, err := svd.LoadFile(genOpts.input)
	if err != nil {
		return err
	}

	dev, err := doc.ToModel()
	if err != nil {
		return err
	}

	cfg.MergeDefaults(dev)

	if len(args) == 1 {
		if err := keepPeripheral(dev, args[0]); err != nil {
			return err
		}
	} else {
		applyFilter(dev, cfg)
	}

	dp, err := plan.ResolveDevice(dev)
	if err != nil {
		return err
	}

	printWarnings(&dp.Diagnostics)

	g := gen.NewGenerator(gen.GeneratorConfig{OutputDir: cfg.Output})

	files, err := g.Generate(dp)
	if err != nil {
		return err
	}

	return gen.WriteFiles(files, cfg.Output)
}

// keepPeripheral narrows the device to the one named peripheral.
func keepPeripheral(dev *model.Device, name string) error {
	names := make([]string, 0, len(dev.Peripherals))

	for i := range dev.Peripherals {
		if dev.Peripherals[i].Name == name {
			dev.Peripherals = dev.Peripherals[i : i+1]

			return nil
		}

		names = append(names, dev.Peripherals[i].Name)
	}

	if closest, ok := match.Closest(name, names); ok {
		return fmt.Errorf("peripheral %s not found in device %s (closest match: %s)",
			name, dev.Name, closest)
	}

	return fmt.Errorf("peripheral %s not found in device %s", name, dev.Name)
}

// applyFilter drops peripherals the config filter excludes.
func applyFilter(dev *model.Device, cfg *config.Config) {
	if len(cfg.Peripherals) == 0 {
		return
	}

	kept := dev.Peripherals[:0]

	for i := range dev.Peripherals {
		if cfg.Includes(dev.Peripherals[i].Name) {
			kept = append(kept, dev.Peripherals[i])
		}
	}

	dev.Peripherals = kept
}

func printWarnings(diags *diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, aurora.Yellow("WARNING"), w.String())
	}
}
