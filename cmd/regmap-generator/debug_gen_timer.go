//go:build ignore

package main

import (
	"fmt"
	"os"

	"regmap-generator/internal/gen"
	"regmap-generator/internal/plan"
	"regmap-generator/internal/svd"
)

func main() {
	doc, err := svd.LoadFile("./examples/timer.svd")
	if err != nil {
		fmt.Println("load svd:", err)
		os.Exit(1)
	}

	dev, err := doc.ToModel()
	if err != nil {
		fmt.Println("to model:", err)
		os.Exit(1)
	}

	dp, err := plan.ResolveDevice(dev)
	if err != nil {
		fmt.Println("resolve error:", err)
		os.Exit(1)
	}
	for _, w := range dp.Diagnostics.Warnings {
		fmt.Println("warning:", w.String())
	}

	generator := gen.NewGenerator(gen.DefaultGeneratorConfig())
	files, genErr := generator.Generate(dp)
	if genErr != nil {
		fmt.Println("generate error:", genErr)
		for _, f := range files {
			fmt.Println("===", f.Filename, "===")
			fmt.Println(string(f.Content))
		}
		os.Exit(1)
	}

	for _, f := range files {
		fmt.Println("===", f.Filename, "===")
		fmt.Println(string(f.Content))
	}
}
