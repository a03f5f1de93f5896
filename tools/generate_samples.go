//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
)

func main() {
	outDir := "samples"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Printf("Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	gen := generator.New(nil)
	for _, t := range catalog.All() {
		out := filepath.Join(outDir, string(t.ID)+".png")
		res, err := gen.Generate(context.Background(), generator.Config{
			Text:       t.SampleText,
			Template:   string(t.ID),
			OutputPath: out,
		})
		if err != nil {
			fmt.Printf("Error rendering %s: %v\n", t.ID, err)
			os.Exit(1)
		}
		fmt.Printf("%-18s %-10s %d items -> %s\n", t.ID, res.Model.Category(), res.Model.Len(), out)
	}
}
