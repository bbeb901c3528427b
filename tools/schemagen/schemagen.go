// Package main generates JSON schemas for the machine-readable aoc outputs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sumatoshi-tech/aoc/pkg/report"
)

var outputDir string

func main() {
	flag.StringVar(&outputDir, "o", "docs/schemas", "Output directory for schemas")
	flag.Parse()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for name, schema := range report.Schemas() {
		if err := writeSchema(name, schema); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing schema for %s: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Printf("Generated schema for %s\n", name)
	}

	fmt.Println("All schemas generated successfully")
}

func writeSchema(name string, schema *report.Schema) error {
	data, err := report.MarshalSchema(schema)
	if err != nil {
		return err
	}

	path := filepath.Join(outputDir, name+".json")

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
