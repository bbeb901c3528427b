// Package main provides the entry point for the aoc CLI tool.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/Sumatoshi-tech/aoc/cmd/aoc/commands"
	"github.com/Sumatoshi-tech/aoc/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		os.Exit(1)
	}

	err = commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
