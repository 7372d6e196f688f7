// tickbase-scalegen generates typed tick bases from a YAML clock manifest.
//
// Each clock in the manifest becomes a scale type (seconds per tick), a
// matching rate base (hertz per count), and the usual duration/instant/rate
// aliases, so project-specific timers get the same compile-time base checking
// as the built-in units.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	manifestPath := flag.String("manifest", "", "Path to the clock manifest YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkgName := flag.String("package", "", "Override the package name from the manifest")
	flag.Parse()

	if *manifestPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: tickbase-scalegen -manifest <path> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*manifestPath, *outputPath, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifestPath, outputPath, pkgName string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	if pkgName != "" {
		if !isGoIdentifier(pkgName) {
			return fmt.Errorf("package %q is not a valid Go identifier", pkgName)
		}
		m.Package = pkgName
	}

	code, err := GenerateClocks(m)
	if err != nil {
		return fmt.Errorf("generating clocks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s\n", outputPath)

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
