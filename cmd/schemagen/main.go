// Command schemagen writes the JSON Schema for conformance suite files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	"github.com/DjordjeVuckovic/proteus/internal/conformance"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/DjordjeVuckovic/proteus/pkg/schema"
	"github.com/spf13/pflag"
)

const schemaFile = "conformance-suite.schema.json"

func main() {
	outputDir := pflag.StringP("output", "o", "api", "Output directory for generated schemas")
	pflag.Parse()

	path, err := generate(*outputDir)
	if err != nil {
		slog.Error("Failed to generate schema", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Generated JSON schema: %s\n", path)
}

func generate(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	out, err := newGenerator().GenerateJSONSchema(conformance.Suite{})
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, schemaFile)
	if err := os.WriteFile(path, []byte(out+"\n"), 0644); err != nil {
		return "", fmt.Errorf("write schema: %w", err)
	}
	return path, nil
}

func newGenerator() *schema.Generator {
	kinds := token.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return schema.NewGenerator("https://github.com/DjordjeVuckovic/proteus/schemas").
		Enum(reflect.TypeOf(token.Kind(0)), names)
}
