package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type fileResult struct {
	File string `json:"file" yaml:"file"`
	// ID is the archive id, set only with --save.
	ID          *uuid.UUID         `json:"id,omitempty" yaml:"id,omitempty"`
	Tokens      token.Sequence     `json:"tokens" yaml:"tokens"`
	Diagnostics []lexer.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func writeResults(w io.Writer, format string, results []fileResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range results {
			writeTable(w, r)
		}
		for _, r := range results {
			if r.ID != nil {
				fmt.Fprintf(w, "%s -> %s\n", r.File, r.ID)
			}
		}
		return nil
	}
}

func writeTable(w io.Writer, r fileResult) {
	fmt.Fprintf(w, "== %s ==\n", r.File)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tVALUE\tPOS\tOFFSET\tLEN")
	for i, t := range r.Tokens.All() {
		value := ""
		if t.Kind.HasValue() {
			value = strconv.Quote(t.Value)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d:%d\t%d\t%d\n",
			i, t.Kind, value, t.Location.Line, t.Location.Column, t.Location.Offset, t.Location.Length)
	}
	tw.Flush()

	if n := len(r.Diagnostics); n > 0 {
		fmt.Fprintf(w, "%d unrecognized byte(s) skipped\n", n)
	}
	fmt.Fprintln(w)
}
