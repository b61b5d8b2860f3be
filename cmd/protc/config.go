package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

const version = "0.0.1"

type cliConfig struct {
	Help        bool
	Version     bool
	Format      string
	Diagnostics bool
	SuitePath   string
	ReportPath  string
	Save        bool
	LogLevel    string
	Files       []string
	Ignored     []string
}

var formats = []string{"table", "json", "yaml"}

func newFlagSet(cfg *cliConfig, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("protc", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false

	fs.BoolVarP(&cfg.Help, "help", "h", false, "Print this help and exit")
	fs.BoolVarP(&cfg.Version, "version", "v", false, "Print the version and exit")
	fs.StringVar(&cfg.Format, "format", "table", "Token output format: table, json or yaml")
	fs.BoolVar(&cfg.Diagnostics, "diagnostics", true, "Print unrecognized-byte diagnostics to stderr")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Run a conformance suite YAML instead of tokenizing files")
	fs.StringVar(&cfg.ReportPath, "report", "", "Write the conformance report as JSON to this path")
	fs.BoolVar(&cfg.Save, "save", false, "Archive scans in the store selected by STORAGE_TYPE")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	fs.Usage = func() { printUsage(fs, out) }
	return fs
}

func printUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: protc [flags] <file>...\n\nFlags:\n%s", fs.FlagUsages())
}

// parseFlags parses args. Unknown options are collected in Ignored and never
// consume the argument after them.
func parseFlags(args []string, out io.Writer) (cliConfig, *pflag.FlagSet, error) {
	cfg := cliConfig{}
	fs := newFlagSet(&cfg, out)

	known, unknown := splitUnknownFlags(fs, args)
	if err := fs.Parse(known); err != nil {
		return cfg, fs, err
	}
	cfg.Files = fs.Args()
	cfg.Ignored = unknown
	return cfg, fs, nil
}

func splitUnknownFlags(fs *pflag.FlagSet, args []string) (known, unknown []string) {
	for i, a := range args {
		switch {
		case a == "--":
			return append(known, args[i:]...), unknown
		case len(a) < 2 || a[0] != '-':
			known = append(known, a)
		case strings.HasPrefix(a, "--"):
			name, _, _ := strings.Cut(a[2:], "=")
			if fs.Lookup(name) != nil {
				known = append(known, a)
			} else {
				unknown = append(unknown, a)
			}
		default:
			kept, dropped := splitShortCluster(fs, a[1:])
			if kept != "" {
				known = append(known, "-"+kept)
			}
			unknown = append(unknown, dropped...)
		}
	}
	return known, unknown
}

// splitShortCluster separates the known shorthand letters of a cluster such
// as "hx" from the unknown ones. Whatever follows a letter that takes a value
// is that letter's value.
func splitShortCluster(fs *pflag.FlagSet, cluster string) (kept string, dropped []string) {
	var b strings.Builder
	lastKept := false
	for i, c := range cluster {
		if c == '=' {
			if lastKept {
				b.WriteString(cluster[i:])
			}
			break
		}
		var f *pflag.Flag
		if c < utf8.RuneSelf {
			f = fs.ShorthandLookup(string(c))
		}
		if f == nil {
			dropped = append(dropped, "-"+string(c))
			lastKept = false
			continue
		}
		b.WriteRune(c)
		lastKept = true
		if f.NoOptDefVal == "" {
			b.WriteString(cluster[i+1:])
			break
		}
	}
	return b.String(), dropped
}

func (c cliConfig) validate() error {
	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, expected one of %v", c.Format, formats)
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
