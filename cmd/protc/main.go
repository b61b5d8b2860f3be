// Command protc tokenizes protc source files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/proteus/internal/conformance"
	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/storage/factory"
)

var newStore = factory.NewStore

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, fs, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	switch {
	case cfg.Help:
		printUsage(fs, stdout)
		return 0
	case cfg.Version:
		fmt.Fprintf(stdout, "protc version %s\n", version)
		return 0
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	slog.SetLogLoggerLevel(level)
	for _, opt := range cfg.Ignored {
		slog.Debug("Ignoring unknown option", "option", opt)
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.SuitePath != "" {
		return runSuite(cfg, stdout)
	}

	var archive *factory.StorageConfig
	if cfg.Save {
		archive, err = archiveConfig()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	return tokenizeFiles(cfg, archive, stdout, stderr)
}

// archiveConfig loads the store used by --save, which must outlive the process.
func archiveConfig() (*factory.StorageConfig, error) {
	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}
	if cfg.Type == storage.InMem {
		return nil, fmt.Errorf("--save needs a persistent store: set STORAGE_TYPE to %q or %q", storage.PG, storage.ES)
	}
	return cfg, nil
}

func runSuite(cfg cliConfig, stdout io.Writer) int {
	suite, err := conformance.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	report := conformance.Run(suite)
	conformance.WriteTable(report, stdout)

	if cfg.ReportPath != "" {
		if err := conformance.WriteJSON(report, cfg.ReportPath); err != nil {
			slog.Error("Failed to write report", "path", cfg.ReportPath, "error", err)
			return 1
		}
		slog.Info("Report written", "path", cfg.ReportPath)
	}

	if !report.OK() {
		return 1
	}
	return 0
}

func tokenizeFiles(cfg cliConfig, archive *factory.StorageConfig, stdout, stderr io.Writer) int {
	if len(cfg.Files) == 0 {
		slog.Info("No input files")
		return 0
	}

	status := 0
	results := make([]fileResult, 0, len(cfg.Files))
	scans := make([]domain.Scan, 0, len(cfg.Files))

	for _, path := range cfg.Files {
		src, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read file", "path", path, "error", err)
			status = 1
			continue
		}

		res := lexer.Tokenize(src)
		slog.Debug("Tokenized", "path", path, "tokens", res.Tokens.Len(), "skipped", len(res.Diagnostics))

		if cfg.Diagnostics && res.HasErrors() {
			idx := lexer.NewLineIndex(src)
			for _, d := range res.Diagnostics {
				lexer.WriteDiagnostic(stderr, path, idx, d)
			}
		}

		results = append(results, fileResult{File: path, Tokens: res.Tokens, Diagnostics: res.Diagnostics})
		if archive != nil {
			scans = append(scans, domain.Scan{
				Name:        path,
				Source:      src,
				Tokens:      res.Tokens.Slice(),
				Diagnostics: res.Diagnostics,
			})
		}
	}

	// scans[i] belongs to results[i]
	if archive != nil && len(scans) > 0 {
		if err := saveScans(context.Background(), archive, scans); err != nil {
			slog.Error("Failed to archive scans", "error", err)
			status = 1
		} else {
			for i := range scans {
				results[i].ID = &scans[i].ID
			}
		}
	}

	if err := writeResults(stdout, cfg.Format, results); err != nil {
		slog.Error("Failed to write output", "error", err)
		return 1
	}

	return status
}

func saveScans(ctx context.Context, cfg *factory.StorageConfig, scans []domain.Scan) error {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveBulk(ctx, scans); err != nil {
		return fmt.Errorf("save %d scans: %w", len(scans), err)
	}
	slog.Info("Scans archived", "count", len(scans), "storage", cfg.Type)
	return nil
}
