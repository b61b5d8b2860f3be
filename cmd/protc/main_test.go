package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/proteus/internal/conformance"
	"github.com/DjordjeVuckovic/proteus/internal/storage"
	"github.com/DjordjeVuckovic/proteus/internal/storage/factory"
	"github.com/DjordjeVuckovic/proteus/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Version(t *testing.T) {
	for _, arg := range []string{"-v", "--version"} {
		code, out, _ := runCLI(arg)
		assert.Equal(t, 0, code)
		assert.Equal(t, "protc version 0.0.1\n", out)
	}
}

func TestRun_Help(t *testing.T) {
	code, out, _ := runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: protc [flags] <file>...")
	assert.Contains(t, out, "--format")
}

func TestRun_TableOutput(t *testing.T) {
	path := writeFile(t, "main.pr", "fn f() -> i32 { return 12 }")

	code, out, errOut := runCLI(path)
	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "== "+path+" ==")
	assert.Contains(t, out, "OPERATOR_ARROW")
	assert.Contains(t, out, `"i32"`)
	assert.Contains(t, out, "EOF")
}

func TestRun_JSONOutput(t *testing.T) {
	path := writeFile(t, "a.pr", "a==b")

	code, out, _ := runCLI("--format", "json", path)
	require.Equal(t, 0, code)

	var results []struct {
		File   string        `json:"file"`
		Tokens []token.Token `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].File)
	require.Len(t, results[0].Tokens, 4)
	assert.Equal(t, token.OPERATOR_EQUALS, results[0].Tokens[1].Kind)
	assert.Equal(t, 4, results[0].Tokens[3].Location.Offset)
}

func TestRun_YAMLOutput(t *testing.T) {
	path := writeFile(t, "a.pr", "3.14.15")

	code, out, _ := runCLI("--format=yaml", path)
	require.Equal(t, 0, code)

	var results []struct {
		File   string        `yaml:"file"`
		Tokens []token.Token `yaml:"tokens"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Len(t, results[0].Tokens, 4)
	assert.Equal(t, "3.14", results[0].Tokens[0].Value)
	assert.Equal(t, token.OPERATOR_DOT, results[0].Tokens[1].Kind)
}

func TestRun_Diagnostics(t *testing.T) {
	path := writeFile(t, "bad.pr", "fn f() {\n  x # y\n}")

	code, _, errOut := runCLI(path)
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, path+":2:5: error[L0001]: unrecognized byte '#' (0x23)")
	assert.Contains(t, errOut, " 2 |   x # y\n")

	_, _, errOut = runCLI("--diagnostics=false", path)
	assert.NotContains(t, errOut, "L0001")
}

func TestRun_MissingFileDoesNotStopOthers(t *testing.T) {
	good := writeFile(t, "good.pr", "fn")
	missing := filepath.Join(t.TempDir(), "missing.pr")

	code, out, _ := runCLI(missing, good)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "== "+good+" ==")
}

func TestRun_UnknownOptionsIgnored(t *testing.T) {
	path := writeFile(t, "a.pr", "x")

	code, out, _ := runCLI("--frobnicate", path, "-Z", "--also=1")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "== "+path+" ==")
}

func TestRun_InvalidFormat(t *testing.T) {
	code, _, errOut := runCLI("--format", "xml", "a.pr")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown format "xml"`)
}

func TestRun_Suite(t *testing.T) {
	suite := filepath.Join("..", "..", "internal", "conformance", "testdata", "functions.yaml")
	report := filepath.Join(t.TempDir(), "report.json")

	code, out, _ := runCLI("--suite", suite, "--report", report)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "7 passed, 0 failed")

	written, err := conformance.ReadJSON(report)
	require.NoError(t, err)
	assert.Equal(t, "functions", written.Suite)
	assert.Equal(t, 7, written.Passed)

	failing := writeFile(t, "fail.yaml", `
name: failing
cases:
  - name: wrong
    input: "x"
    tokens: [{kind: EOF, offset: 0, length: 0}]
`)
	code, out, _ = runCLI("--suite", failing)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "0 passed, 1 failed")
}

func TestRun_SaveRejectsInMemoryStore(t *testing.T) {
	for _, storageType := range []string{"", "in_mem"} {
		t.Run("STORAGE_TYPE="+storageType, func(t *testing.T) {
			t.Setenv("STORAGE_TYPE", storageType)
			path := writeFile(t, "a.pr", "fn")

			code, out, errOut := runCLI("--save", path)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "--save needs a persistent store")
		})
	}
}

// useStore routes --save to mem for the duration of the test.
func useStore(t *testing.T, mem *in_mem.InMemStorer) {
	t.Helper()

	t.Setenv("STORAGE_TYPE", "pg")
	t.Setenv("PG_CONNECTION_STRING", "postgres://unused")
	orig := newStore
	newStore = func(ctx context.Context, cfg *factory.StorageConfig) (storage.Store, error) {
		require.Equal(t, storage.PG, cfg.Type)
		return mem, nil
	}
	t.Cleanup(func() { newStore = orig })
}

func TestRun_SavePrintsArchiveIDs(t *testing.T) {
	mem := in_mem.NewInMemStorer()
	useStore(t, mem)
	path := writeFile(t, "bin.pr", "fn \xff\x00x")

	code, out, _ := runCLI("--save", path)
	require.Equal(t, 0, code)

	_, line, found := strings.Cut(out, path+" -> ")
	require.True(t, found, out)
	id, err := uuid.Parse(strings.TrimSpace(line))
	require.NoError(t, err)

	got, err := mem.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, path, got.Name)
	assert.Equal(t, []byte("fn \xff\x00x"), got.Source)
}

func TestRun_SaveJSONCarriesIDs(t *testing.T) {
	mem := in_mem.NewInMemStorer()
	useStore(t, mem)
	a := writeFile(t, "a.pr", "a")
	b := writeFile(t, "b.pr", "b")

	code, out, _ := runCLI("--save", "--format", "json", a, b)
	require.Equal(t, 0, code)

	var results []struct {
		File string    `json:"file"`
		ID   uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, r := range results {
		got, err := mem.Get(context.Background(), r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.File, got.Name)
	}
	assert.Equal(t, 2, mem.Len())
}

func TestRun_HelpAndVersionIgnoreBadLogLevel(t *testing.T) {
	code, out, _ := runCLI("--log-level", "bogus", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: protc")

	code, out, _ = runCLI("--log-level=bogus", "-v")
	assert.Equal(t, 0, code)
	assert.Equal(t, "protc version 0.0.1\n", out)

	code, _, errOut := runCLI("--log-level", "bogus", "a.pr")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `invalid log level "bogus"`)
}

func TestRun_ShortClusterKeepsKnownLetters(t *testing.T) {
	code, out, _ := runCLI("-hx")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: protc")

	code, out, _ = runCLI("-xv")
	assert.Equal(t, 0, code)
	assert.Equal(t, "protc version 0.0.1\n", out)
}

func TestSplitUnknownFlags(t *testing.T) {
	cfg := cliConfig{}
	fs := newFlagSet(&cfg, &bytes.Buffer{})

	tests := []struct {
		name    string
		args    []string
		known   []string
		unknown []string
	}{
		{
			name:    "long and short",
			args:    []string{"-v", "--format", "json", "--nope", "-x", "f.pr", "--", "--nope2"},
			known:   []string{"-v", "--format", "json", "f.pr", "--", "--nope2"},
			unknown: []string{"--nope", "-x"},
		},
		{
			name:    "mixed cluster",
			args:    []string{"-hxv", "f.pr"},
			known:   []string{"-hv", "f.pr"},
			unknown: []string{"-x"},
		},
		{
			name:    "unknown letter with value",
			args:    []string{"-x=1", "-hy=2"},
			known:   []string{"-h"},
			unknown: []string{"-x", "-y"},
		},
		{
			name:    "non ascii letter",
			args:    []string{"-\u00e9h"},
			known:   []string{"-h"},
			unknown: []string{"-\u00e9"},
		},
		{
			name:  "lone dash is positional",
			args:  []string{"-"},
			known: []string{"-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			known, unknown := splitUnknownFlags(fs, tt.args)
			assert.Equal(t, tt.known, known)
			assert.Equal(t, tt.unknown, unknown)
		})
	}
}
