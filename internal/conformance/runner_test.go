package conformance

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	actual := lexer.TokenizeString("fn f").Tokens.Slice()

	t.Run("equal", func(t *testing.T) {
		expected := []token.Token{
			{Kind: token.KEYWORD, Value: "fn", Location: token.Location{Offset: 0, Length: 2, Line: 1, Column: 1}},
			{Kind: token.IDENTIFIER, Value: "f", Location: token.Location{Offset: 3, Length: 1}},
			{Kind: token.EOF, Location: token.Location{Offset: 4}},
		}
		assert.Empty(t, Compare(expected, actual))
	})

	t.Run("field differences", func(t *testing.T) {
		expected := []token.Token{
			{Kind: token.IDENTIFIER, Value: "fn", Location: token.Location{Offset: 0, Length: 2}},
			{Kind: token.IDENTIFIER, Value: "g", Location: token.Location{Offset: 3, Length: 1, Column: 5}},
			{Kind: token.EOF, Location: token.Location{Offset: 4}},
		}
		got := Compare(expected, actual)
		assert.Equal(t, []Mismatch{
			{Index: 0, Field: "kind", Expected: "IDENTIFIER", Actual: "KEYWORD"},
			{Index: 1, Field: "value", Expected: `"g"`, Actual: `"f"`},
			{Index: 1, Field: "column", Expected: "5", Actual: "4"},
		}, got)
		assert.Equal(t, `token 1 value: expected "g", got "f"`, got[1].String())
	})

	t.Run("count difference", func(t *testing.T) {
		expected := []token.Token{{Kind: token.EOF, Location: token.Location{Offset: 4}}}
		got := Compare(expected, actual)
		require.NotEmpty(t, got)
		assert.Equal(t, Mismatch{Index: -1, Field: "count", Expected: "1", Actual: "3"}, got[0])
		assert.Equal(t, "count: expected 1, got 3", got[0].String())
	})
}

func TestRun_TestdataSuitePasses(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "functions.yaml"))
	require.NoError(t, err)

	r := Run(s)
	for _, cr := range r.Cases {
		assert.True(t, cr.Passed, "case %q: %v", cr.Name, cr.Mismatches)
		assert.Equal(t, 3, cr.Latency.SampleCount)
	}
	assert.True(t, r.OK())
	assert.Equal(t, 7, r.Passed)
	assert.Zero(t, r.Failed)
	assert.Equal(t, "functions", r.Suite)
}

func TestRun_ReportsFailures(t *testing.T) {
	s := &Suite{
		Name: "broken",
		Cases: []Case{
			{
				Name:    "wrong offset",
				Input:   " x",
				Skipped: []int{},
				Tokens: []ExpectedToken{
					{Kind: token.IDENTIFIER, Value: "x", Offset: 0, Length: 1},
					{Kind: token.EOF, Offset: 2},
				},
			},
			{
				Name:    "missing diagnostic",
				Input:   "$",
				Skipped: []int{},
				Tokens:  []ExpectedToken{{Kind: token.EOF, Offset: 1}},
			},
		},
	}

	r := Run(s)
	assert.False(t, r.OK())
	assert.Equal(t, 2, r.Failed)
	assert.Equal(t, []Mismatch{{Index: 0, Field: "offset", Expected: "0", Actual: "1"}}, r.Cases[0].Mismatches)
	assert.Equal(t, []Mismatch{{Index: -1, Field: "skipped", Expected: "[]", Actual: "[0]"}}, r.Cases[1].Mismatches)
	assert.Equal(t, 1, r.Cases[0].Latency.SampleCount)

	var buf bytes.Buffer
	WriteTable(r, &buf)
	out := buf.String()
	assert.Contains(t, out, "=== Conformance: broken ===")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "token 0 offset: expected 0, got 1")
	assert.Contains(t, out, "0 passed, 2 failed")
}

func TestWriteJSON(t *testing.T) {
	r := &Report{
		Suite:  "s",
		Passed: 0,
		Failed: 1,
		Cases: []CaseResult{{
			Name:       "arrow",
			TokenCount: 2,
			Mismatches: []Mismatch{{Index: 0, Field: "value", Expected: `"->"`, Actual: `"<"`}},
		}},
	}
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format_version": 1`)
	assert.Contains(t, string(data), `"OPERATOR_ARROW"`)
	assert.Contains(t, string(data), `"return"`)
	assert.Contains(t, string(data), `\"->\"`, "mismatch values are not HTML-escaped")

	back, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "s", back.Suite)
	assert.Equal(t, 1, back.Failed)
	require.Len(t, back.Cases, 1)
	assert.Equal(t, r.Cases[0].Mismatches, back.Cases[0].Mismatches)
}

func TestReadJSON_RejectsOtherVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format_version": 0, "suite": "s"}`), 0644))

	_, err := ReadJSON(path)
	assert.ErrorContains(t, err, "unsupported report format version 0")
}

func TestComputeLatencyStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.True(t, ComputeLatencyStats(nil).IsZero())
	})

	t.Run("values", func(t *testing.T) {
		stats := ComputeLatencyStats([]time.Duration{
			50 * time.Millisecond,
			10 * time.Millisecond,
			30 * time.Millisecond,
			20 * time.Millisecond,
			40 * time.Millisecond,
		})
		assert.Equal(t, 10*time.Millisecond, stats.Min)
		assert.Equal(t, 50*time.Millisecond, stats.Max)
		assert.Equal(t, 30*time.Millisecond, stats.Mean)
		assert.Equal(t, 30*time.Millisecond, stats.Median)
		assert.InDelta(t, float64(48*time.Millisecond), float64(stats.P95), float64(time.Microsecond))
		assert.Equal(t, 5, stats.SampleCount)
	})
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "-", fmtDuration(0))
	assert.Equal(t, "500ns", fmtDuration(500))
	assert.Equal(t, "1.5µs", fmtDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.00ms", fmtDuration(2*time.Millisecond))
}
