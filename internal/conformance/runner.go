package conformance

import (
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/lexer"
)

// Run scans every case of s and compares the outcome against its
// expectations. Each case is scanned s.Runs times; only the first result is
// compared, the rest feed the latency figures.
func Run(s *Suite) *Report {
	r := &Report{
		Suite:       s.Name,
		Timestamp:   time.Now().UTC(),
		Environment: currentEnvironment(),
		Cases:       make([]CaseResult, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		cr := runCase(c, s.runs())
		if cr.Passed {
			r.Passed++
		} else {
			r.Failed++
			slog.Debug("conformance case failed", "suite", s.Name, "case", c.Name, "mismatches", len(cr.Mismatches))
		}
		r.Cases = append(r.Cases, cr)
	}

	return r
}

func runCase(c Case, runs int) CaseResult {
	src := []byte(c.Input)
	durations := make([]time.Duration, 0, runs)

	var res *lexer.Result
	for i := range runs {
		start := time.Now()
		out := lexer.Tokenize(src)
		durations = append(durations, time.Since(start))
		if i == 0 {
			res = out
		}
	}

	mismatches := Compare(c.Expected(), res.Tokens.Slice())
	mismatches = append(mismatches, compareSkipped(c.Skipped, res.Diagnostics)...)

	return CaseResult{
		Name:       c.Name,
		Passed:     len(mismatches) == 0,
		TokenCount: res.Tokens.Len(),
		Mismatches: mismatches,
		Latency:    ComputeLatencyStats(durations),
	}
}
