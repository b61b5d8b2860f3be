package conformance

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Conformance: %s ===\n\n", r.Suite)

	header := []string{"Case", "Result", "Tokens", "Min", "p50", "p95", "Max", "Samples"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, cr := range r.Cases {
		result := "PASS"
		if !cr.Passed {
			result = "FAIL"
		}
		s := cr.Latency
		row := []string{
			cr.Name,
			result,
			fmt.Sprintf("%d", cr.TokenCount),
			fmtDuration(s.Min),
			fmtDuration(s.Median),
			fmtDuration(s.P95),
			fmtDuration(s.Max),
			fmt.Sprintf("%d", s.SampleCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	for _, cr := range r.Cases {
		if cr.Passed {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", cr.Name)
		for _, m := range cr.Mismatches {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d failed\n", r.Passed, r.Failed)
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
}
