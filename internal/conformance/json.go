package conformance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/proteus/internal/token"
)

// ReportFormatVersion is bumped whenever the JSON report layout changes.
const ReportFormatVersion = 1

// jsonReport is the on-disk form of a Report. It records the token vocabulary
// the suite ran against, so reports from different lexer builds can be told
// apart.
type jsonReport struct {
	FormatVersion int          `json:"format_version"`
	Kinds         []token.Kind `json:"kinds"`
	Keywords      []string     `json:"keywords"`
	*Report
}

// WriteJSON writes r to path. Token values in mismatches are kept unescaped.
func WriteJSON(r *Report, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(jsonReport{
		FormatVersion: ReportFormatVersion,
		Kinds:         token.Kinds(),
		Keywords:      token.Keywords(),
		Report:        r,
	})
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	doc := jsonReport{Report: &Report{}}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if doc.FormatVersion != ReportFormatVersion {
		return nil, fmt.Errorf("unsupported report format version %d, expected %d", doc.FormatVersion, ReportFormatVersion)
	}
	return doc.Report, nil
}
