package es

import (
	"time"

	"github.com/DjordjeVuckovic/proteus/internal/domain"
	"github.com/DjordjeVuckovic/proteus/internal/lexer"
	"github.com/DjordjeVuckovic/proteus/internal/token"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// ScanDocument is the Elasticsearch representation of a scan.
type ScanDocument struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Source          []byte             `json:"source"`
	Tokens          []TokenDocument    `json:"tokens"`
	Kinds           []string           `json:"kinds"`
	Identifiers     []string           `json:"identifiers"`
	TokenCount      int                `json:"token_count"`
	Diagnostics     []lexer.Diagnostic `json:"diagnostics"`
	DiagnosticCount int                `json:"diagnostic_count"`
	CreatedAt       time.Time          `json:"created_at"`
	IndexedAt       time.Time          `json:"indexed_at"`
}

type TokenDocument struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func toDocument(scan domain.Scan, indexedAt time.Time) ScanDocument {
	doc := ScanDocument{
		ID:              scan.ID.String(),
		Name:            scan.Name,
		Source:          scan.Source,
		Tokens:          make([]TokenDocument, len(scan.Tokens)),
		TokenCount:      len(scan.Tokens),
		Diagnostics:     scan.Diagnostics,
		DiagnosticCount: len(scan.Diagnostics),
		CreatedAt:       scan.CreatedAt,
		IndexedAt:       indexedAt,
	}

	seen := make(map[string]bool)
	for i, t := range scan.Tokens {
		doc.Tokens[i] = TokenDocument{
			Kind:   t.Kind.String(),
			Value:  t.Value,
			Offset: t.Location.Offset,
			Length: t.Location.Length,
			Line:   t.Location.Line,
			Column: t.Location.Column,
		}
		if kind := t.Kind.String(); !seen[kind] {
			seen[kind] = true
			doc.Kinds = append(doc.Kinds, kind)
		}
		if t.Kind == token.IDENTIFIER {
			doc.Identifiers = append(doc.Identifiers, t.Value)
		}
	}
	return doc
}

func (d ScanDocument) toDomain() (*domain.Scan, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}

	scan := &domain.Scan{
		ID:          id,
		Name:        d.Name,
		Source:      d.Source,
		Tokens:      make([]token.Token, len(d.Tokens)),
		Diagnostics: d.Diagnostics,
		CreatedAt:   d.CreatedAt,
	}
	if scan.Diagnostics == nil {
		scan.Diagnostics = []lexer.Diagnostic{}
	}
	for i, t := range d.Tokens {
		kind, err := token.ParseKind(t.Kind)
		if err != nil {
			return nil, err
		}
		scan.Tokens[i] = token.Token{
			Kind:  kind,
			Value: t.Value,
			Location: token.Location{
				Offset: t.Offset,
				Length: t.Length,
				Line:   t.Line,
				Column: t.Column,
			},
		}
	}
	return scan, nil
}

func scanMappings() *types.TypeMapping {
	tokens := types.NewNestedProperty()
	tokens.Properties = map[string]types.Property{
		"kind":   types.NewKeywordProperty(),
		"value":  types.NewKeywordProperty(),
		"offset": types.NewIntegerNumberProperty(),
		"length": types.NewIntegerNumberProperty(),
		"line":   types.NewIntegerNumberProperty(),
		"column": types.NewIntegerNumberProperty(),
	}

	diagnostics := types.NewObjectProperty()
	diagnostics.Properties = map[string]types.Property{
		"code":   types.NewKeywordProperty(),
		"offset": types.NewIntegerNumberProperty(),
		"byte":   types.NewIntegerNumberProperty(),
		"line":   types.NewIntegerNumberProperty(),
		"column": types.NewIntegerNumberProperty(),
	}

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":               types.NewKeywordProperty(),
			"name":             types.NewKeywordProperty(),
			"source":           types.NewBinaryProperty(),
			"tokens":           tokens,
			"kinds":            types.NewKeywordProperty(),
			"identifiers":      types.NewKeywordProperty(),
			"token_count":      types.NewIntegerNumberProperty(),
			"diagnostics":      diagnostics,
			"diagnostic_count": types.NewIntegerNumberProperty(),
			"created_at":       types.NewDateProperty(),
			"indexed_at":       types.NewDateProperty(),
		},
	}
}
