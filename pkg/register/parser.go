package register

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Parser loads and validates risk-register files against a Schema.
//
// Parse performs, in order: file existence check, CSV decode, schema
// validation (required columns), data validation (empty identifiers,
// rating domains), and normalization (trimming, integer coercion,
// risk_score derivation). Any failure rejects the whole file.
type Parser struct {
	schema Schema
}

// NewParser creates a parser with the given schema. A nil schema pointer
// selects DefaultSchema.
func NewParser(schema *Schema) *Parser {
	s := DefaultSchema()
	if schema != nil {
		s = *schema
	}
	return &Parser{schema: s}
}

// Parse reads, validates, and normalizes the register at path.
//
// It returns a *ValidationError when the file is missing, is not readable
// as delimited tabular data, lacks a required column, contains an empty
// risk_id or risk_description, or contains a likelihood or impact outside
// the schema's valid domain.
func (p *Parser) Parse(path string) (*Table, error) {
	slog.Info("parsing risk register", "path", path)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ValidationError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &ValidationError{Path: path, Message: "file not readable", Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ValidationError{
			Path:    path,
			Message: "not readable as delimited tabular data",
			Cause:   err,
		}
	}
	if len(rows) == 0 {
		return nil, &ValidationError{Path: path, Message: "file is empty (header row required)"}
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	index, err := p.validateSchema(path, header)
	if err != nil {
		return nil, err
	}

	records, err := p.buildRecords(path, index, rows[1:])
	if err != nil {
		return nil, err
	}

	table := &Table{
		Columns: append(header, ColumnRiskScore),
		Records: records,
	}

	slog.Info("risk register parsed",
		"path", path,
		"rows", len(table.Records),
		"columns", len(table.Columns),
	)
	return table, nil
}

// validateSchema checks that every required column is present and returns
// a column-name to index mapping.
func (p *Parser) validateSchema(path string, header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, required := range p.schema.RequiredColumns {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
		}
	}

	return index, nil
}

// buildRecords validates and normalizes every data row. The whole file is
// rejected on the first violation; there is no row filtering.
func (p *Parser) buildRecords(path string, index map[string]int, rows [][]string) ([]Record, error) {
	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows))
	for n, row := range rows {
		riskID := cell(row, ColumnRiskID)
		if riskID == "" {
			return nil, &ValidationError{
				Path:    path,
				Column:  ColumnRiskID,
				Message: fmt.Sprintf("empty value in data row %d", n+1),
			}
		}

		description := cell(row, ColumnDescription)
		if description == "" {
			return nil, &ValidationError{
				Path:    path,
				Column:  ColumnDescription,
				Message: fmt.Sprintf("empty value in data row %d (risk %s)", n+1, riskID),
			}
		}

		likelihood, err := parseRating(cell(row, ColumnLikelihood), p.schema.ValidLikelihood)
		if err != nil {
			return nil, &ValidationError{
				Path:    path,
				Column:  ColumnLikelihood,
				Message: fmt.Sprintf("risk %s: %v (must be one of %v)", riskID, err, p.schema.ValidLikelihood),
			}
		}

		impact, err := parseRating(cell(row, ColumnImpact), p.schema.ValidImpact)
		if err != nil {
			return nil, &ValidationError{
				Path:    path,
				Column:  ColumnImpact,
				Message: fmt.Sprintf("risk %s: %v (must be one of %v)", riskID, err, p.schema.ValidImpact),
			}
		}

		records = append(records, Record{
			RiskID:      riskID,
			Description: description,
			Likelihood:  likelihood,
			Impact:      impact,
			RiskScore:   likelihood * impact,
			Category:    cell(row, ColumnCategory),
			Owner:       cell(row, ColumnOwner),
			Mitigation:  cell(row, ColumnMitigation),
			Status:      cell(row, ColumnStatus),
		})
	}

	return records, nil
}

// parseRating coerces a rating cell to an integer and checks it against
// the valid domain.
func parseRating(value string, domain []int) (int, error) {
	rating, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q", value)
	}
	for _, v := range domain {
		if rating == v {
			return rating, nil
		}
	}
	return 0, fmt.Errorf("rating %d out of range", rating)
}
