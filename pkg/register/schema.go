package register

// Column names recognized by the default schema.
const (
	ColumnRiskID      = "risk_id"
	ColumnDescription = "risk_description"
	ColumnLikelihood  = "likelihood"
	ColumnImpact      = "impact"
	ColumnCategory    = "category"
	ColumnOwner       = "owner"
	ColumnMitigation  = "mitigation"
	ColumnStatus      = "status"
	ColumnRiskScore   = "risk_score"
)

// HighRiskThreshold is the fixed policy threshold above which a register
// row counts as high risk. A risk_score of 15 corresponds to ratings such
// as likelihood 3 x impact 5.
const HighRiskThreshold = 15

// Schema describes the expected shape of a risk-register file.
//
// The zero value is not usable; construct with DefaultSchema or fill in
// every field explicitly.
type Schema struct {
	// RequiredColumns must all be present in the header row.
	RequiredColumns []string

	// OptionalColumns are carried through when present but never required.
	OptionalColumns []string

	// ValidLikelihood is the closed set of acceptable likelihood ratings.
	ValidLikelihood []int

	// ValidImpact is the closed set of acceptable impact ratings.
	ValidImpact []int
}

// DefaultSchema returns the standard risk-register schema: four required
// columns, four optional columns, and 1-5 rating domains.
func DefaultSchema() Schema {
	return Schema{
		RequiredColumns: []string{
			ColumnRiskID,
			ColumnDescription,
			ColumnLikelihood,
			ColumnImpact,
		},
		OptionalColumns: []string{
			ColumnCategory,
			ColumnOwner,
			ColumnMitigation,
			ColumnStatus,
		},
		ValidLikelihood: []int{1, 2, 3, 4, 5},
		ValidImpact:     []int{1, 2, 3, 4, 5},
	}
}

// Record is a single validated, normalized register row.
//
// RiskScore is derived once at normalization time (likelihood x impact)
// and is immutable thereafter. Optional fields are empty strings when the
// source column is absent.
type Record struct {
	RiskID      string `json:"risk_id"`
	Description string `json:"risk_description"`
	Likelihood  int    `json:"likelihood"`
	Impact      int    `json:"impact"`
	RiskScore   int    `json:"risk_score"`
	Category    string `json:"category,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Mitigation  string `json:"mitigation,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Table is a validated risk register. It is read-only after Parse returns.
type Table struct {
	// Columns lists the normalized column names in source order, with
	// risk_score appended.
	Columns []string

	// Records holds one entry per data row, in file order.
	Records []Record
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the named column was present in the source
// file (or derived, in the case of risk_score).
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// HighRiskRecords returns the records whose risk_score meets the
// high-risk threshold, in file order.
func (t *Table) HighRiskRecords() []Record {
	var high []Record
	for _, r := range t.Records {
		if r.RiskScore >= HighRiskThreshold {
			high = append(high, r)
		}
	}
	return high
}
