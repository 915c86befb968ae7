// Package register provides loading, validation, and normalization of
// tabular risk-register data.
//
// # Overview
//
// A risk register is a delimited text file (CSV with a header row) listing
// organizational risks with likelihood and impact ratings on a 1-5 scale.
// The register package turns that file into a validated, normalized Table:
//
//   - Required columns: risk_id, risk_description, likelihood, impact
//   - Optional columns: category, owner, mitigation, status
//   - likelihood and impact must be integers in {1..5}
//   - risk_id and risk_description must be non-empty
//
// Validation is all-or-nothing: a register with any missing required
// column, any out-of-domain rating, or any empty identifier cell is
// rejected in full. There is no partial acceptance or row filtering.
//
// On success every string cell has been trimmed, ratings are coerced to
// integers, and a derived risk_score column (likelihood x impact, 1-25)
// has been appended to every record. The returned Table is read-only
// after Parse.
//
// # Usage
//
//	parser := register.NewParser(nil) // nil = default schema
//	table, err := parser.Parse("data/risks.csv")
//	if err != nil {
//	    var verr *register.ValidationError
//	    if errors.As(err, &verr) {
//	        // structurally or semantically invalid input
//	    }
//	    return err
//	}
//
//	summary := register.Summarize(table)
//	fmt.Printf("loaded %d risks, %d high risk\n",
//	    summary.TotalRisks, summary.HighRiskCount)
package register
