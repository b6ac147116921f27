package search

import (
	"strings" // Sort column comparison

	"transaction_system/internal/domain" // Search filter and transaction fields
)

// Op identifies the comparison applied by a filter clause
type Op string

// Supported clause operators
const (
	OpEq       Op = "eq"       // Equality
	OpGte      Op = "gte"      // Greater than or equal
	OpLte      Op = "lte"      // Less than or equal
	OpContains Op = "contains" // Case-sensitive substring
)

// Clause is one filter condition over a known column. Clauses are always
// combined with AND.
type Clause struct {
	Column string // Database column, always from the static whitelist
	Op     Op     // Comparison operator
	Value  any    // Comparison value
}

// Specification is the full query plan for a transaction search: filter
// clauses, a sort column (always descending) and pagination.
type Specification struct {
	Clauses    []Clause // Conjunctive filter clauses
	SortColumn string   // Database column to sort by, descending
	Page       int      // Zero-based page index
	PageSize   int      // Records per page
}

// sortableColumns maps the external sort field names to their database
// columns. Anything outside this map falls back to sorting by id.
var sortableColumns = map[string]string{
	"id":                     "id",
	"type":                   "type",
	"amount":                 "amount",
	"transactionDate":        "transaction_date",
	"transactionDescription": "transaction_description",
	"debitAccount":           "debit_account",
	"creditAccount":          "credit_account",
	"currency":               "currency",
	"status":                 "status",
	"lastUpdated":            "last_updated",
	"submittedBy":            "submitted_by",
	"submittedAt":            "submitted_at",
	"approvedBy":             "approved_by",
	"approvedAt":             "approved_at",
}

// Build translates a search filter into a query specification. Absent or
// blank filter fields contribute no clause; filtering is purely additive.
func Build(filter domain.SearchFilter) Specification {
	var clauses []Clause

	if filter.ID != nil {
		clauses = append(clauses, Clause{Column: "id", Op: OpEq, Value: *filter.ID})
	}
	if filter.Type != "" {
		clauses = append(clauses, Clause{Column: "type", Op: OpEq, Value: filter.Type})
	}
	if filter.Status != "" {
		clauses = append(clauses, Clause{Column: "status", Op: OpEq, Value: filter.Status})
	}
	if filter.StartDate != nil {
		clauses = append(clauses, Clause{Column: "transaction_date", Op: OpGte, Value: *filter.StartDate})
	}
	if filter.EndDate != nil {
		clauses = append(clauses, Clause{Column: "transaction_date", Op: OpLte, Value: *filter.EndDate})
	}
	if filter.Description != "" {
		clauses = append(clauses, Clause{Column: "transaction_description", Op: OpContains, Value: filter.Description})
	}
	if filter.SubmittedBy != "" {
		clauses = append(clauses, Clause{Column: "submitted_by", Op: OpEq, Value: filter.SubmittedBy})
	}
	if filter.ApprovedBy != "" {
		clauses = append(clauses, Clause{Column: "approved_by", Op: OpEq, Value: filter.ApprovedBy})
	}

	return Specification{
		Clauses:    clauses,
		SortColumn: sortColumn(filter.SortBy),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}
}

// sortColumn resolves the requested sort field against the whitelist. A blank
// name, "id" in any case, or an unrecognized name all resolve to "id"; an
// unrecognized name is not an error.
func sortColumn(sortBy string) string {
	if sortBy == "" || strings.EqualFold(sortBy, "id") {
		return "id"
	}
	if column, ok := sortableColumns[sortBy]; ok {
		return column
	}
	return "id"
}
