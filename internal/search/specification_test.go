package search_test

import (
	"testing"
	"time"

	"transaction_system/internal/domain"
	"transaction_system/internal/search"
)

func uintPtr(v uint) *uint           { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestBuildEmptyFilter(t *testing.T) {
	spec := search.Build(domain.DefaultSearchFilter())

	if len(spec.Clauses) != 0 {
		t.Errorf("got %d clauses, want 0", len(spec.Clauses))
	}
	if spec.SortColumn != "id" {
		t.Errorf("got sort column %s, want id", spec.SortColumn)
	}
	if spec.Page != 0 || spec.PageSize != 50 {
		t.Errorf("got page %d size %d, want 0/50", spec.Page, spec.PageSize)
	}
}

func TestBuildAllFields(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	filter := domain.SearchFilter{
		ID:          uintPtr(12),
		Type:        domain.TypeLoan,
		Status:      domain.StatusApproved,
		StartDate:   timePtr(start),
		EndDate:     timePtr(end),
		Description: "rent",
		SubmittedBy: "u1",
		ApprovedBy:  "u2",
		PageSize:    20,
	}

	spec := search.Build(filter)
	want := []search.Clause{
		{Column: "id", Op: search.OpEq, Value: uint(12)},
		{Column: "type", Op: search.OpEq, Value: domain.TypeLoan},
		{Column: "status", Op: search.OpEq, Value: domain.StatusApproved},
		{Column: "transaction_date", Op: search.OpGte, Value: start},
		{Column: "transaction_date", Op: search.OpLte, Value: end},
		{Column: "transaction_description", Op: search.OpContains, Value: "rent"},
		{Column: "submitted_by", Op: search.OpEq, Value: "u1"},
		{Column: "approved_by", Op: search.OpEq, Value: "u2"},
	}
	if len(spec.Clauses) != len(want) {
		t.Fatalf("got %d clauses, want %d", len(spec.Clauses), len(want))
	}
	for i, clause := range spec.Clauses {
		if clause != want[i] {
			t.Errorf("clause %d: got %+v, want %+v", i, clause, want[i])
		}
	}
}

func TestBuildSkipsBlankFields(t *testing.T) {
	filter := domain.DefaultSearchFilter()
	filter.Type = ""
	filter.Status = domain.StatusSubmitted
	filter.Description = ""

	spec := search.Build(filter)
	if len(spec.Clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(spec.Clauses))
	}
	if spec.Clauses[0].Column != "status" {
		t.Errorf("got column %s, want status", spec.Clauses[0].Column)
	}
}

func TestBuildSortColumn(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"", "id"},
		{"id", "id"},
		{"ID", "id"},
		{"Id", "id"},
		{"transactionDate", "transaction_date"},
		{"amount", "amount"},
		{"submittedBy", "submitted_by"},
		{"approvedAt", "approved_at"},
		// Unrecognized columns silently fall back, never error
		{"bogus", "id"},
		{"id; drop table transactions", "id"},
		{"AMOUNT", "id"},
	}
	for _, tt := range tests {
		t.Run("sortBy "+tt.sortBy, func(t *testing.T) {
			filter := domain.DefaultSearchFilter()
			filter.SortBy = tt.sortBy
			spec := search.Build(filter)
			if spec.SortColumn != tt.want {
				t.Errorf("got %s, want %s", spec.SortColumn, tt.want)
			}
		})
	}
}

func TestBuildPaginationVerbatim(t *testing.T) {
	filter := domain.DefaultSearchFilter()
	filter.Page = 4
	filter.PageSize = 10

	spec := search.Build(filter)
	if spec.Page != 4 || spec.PageSize != 10 {
		t.Errorf("got page %d size %d, want 4/10", spec.Page, spec.PageSize)
	}
}
