package domain

import "time" // Date range bounds

// SearchFilter is the optional-field criteria bag for transaction search.
// Absent or blank fields contribute no filter clause.
type SearchFilter struct {
	ID          *uint      `json:"id"`                     // Exact id match
	Type        string     `json:"type"`                   // Exact type match
	Status      string     `json:"status"`                 // Exact status match
	StartDate   *time.Time `json:"startDate"`              // Transaction date >= StartDate, inclusive
	EndDate     *time.Time `json:"endDate"`                // Transaction date <= EndDate, inclusive
	Description string     `json:"transactionDescription"` // Case-sensitive substring match
	SubmittedBy string     `json:"submittedBy"`            // Exact submitter match
	ApprovedBy  string     `json:"approvedBy"`             // Exact approver match

	Page     int    `json:"page"`     // Zero-based page index
	PageSize int    `json:"pageSize"` // Records per page
	SortBy   string `json:"sortBy"`   // Sort field name, always descending
}

// DefaultSearchFilter returns a filter with the default pagination and sort,
// so fields absent from the request body keep their defaults after binding.
func DefaultSearchFilter() SearchFilter {
	return SearchFilter{
		Page:     0,
		PageSize: 50,
		SortBy:   "id",
	}
}
