package service

import (
	"transaction_system/internal/domain" // Status and context constants
)

// transition describes one row of the status transition table: the statuses a
// context may be applied from, and the status it results in.
type transition struct {
	from []string // Permitted current statuses
	to   string   // Resulting status
}

// transitions is the fixed transition table keyed by operation context.
// CREATE is absent because it starts from no persisted record; its result is
// always SUBMITTED.
var transitions = map[string]transition{
	domain.ContextUpdate:  {from: []string{domain.StatusSubmitted, domain.StatusRejected}, to: domain.StatusSubmitted},
	domain.ContextApprove: {from: []string{domain.StatusSubmitted}, to: domain.StatusApproved},
	domain.ContextReject:  {from: []string{domain.StatusSubmitted}, to: domain.StatusRejected},
	domain.ContextCancel:  {from: []string{domain.StatusSubmitted}, to: domain.StatusCancelled},
}

// NextStatus returns the status a context transitions to. It is a pure lookup
// applied only after validation has passed; ok is false for contexts without
// a table row.
func NextStatus(context string) (string, bool) {
	if context == domain.ContextCreate {
		return domain.StatusSubmitted, true
	}
	t, ok := transitions[context]
	if !ok {
		return "", false
	}
	return t.to, true
}

// TransitionAllowed reports whether a context may be applied to a record in
// the given current status
func TransitionAllowed(context, current string) bool {
	t, ok := transitions[context]
	if !ok {
		return false
	}
	for _, status := range t.from {
		if status == current {
			return true
		}
	}
	return false
}
