package service_test

import (
	"testing"

	"transaction_system/internal/domain"
	"transaction_system/internal/service"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		context string
		want    string
	}{
		{domain.ContextCreate, domain.StatusSubmitted},
		{domain.ContextUpdate, domain.StatusSubmitted},
		{domain.ContextApprove, domain.StatusApproved},
		{domain.ContextReject, domain.StatusRejected},
		{domain.ContextCancel, domain.StatusCancelled},
	}
	for _, tt := range tests {
		got, ok := service.NextStatus(tt.context)
		if !ok {
			t.Errorf("%s: no transition found", tt.context)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.context, got, tt.want)
		}
	}

	if _, ok := service.NextStatus("ARCHIVE"); ok {
		t.Error("ARCHIVE: expected no transition")
	}
}

func TestTransitionAllowed(t *testing.T) {
	// No context may leave APPROVED or CANCELLED; REJECTED only admits UPDATE
	for _, terminal := range []string{domain.StatusApproved, domain.StatusCancelled} {
		for _, ctx := range []string{domain.ContextUpdate, domain.ContextApprove, domain.ContextReject, domain.ContextCancel} {
			if service.TransitionAllowed(ctx, terminal) {
				t.Errorf("%s from %s: expected not allowed", ctx, terminal)
			}
		}
	}
	if !service.TransitionAllowed(domain.ContextUpdate, domain.StatusRejected) {
		t.Error("UPDATE from REJECTED: expected allowed")
	}
	if service.TransitionAllowed(domain.ContextApprove, domain.StatusRejected) {
		t.Error("APPROVE from REJECTED: expected not allowed")
	}
	// COMPLETED is reserved and admits nothing
	if service.TransitionAllowed(domain.ContextCancel, domain.StatusCompleted) {
		t.Error("CANCEL from COMPLETED: expected not allowed")
	}
}
