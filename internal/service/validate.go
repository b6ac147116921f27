package service

import (
	"context"      // Request-scoped cancellation
	"strings"      // Blank checks
	"unicode/utf8" // Description length in characters

	"transaction_system/internal/domain" // Model, contexts, outcomes
	"transaction_system/internal/store"  // Existence lookups

	"github.com/sirupsen/logrus" // Logging library
)

// recognizedContexts is the set of operation tags the engine accepts
var recognizedContexts = map[string]bool{
	domain.ContextCreate:  true,
	domain.ContextUpdate:  true,
	domain.ContextApprove: true,
	domain.ContextReject:  true,
	domain.ContextCancel:  true,
}

// Validate checks a transaction payload against the rules for the given
// operation context. Rules run in order and short-circuit on the first
// failure. Existence and status checks read the store fresh, so Validate must
// run inside the same unit of work as the write that follows it.
func Validate(ctx context.Context, st store.TransactionStore, input domain.TransactionInput, opContext, actor string) domain.Outcome {
	// Rule 1: the context must be a recognized, non-empty operation tag
	if opContext == "" || !recognizedContexts[opContext] {
		logrus.WithField("context", opContext).Error("Unrecognized operation context")
		return domain.InvalidParameter("")
	}

	if opContext == domain.ContextCreate {
		// Rule 2: creation checks field completeness and forbids a pre-assigned id
		if outcome := validateProperties(input, actor); !outcome.OK() {
			logrus.WithField("reason", outcome.Message()).Error("Transaction properties validation failed")
			return outcome
		}
		if input.ID != nil {
			logrus.Error("Transaction ID must not be set for creation")
			return domain.InvalidParameter("")
		}
		return domain.Success
	}

	// Rule 3: every other context requires an id referencing an existing record
	if input.ID == nil {
		logrus.WithField("context", opContext).Error("Transaction ID is required")
		return domain.InvalidParameter("")
	}
	current, err := st.FindByID(ctx, *input.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": *input.ID, "error": err.Error()}).Error("Failed to look up transaction")
		return domain.Outcome{Code: domain.CodeSystemError}
	}
	if current == nil {
		logrus.WithField("id", *input.ID).Error("Transaction does not exist")
		return domain.Outcome{Code: domain.CodeNotFound}
	}

	if opContext == domain.ContextUpdate {
		// Rule 4: update checks field completeness and the persisted status
		if outcome := validateProperties(input, actor); !outcome.OK() {
			logrus.WithField("reason", outcome.Message()).Error("Transaction properties validation failed")
			return outcome
		}
		if !TransitionAllowed(opContext, current.Status) {
			logrus.WithFields(logrus.Fields{"id": *input.ID, "status": current.Status}).Error("Only SUBMITTED or REJECTED transactions can be updated")
			return domain.Outcome{Code: domain.CodeBusinessError}
		}
		return domain.Success
	}

	// Rule 5: approve/reject/cancel check only the persisted status
	if !TransitionAllowed(opContext, current.Status) {
		logrus.WithFields(logrus.Fields{"id": *input.ID, "status": current.Status, "context": opContext}).Error("Only SUBMITTED transactions can change status")
		return domain.Outcome{Code: domain.CodeBusinessError}
	}
	return domain.Success
}

// validateProperties applies the field-completeness rules, naming the first
// failing field in the outcome
func validateProperties(input domain.TransactionInput, actor string) domain.Outcome {
	if actor == "" {
		return domain.InvalidParameter("")
	}
	if input.Amount == nil {
		return domain.InvalidParameter("amount")
	}
	if input.TransactionDate == nil {
		return domain.InvalidParameter("transactionDate")
	}
	if strings.TrimSpace(input.Description) == "" || utf8.RuneCountInString(input.Description) > domain.MaxDescriptionLength {
		return domain.InvalidParameter("transactionDescription")
	}
	if input.DebitAccount == "" {
		return domain.InvalidParameter("debitAccount")
	}
	if input.CreditAccount == "" {
		return domain.InvalidParameter("creditAccount")
	}
	if input.Currency == "" {
		return domain.InvalidParameter("currency")
	}
	return domain.Success
}
