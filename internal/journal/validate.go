package journal

import (
	"fmt"
	"strings"

	"trade-journal-go/internal/models"
)

// Validate checks a candidate trade against the journal's business
// rules. Checks run in a fixed order and the first failure wins; the
// returned error is always a *ValidationError.
func Validate(t *models.Trade) error {
	if strings.TrimSpace(t.Symbol) == "" {
		return &ValidationError{Field: "symbol", Code: CodeMissingField, Reason: "symbol is required"}
	}
	if strings.TrimSpace(string(t.Strategy)) == "" {
		return &ValidationError{Field: "strategy", Code: CodeMissingField, Reason: "strategy is required"}
	}
	if !t.Strategy.Valid() {
		return &ValidationError{Field: "strategy", Code: CodeInvalidEnum, Reason: fmt.Sprintf("unknown strategy %q", string(t.Strategy))}
	}
	if !t.EntryPrice.IsPositive() {
		return &ValidationError{Field: "entry_price", Code: CodeOutOfRange, Reason: "entry price must be positive"}
	}
	if t.Quantity == 0 {
		return &ValidationError{Field: "quantity", Code: CodeOutOfRange, Reason: "quantity cannot be zero"}
	}

	// The direction rule matches the label text, not the classifier
	// table. "Cash Secured Put" and "Covered Call" contain neither word
	// and are exempt here even though the classifier treats both as
	// short exposure; users record those with either sign. Do not unify
	// the two notions.
	label := string(t.Strategy)
	if strings.Contains(label, "Short") && t.Quantity > 0 {
		return &ValidationError{Field: "quantity", Code: CodeDirectionMismatch, Reason: label + " requires negative quantity"}
	}
	if strings.Contains(label, "Long") && t.Quantity < 0 {
		return &ValidationError{Field: "quantity", Code: CodeDirectionMismatch, Reason: label + " requires positive quantity"}
	}
	return nil
}
