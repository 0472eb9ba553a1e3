package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/models"
)

// Options controls one reconciliation run.
type Options struct {
	// SkipDuplicates drops incoming trades whose (date, symbol,
	// entry_price) identity already exists.
	SkipDuplicates bool
	// Mapping assigns source columns to canonical fields on the generic
	// path. Header synonyms fill whatever it leaves unmapped.
	Mapping ColumnMapping
	// Now anchors relative broker timestamps; zero means time.Now().
	Now time.Time
}

// Result reports a reconciliation run. Partial success is always
// observable: the caller gets both the import count and the reason for
// every skipped row.
type Result struct {
	Merged     []models.Trade `json:"-"`
	Imported   int            `json:"imported"`
	Duplicates int            `json:"duplicates"`
	RowErrors  []RowError     `json:"row_errors,omitempty"`
}

// Reconcile normalizes incoming rows into trade candidates, validates
// them, recomputes P&L, drops duplicates against the existing
// collection and appends the survivors in file order after the existing
// trades. A row failure is collected and skipped; only a file without a
// usable schema fails the whole batch.
func Reconcile(existing []models.Trade, rows *Rows, opts Options) (*Result, error) {
	if rows == nil || len(rows.Header) == 0 {
		return nil, &FormatError{Reason: "no recognizable header row"}
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	schema := DetectSchema(rows.Header)
	var mapping ColumnMapping
	if schema == SchemaGeneric {
		mapping = make(ColumnMapping, len(opts.Mapping))
		for k, v := range opts.Mapping {
			mapping[k] = v
		}
		for k, v := range GuessMapping(rows.Header) {
			if _, ok := mapping[k]; !ok {
				mapping[k] = v
			}
		}
		if _, ok := mapping[FieldSymbol]; !ok {
			return nil, &FormatError{Reason: "no symbol column in header"}
		}
	}

	res := &Result{Merged: append([]models.Trade(nil), existing...)}
	res.RowErrors = append(res.RowErrors, rows.Bad...)

	seen := make(map[string]struct{}, len(existing))
	for i := range existing {
		seen[existing[i].DedupKey()] = struct{}{}
	}

	for _, rec := range rows.Records {
		var t *models.Trade
		var err error
		if schema == SchemaTastytrade {
			t, err = ParseRow(rec.Fields, now)
		} else {
			t, err = mapGenericRow(rec.Fields, mapping)
		}
		if err == nil {
			err = journal.Normalize(t)
		}
		if err == nil {
			err = journal.Validate(t)
		}
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: rec.Line, Reason: err.Error()})
			continue
		}

		journal.Recompute(t)

		key := t.DedupKey()
		if opts.SkipDuplicates {
			if _, dup := seen[key]; dup {
				res.Duplicates++
				continue
			}
		}
		seen[key] = struct{}{}
		res.Merged = append(res.Merged, *t)
		res.Imported++
	}
	return res, nil
}

// mapGenericRow builds a trade candidate from a generic tabular row via
// the column mapping. Numeric coercion failures come back as
// field-attributed validation errors so they land in the row report
// alongside business-rule failures. Symbol and strategy are checked
// before any number is coerced, keeping the field order of the error a
// row reports stable: a row missing its symbol reports the symbol, not
// whatever happens to be in its price cell.
func mapGenericRow(fields map[string]string, mapping ColumnMapping) (*models.Trade, error) {
	get := func(canonical string) string {
		src, ok := mapping[canonical]
		if !ok {
			return ""
		}
		return strings.TrimSpace(fields[src])
	}

	t := &models.Trade{
		Date:     get(FieldDate),
		Symbol:   get(FieldSymbol),
		Strategy: models.Strategy(strings.TrimSpace(get(FieldStrategy))),
		Notes:    get(FieldNotes),
	}

	if t.Symbol == "" {
		return nil, &journal.ValidationError{Field: "symbol", Code: journal.CodeMissingField, Reason: "symbol is required"}
	}
	if t.Strategy == "" {
		return nil, &journal.ValidationError{Field: "strategy", Code: journal.CodeMissingField, Reason: "strategy is required"}
	}
	if !t.Strategy.Valid() {
		return nil, &journal.ValidationError{Field: "strategy", Code: journal.CodeInvalidEnum, Reason: fmt.Sprintf("unknown strategy %q", string(t.Strategy))}
	}

	entry, err := parseDecimalField(get(FieldEntryPrice), "entry_price")
	if err != nil {
		return nil, err
	}
	t.EntryPrice = entry

	if raw := get(FieldExitPrice); raw != "" {
		exit, err := parseDecimalField(raw, "exit_price")
		if err != nil {
			return nil, err
		}
		t.ExitPrice = exit
	} else {
		t.ExitPrice = decimal.Zero
	}

	qtyRaw := get(FieldQuantity)
	if qtyRaw == "" {
		return nil, &journal.ValidationError{Field: "quantity", Code: journal.CodeMissingField, Reason: "quantity is required"}
	}
	qty, err := strconv.ParseInt(cleanNumber(qtyRaw), 10, 64)
	if err != nil {
		return nil, &journal.ValidationError{Field: "quantity", Code: journal.CodeInvalidNumber, Reason: "quantity must be an integer"}
	}
	t.Quantity = qty

	if raw := get(FieldContractMultiplier); raw != "" {
		mult, err := strconv.ParseInt(cleanNumber(raw), 10, 64)
		if err != nil {
			return nil, &journal.ValidationError{Field: "contract_multiplier", Code: journal.CodeInvalidNumber, Reason: "contract multiplier must be an integer"}
		}
		t.ContractMultiplier = mult
	}

	return t, nil
}

func parseDecimalField(raw, fieldName string) (decimal.Decimal, error) {
	if raw == "" {
		if fieldName == "entry_price" {
			return decimal.Zero, &journal.ValidationError{Field: fieldName, Code: journal.CodeMissingField, Reason: fieldName + " is required"}
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleanNumber(raw))
	if err != nil {
		return decimal.Zero, &journal.ValidationError{Field: fieldName, Code: journal.CodeInvalidNumber, Reason: fieldName + " must be a number"}
	}
	return d, nil
}

// cleanNumber strips currency formatting ($, thousands separators)
// before numeric parsing.
func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}
