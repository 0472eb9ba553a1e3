package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"trade-journal-go/internal/models"
)

// The tastytrade activity export has no per-field trade columns: one
// free-text description like "-2 Aug 15 30d 23 Put STO" carries the
// signed quantity, the option type and the action tag, while the
// execution price arrives as "1.06 cr" / "0.15 db" in the MarketOrFill
// column. This file decodes that grammar into a structured Fill and
// assembles a canonical trade candidate from it.

// ParseError reports one export row that could not be decoded. The
// caller skips the row with a warning; a bad row never aborts a batch.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "unparseable row: " + e.Reason
}

// Action tags in the description grammar.
const (
	actionSellToOpen  = "STO"
	actionBuyToOpen   = "BTO"
	actionSellToClose = "STC"
	actionBuyToClose  = "BTC"
)

var (
	quantityRe = regexp.MustCompile(`[+-]?\d+`)
	actionRe   = regexp.MustCompile(`\b(STO|BTO|STC|BTC)\b`)
	monthDayRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\b`)
)

// Fill is the structured decoding of one export row.
type Fill struct {
	Symbol      string
	Price       decimal.Decimal // magnitude of the execution price
	Credit      bool            // "cr" suffix present
	Debit       bool            // "db" suffix present
	Quantity    int64           // signed; defaults to 1 when absent
	Action      string          // STO/BTO/STC/BTC, or "" when untagged
	OptionType  models.OptionType
	Date        string // YYYY-MM-DD
	Description string
}

// Closing reports whether the fill closes a position.
func (f *Fill) Closing() bool {
	return f.Action == actionSellToClose || f.Action == actionBuyToClose
}

// strategy lookup per option type and action tag: selling actions map
// to the selling strategy labels, buying actions to the long labels.
var optionStrategies = map[models.OptionType]map[string]models.Strategy{
	models.OptionPut: {
		actionSellToOpen:  models.CashSecuredPut,
		actionSellToClose: models.CashSecuredPut,
		actionBuyToOpen:   models.LongPut,
		actionBuyToClose:  models.LongPut,
	},
	models.OptionCall: {
		actionSellToOpen:  models.CoveredCall,
		actionSellToClose: models.CoveredCall,
		actionBuyToOpen:   models.LongCall,
		actionBuyToClose:  models.LongCall,
	},
}

// ParseFill decodes the raw columns of one export row. now supplies the
// date for rows whose timestamp has no month/day part.
func ParseFill(fields map[string]string, now time.Time) (*Fill, error) {
	symbol := models.NormalizeSymbol(field(fields, "Symbol"))
	if symbol == "" {
		return nil, &ParseError{Reason: "missing symbol"}
	}

	priceRaw := field(fields, "MarketOrFill")
	if priceRaw == "" {
		priceRaw = field(fields, "Price")
	}
	price, err := parseExecutionPrice(priceRaw)
	if err != nil {
		return nil, err
	}

	description := field(fields, "Description")

	fill := &Fill{
		Symbol: symbol,
		Price:  price,
		// The cr/db suffix is recorded but deliberately does not flip
		// the sign of the stored price: the journal always stores the
		// magnitude and derives direction from the strategy.
		Credit:      strings.Contains(strings.ToLower(priceRaw), "cr"),
		Debit:       strings.Contains(strings.ToLower(priceRaw), "db"),
		Quantity:    1,
		Description: description,
	}

	if m := quantityRe.FindString(description); m != "" {
		qty, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("bad quantity %q", m)}
		}
		fill.Quantity = qty
	}

	if m := actionRe.FindString(description); m != "" {
		fill.Action = m
	}
	if strings.Contains(description, "Put") {
		fill.OptionType = models.OptionPut
	} else if strings.Contains(description, "Call") {
		fill.OptionType = models.OptionCall
	}

	stamp := field(fields, "Time")
	if stamp == "" {
		stamp = field(fields, "TimeStampAtType")
	}
	fill.Date = parseStampDate(stamp, now)

	return fill, nil
}

// ParseRow decodes one export row into a trade candidate. The pnl field
// is left at zero for the pipeline to recompute.
func ParseRow(fields map[string]string, now time.Time) (*models.Trade, error) {
	fill, err := ParseFill(fields, now)
	if err != nil {
		return nil, err
	}

	trade := &models.Trade{
		Date:       fill.Date,
		Symbol:     fill.Symbol,
		EntryPrice: fill.Price,
		ExitPrice:  decimal.Zero,
		Quantity:   fill.Quantity,
		Notes:      fill.Description,
	}

	if fill.Closing() {
		// Single-row exports show only one leg per fill, so the closing
		// price of the pair is not visible here. Copying the execution
		// price into exit_price is a known limitation, not a P&L truth;
		// proper fill pairing would replace this.
		trade.ExitPrice = fill.Price
	}

	switch fill.OptionType {
	case models.OptionNone:
		if fill.Quantity > 0 {
			trade.Strategy = models.LongStock
		} else {
			trade.Strategy = models.ShortStock
		}
	default:
		if s, ok := optionStrategies[fill.OptionType][fill.Action]; ok {
			trade.Strategy = s
		} else if fill.Quantity > 0 {
			// Untagged option rows fall back on the quantity sign:
			// positive reads as bought, negative as sold.
			if fill.OptionType == models.OptionPut {
				trade.Strategy = models.LongPut
			} else {
				trade.Strategy = models.LongCall
			}
		} else {
			if fill.OptionType == models.OptionPut {
				trade.Strategy = models.CashSecuredPut
			} else {
				trade.Strategy = models.CoveredCall
			}
		}
	}

	trade.Status = models.DeriveStatus(trade.ExitPrice)
	return trade, nil
}

// parseExecutionPrice extracts the numeric magnitude from a fill price
// cell such as "1.06 cr": first whitespace-delimited token, stripped of
// everything but digits and the decimal point.
func parseExecutionPrice(raw string) (decimal.Decimal, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return decimal.Zero, &ParseError{Reason: "missing execution price"}
	}
	var b strings.Builder
	for _, c := range tokens[0] {
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteRune(c)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return decimal.Zero, &ParseError{Reason: fmt.Sprintf("no digits in execution price %q", raw)}
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &ParseError{Reason: fmt.Sprintf("bad execution price %q", raw)}
	}
	return price, nil
}

// parseStampDate turns export timestamps like "7/15 4:20p" into a
// canonical date, assuming the current year. Time-only stamps such as
// "8:46:07p" mean the fill happened today.
func parseStampDate(stamp string, now time.Time) string {
	stamp = strings.TrimSpace(stamp)
	if m := monthDayRe.FindStringSubmatch(stamp); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return fmt.Sprintf("%04d-%02d-%02d", now.Year(), month, day)
		}
	}
	return now.Format("2006-01-02")
}

// field looks a column up by name, tolerating header-case differences
// between export revisions.
func field(fields map[string]string, name string) string {
	if v, ok := fields[name]; ok {
		return v
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
