package models

import "strings"

// Strategy is the closed set of labels a trade can be filed under. The
// label text is the persisted representation, so the constants must not
// change once data exists.
type Strategy string

const (
	LongStock      Strategy = "Long Stock"
	ShortStock     Strategy = "Short Stock"
	LongCall       Strategy = "Long Call"
	ShortCall      Strategy = "Short Call"
	LongPut        Strategy = "Long Put"
	ShortPut       Strategy = "Short Put"
	CoveredCall    Strategy = "Covered Call"
	CashSecuredPut Strategy = "Cash Secured Put"
	Other          Strategy = "Other"
)

// InstrumentKind distinguishes stock trades from option trades.
type InstrumentKind string

const (
	InstrumentStock  InstrumentKind = "Stock"
	InstrumentOption InstrumentKind = "Option"
)

// OptionType is the option leg type, empty for non-options.
type OptionType string

const (
	OptionCall OptionType = "Call"
	OptionPut  OptionType = "Put"
	OptionNone OptionType = ""
)

// classification carries the trading semantics of a strategy. It is
// resolved once by table lookup; nothing re-parses the label text at
// call sites.
type classification struct {
	instrument InstrumentKind
	optionType OptionType
	direction  int
	multiplier int64
}

var classifications = map[Strategy]classification{
	LongStock:      {InstrumentStock, OptionNone, +1, 1},
	ShortStock:     {InstrumentStock, OptionNone, -1, 1},
	LongCall:       {InstrumentOption, OptionCall, +1, 100},
	ShortCall:      {InstrumentOption, OptionCall, -1, 100},
	LongPut:        {InstrumentOption, OptionPut, +1, 100},
	ShortPut:       {InstrumentOption, OptionPut, -1, 100},
	CoveredCall:    {InstrumentOption, OptionCall, -1, 100},
	CashSecuredPut: {InstrumentOption, OptionPut, -1, 100},
	Other:          {InstrumentStock, OptionNone, +1, 1},
}

// Strategies returns every valid label in display order.
func Strategies() []Strategy {
	return []Strategy{
		LongStock, ShortStock,
		LongCall, ShortCall,
		LongPut, ShortPut,
		CoveredCall, CashSecuredPut,
		Other,
	}
}

// ParseStrategy maps a raw label to a Strategy. The second return value
// reports membership in the enumeration.
func ParseStrategy(s string) (Strategy, bool) {
	st := Strategy(strings.TrimSpace(s))
	_, ok := classifications[st]
	return st, ok
}

// Valid reports whether s is a member of the strategy enumeration.
func (s Strategy) Valid() bool {
	_, ok := classifications[s]
	return ok
}

// Instrument returns the instrument kind the strategy trades. Unknown
// labels classify as stock, matching the permissive "Other" bucket.
func (s Strategy) Instrument() InstrumentKind {
	return s.classify().instrument
}

// Option returns the option leg type, OptionNone for non-options.
func (s Strategy) Option() OptionType {
	return s.classify().optionType
}

// Direction returns +1 for long exposure and -1 for short exposure.
// Covered Call and Cash Secured Put are short: the recorded row is the
// short option leg, entry price is the credit received.
func (s Strategy) Direction() int {
	return s.classify().direction
}

// Multiplier returns the default contract multiplier: 100 for options
// (one contract controls 100 underlying shares), 1 otherwise.
func (s Strategy) Multiplier() int64 {
	return s.classify().multiplier
}

func (s Strategy) classify() classification {
	if c, ok := classifications[s]; ok {
		return c
	}
	return classifications[Other]
}
