package importer

import "strings"

// Schema identifies which parsing path an upload takes.
type Schema int

const (
	// SchemaGeneric is any tabular export mapped to trade fields by
	// column name.
	SchemaGeneric Schema = iota
	// SchemaTastytrade is the tastytrade activity export, which encodes
	// trade structure inside a free-text description column.
	SchemaTastytrade
)

// ColumnMapping maps canonical trade fields to source column names.
type ColumnMapping map[string]string

// Canonical field names the generic path can populate.
const (
	FieldDate               = "date"
	FieldSymbol             = "symbol"
	FieldStrategy           = "strategy"
	FieldEntryPrice         = "entry_price"
	FieldExitPrice          = "exit_price"
	FieldQuantity           = "quantity"
	FieldContractMultiplier = "contract_multiplier"
	FieldNotes              = "notes"
)

// headerSynonyms maps lowercased header spellings seen in the wild to
// canonical fields.
var headerSynonyms = map[string]string{
	"date":                FieldDate,
	"trade date":          FieldDate,
	"trade_date":          FieldDate,
	"symbol":              FieldSymbol,
	"ticker":              FieldSymbol,
	"underlying":          FieldSymbol,
	"strategy":            FieldStrategy,
	"entry_price":         FieldEntryPrice,
	"entry price":         FieldEntryPrice,
	"entry":               FieldEntryPrice,
	"open price":          FieldEntryPrice,
	"price":               FieldEntryPrice,
	"exit_price":          FieldExitPrice,
	"exit price":          FieldExitPrice,
	"exit":                FieldExitPrice,
	"close price":         FieldExitPrice,
	"quantity":            FieldQuantity,
	"qty":                 FieldQuantity,
	"shares":              FieldQuantity,
	"contracts":           FieldQuantity,
	"contract_multiplier": FieldContractMultiplier,
	"contract multiplier": FieldContractMultiplier,
	"multiplier":          FieldContractMultiplier,
	"notes":               FieldNotes,
	"note":                FieldNotes,
	"comment":             FieldNotes,
	"comments":            FieldNotes,
	"description":         FieldNotes,
}

// DetectSchema routes an upload by its header signature. The
// tastytrade export is recognized by its Symbol + Description columns
// alongside MarketOrFill, or a bare Price column only when a
// status/timestamp column corroborates it. "description" and "price"
// are also generic synonyms (notes, entry price), so a header carrying
// explicit trade columns is conclusively generic no matter what else it
// contains.
func DetectSchema(header []string) Schema {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.ToLower(strings.TrimSpace(h))] = true
	}
	if have["strategy"] || have["entry_price"] || have["entry price"] || have["entry"] {
		return SchemaGeneric
	}
	if have["symbol"] && have["description"] {
		if have["marketorfill"] {
			return SchemaTastytrade
		}
		if have["price"] && (have["time"] || have["timestampattype"] || have["status"]) {
			return SchemaTastytrade
		}
	}
	return SchemaGeneric
}

// GuessMapping builds a column mapping from header synonyms. Explicit
// user mappings take precedence over the guess; this only fills fields
// the user did not map.
func GuessMapping(header []string) ColumnMapping {
	mapping := make(ColumnMapping)
	for _, h := range header {
		canonical, ok := headerSynonyms[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, taken := mapping[canonical]; taken {
			continue
		}
		mapping[canonical] = h
	}
	return mapping
}
