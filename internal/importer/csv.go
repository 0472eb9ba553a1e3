package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// FormatError reports an upload whose overall shape cannot be
// understood: unreadable file, no header row. It is fatal to the whole
// import, unlike per-row failures.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "bad import file: " + e.Reason
}

// RowError records one import row that was skipped, and why. Row errors
// travel as data in the import result; they never abort the batch.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Record is one data row keyed by header column, tagged with its
// 1-based line number for error reporting.
type Record struct {
	Line   int
	Fields map[string]string
}

// Rows is the raw tabular content of an export file, in file order.
type Rows struct {
	Header  []string
	Records []Record
	Bad     []RowError // lines the csv decoder could not read
}

// ReadRows decodes a CSV export. A file without a usable header fails
// with *FormatError; an undecodable line inside an otherwise readable
// file is collected into Bad and reading continues.
func ReadRows(r io.Reader) (*Rows, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{Reason: "file is empty"}
	}
	if err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	empty := true
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if header[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil, &FormatError{Reason: "no recognizable header row"}
	}

	rows := &Rows{Header: header}
	line := 1
	for {
		line++
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rows.Bad = append(rows.Bad, RowError{Line: line, Reason: fmt.Sprintf("unreadable line: %v", err)})
			continue
		}

		fields := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" || i >= len(rec) {
				continue
			}
			fields[h] = strings.TrimSpace(rec[i])
		}
		rows.Records = append(rows.Records, Record{Line: line, Fields: fields})
	}
	return rows, nil
}
