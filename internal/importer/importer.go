package importer

import (
	"io"

	"go.uber.org/zap"

	"trade-journal-go/internal/journal"
)

// Importer wires the reconciliation pipeline to the persistent store.
type Importer struct {
	log   *zap.Logger
	store journal.Store
}

// New creates an importer on top of the given store.
func New(log *zap.Logger, store journal.Store) *Importer {
	return &Importer{log: log, store: store}
}

// ImportCSV runs the full pipeline over one uploaded export: read rows,
// reconcile against the stored collection, persist the merged result as
// a unit. File-level and storage failures return as errors; row-level
// failures come back inside the Result.
func (i *Importer) ImportCSV(r io.Reader, opts Options) (*Result, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	existing, err := i.store.Load()
	if err != nil {
		return nil, err
	}
	res, err := Reconcile(existing, rows, opts)
	if err != nil {
		return nil, err
	}
	if err := i.store.Replace(res.Merged); err != nil {
		return nil, err
	}

	i.log.Info("import complete",
		zap.Int("imported", res.Imported),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("skipped_rows", len(res.RowErrors)),
	)
	for _, re := range res.RowErrors {
		i.log.Warn("import row skipped", zap.Int("line", re.Line), zap.String("reason", re.Reason))
	}
	return res, nil
}
