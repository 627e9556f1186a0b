package app

import (
	"context"
	"fmt"
	"log"

	"ghanarepro/internal/config"
	"ghanarepro/internal/metrics"
	"ghanarepro/internal/storage"
)

// mirrorFn is a test seam for storage.Mirror.
var mirrorFn = storage.Mirror

// Mirror loads rows into the database configured in job.Storage. It is a
// no-op when storage is disabled.
func Mirror(ctx context.Context, job config.Job, columns, kinds []string, rows [][]any) error {
	if !job.Storage.Enabled() {
		return nil
	}
	db := job.Storage.DB

	var st storage.LoadStats
	err := metrics.Time(job.Job, "store", func() error {
		var err error
		st, err = mirrorFn(ctx, storage.Target{
			Kind:            job.Storage.Kind,
			DSN:             db.DSN,
			Table:           db.Table,
			Columns:         columns,
			Kinds:           kinds,
			AutoCreateTable: db.AutoCreateTable,
			BatchSize:       db.BatchSizeOrDefault(),
		}, rows)
		return err
	})
	metrics.RecordRows(job.Job, "loaded", st.Rows)
	metrics.RecordBatches(job.Job, st.Batches)
	if err != nil {
		return fmt.Errorf("storage %s: %w", job.Storage.Kind, err)
	}
	log.Printf("storage: kind=%s table=%s inserted=%d batches=%d", job.Storage.Kind, db.Table, st.Rows, st.Batches)
	return nil
}
