package main

import (
	"context"
	"fmt"
	"io"

	"ghanarepro/internal/app"
	"ghanarepro/internal/config"
	"ghanarepro/internal/csvout"
	"ghanarepro/internal/indicator"
	"ghanarepro/internal/metrics"
	"ghanarepro/internal/paper"
)

// Test seams.
var (
	writeCSVFn = csvout.Write
	mirrorFn   = app.Mirror
)

// run flattens the transcribed paper table, writes it to job.Outputs.Path
// and reports "Wrote N rows to PATH" on stdout.
func run(ctx context.Context, job config.Job, stdout io.Writer) error {
	var recs []indicator.Record
	metrics.TimeStep(job.Job, "flatten", func() {
		recs = paper.Flatten(paper.Table(), paper.FlattenOptions{})
	})
	app.Debugf("normalize: series=%d records=%d", len(paper.Table()), len(recs))
	metrics.RecordRows(job.Job, "paper", int64(len(recs)))

	var res csvout.Result
	err := metrics.Time(job.Job, "write", func() error {
		var err error
		res, err = writeCSVFn(job.Outputs.Path, indicator.PaperColumns, indicator.Rows(recs, indicator.PaperRow))
		return err
	})
	if err != nil {
		return fmt.Errorf("write paper table: %w", err)
	}
	app.Debugf("write: path=%s bytes=%d xxh3=%s", res.Path, res.Bytes, res.DigestHex())
	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", res.Rows, res.Path)

	return mirrorFn(ctx, job, indicator.PaperColumns, indicator.PaperKinds, indicator.ValueRows(recs, indicator.PaperValues))
}
