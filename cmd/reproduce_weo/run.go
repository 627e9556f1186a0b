package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ghanarepro/internal/app"
	"ghanarepro/internal/config"
	"ghanarepro/internal/csvout"
	"ghanarepro/internal/datasource"
	"ghanarepro/internal/datasource/file"
	"ghanarepro/internal/datasource/httpds"
	"ghanarepro/internal/indicator"
	"ghanarepro/internal/metrics"
	csvparser "ghanarepro/internal/parser/csv"
	"ghanarepro/internal/pivot"
	"ghanarepro/internal/weo"
)

// maxLoggedParseErrors caps the per-record parse errors echoed to the log.
const maxLoggedParseErrors = 3

// Test seams.
var (
	openSourceFn = openSource
	writeCSVFn   = csvout.Write
	mirrorFn     = app.Mirror
)

// run reads the WEO export, normalizes the whitelisted Ghana rows, writes
// the long and wide tables and prints one summary line for each.
func run(ctx context.Context, job config.Job, stdout io.Writer) error {
	src, err := openSourceFn(job)
	if err != nil {
		return err
	}

	var (
		tbl       *csvparser.Table
		parseErrs int
	)
	err = metrics.Time(job.Job, "read", func() error {
		var err error
		tbl, err = csvparser.ReadTable(ctx, src, csvparser.OptionsFrom(job.Parser.Options), func(line int, err error) {
			parseErrs++
			if parseErrs <= maxLoggedParseErrors {
				log.Printf("source: skipping malformed record at line %d: %v", line, err)
			}
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("read %s source: %w", job.Source.Kind, err)
	}
	for _, col := range []string{weo.ColCountry, weo.ColSeriesCode} {
		if !tbl.Has(col) {
			log.Printf("source: column %s not found; no rows will be selected", col)
		}
	}
	app.Debugf("source: rows=%d columns=%d skipped=%d", len(tbl.Rows), len(tbl.Header), tbl.Skipped)

	sel := weo.DefaultSelection()
	var (
		recs  []indicator.Record
		stats weo.Stats
	)
	metrics.TimeStep(job.Job, "normalize", func() {
		recs, stats = weo.Normalize(tbl.Rows, sel)
		weo.SortLong(recs)
	})
	app.Debugf("normalize: scanned=%d selected=%d values=%d blank=%d invalid=%d",
		stats.Scanned, stats.Selected, stats.Values, stats.Blank, stats.Invalid)
	metrics.RecordRows(job.Job, "scanned", int64(stats.Scanned))
	metrics.RecordRows(job.Job, "selected", int64(stats.Selected))
	metrics.RecordRows(job.Job, "blank", int64(stats.Blank))
	metrics.RecordRows(job.Job, "invalid", int64(stats.Invalid))
	metrics.RecordRows(job.Job, "long", int64(len(recs)))

	long, err := write(job, job.Outputs.Path, indicator.LongColumns, indicator.Rows(recs, indicator.LongRow))
	if err != nil {
		return fmt.Errorf("write long table: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %d long rows to %s\n", long.Rows, long.Path)

	var opts pivot.Options
	if job.Wide.FullYearRange {
		opts.Years = sel.Years()
	}
	var wide pivot.Table
	metrics.TimeStep(job.Job, "pivot", func() {
		wide = pivot.Wide(recs, sel.Whitelist.Names(), opts)
	})
	if wide.Unassigned > 0 {
		log.Printf("pivot: %d records had no indicator column", wide.Unassigned)
	}
	app.Debugf("pivot: years=%d columns=%d", len(wide.Rows), len(wide.Columns))
	metrics.RecordRows(job.Job, "wide", int64(len(wide.Rows)))

	wres, err := write(job, job.Outputs.WidePath, wide.Header(), wide.Records())
	if err != nil {
		return fmt.Errorf("write wide table: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %d wide rows to %s\n", wres.Rows, wres.Path)

	return mirrorFn(ctx, job, indicator.LongColumns, indicator.LongKinds, indicator.ValueRows(recs, indicator.LongValues))
}

func write(job config.Job, path string, header []string, rows [][]string) (csvout.Result, error) {
	var res csvout.Result
	err := metrics.Time(job.Job, "write", func() error {
		var err error
		res, err = writeCSVFn(path, header, rows)
		return err
	})
	if err == nil {
		app.Debugf("write: path=%s rows=%d bytes=%d xxh3=%s", res.Path, res.Rows, res.Bytes, res.DigestHex())
	}
	return res, err
}

func openSource(job config.Job) (datasource.Source, error) {
	switch job.Source.Kind {
	case "file":
		return file.NewLocal(job.Source.File.Path), nil
	case "http":
		h := job.Source.HTTP
		return httpds.New(httpds.Config{
			URL:        h.URL,
			MaxRetries: h.MaxRetries,
			Timeout:    time.Duration(h.TimeoutSeconds) * time.Second,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported source.kind=%s", job.Source.Kind)
	}
}
