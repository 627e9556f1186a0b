// Command reproduce_paper writes the IMF "Selected Economic and Financial
// Indicators, 2022-28" table for Ghana as a flat CSV, one row per
// (indicator, year), and optionally mirrors it into a database.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"ghanarepro/internal/app"
	"ghanarepro/internal/config"
)

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()
	app.SetVerbose(flags.Verbose)

	job, err := app.LoadJob(flags, config.DefaultPaperJob, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if flags.Validate {
		log.Printf("configuration is valid")
		return
	}

	flush := app.SetupMetrics(flags, job.Job)

	start := time.Now()
	err = run(context.Background(), job, os.Stdout)
	flush()
	if err != nil {
		log.Fatalf("%v", err)
	}
	app.Debugf("completed in %s", time.Since(start).Truncate(time.Millisecond))
}
