// Command reproduce_weo extracts Ghana's whitelisted series from an IMF
// World Economic Outlook CSV export and writes them as a long table and as
// a wide (year by indicator) table. The long records can also be mirrored
// into a database.
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

	job, err := app.LoadJob(flags, config.DefaultWEOJob, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if flags.Validate {
		log.Printf("configuration is valid")
		return
	}

	flush := app.SetupMetrics(flags, job.Job)

	start := time.Now()
	app.Debugf("source: kind=%s path=%q url=%q parser=%s storage=%q",
		job.Source.Kind, job.Source.File.Path, job.Source.HTTP.URL, job.Parser.Kind, job.Storage.Kind)
	err = run(context.Background(), job, os.Stdout)
	flush()
	if err != nil {
		log.Fatalf("%v", err)
	}
	app.Debugf("completed in %s", time.Since(start).Truncate(time.Millisecond))
}
