// Package app holds the wiring shared by the reproduce_* binaries: common
// flags, job loading and validation, metrics backend selection, and the
// optional database mirror. It keeps each main package down to its own
// pipeline.
package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"ghanarepro/internal/config"

	// Every storage backend is compiled in; storage.kind picks one.
	_ "ghanarepro/internal/storage/all"
)

// Flags are the command-line options common to both binaries.
type Flags struct {
	Root           string
	ConfigPath     string
	Validate       bool
	Verbose        bool
	MetricsBackend string
	PushgatewayURL string
	StatsdAddr     string
}

// RegisterFlags defines the common flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Root, "root", ".", "base directory for inputs and outputs")
	fs.StringVar(&f.ConfigPath, "config", "", "optional JSON job config applied over the defaults")
	fs.BoolVar(&f.Validate, "validate", false, "validate the configuration and exit")
	fs.BoolVar(&f.Verbose, "v", false, "enable verbose logs")
	fs.StringVar(&f.MetricsBackend, "metrics-backend", "", "metrics backend: none, pushgateway, datadog (env METRICS_BACKEND)")
	fs.StringVar(&f.PushgatewayURL, "pushgateway-url", "", "Pushgateway base URL (env PUSHGATEWAY_URL)")
	fs.StringVar(&f.StatsdAddr, "statsd-addr", "", "DogStatsD address (env DD_AGENT_ADDR)")
	return f
}

var verbose bool

// SetVerbose turns Debugf output on or off.
func SetVerbose(v bool) { verbose = v }

// Debugf logs only when verbose output is enabled.
func Debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// LoadJob builds the job from def(root), applies the -config file when
// given, and validates the result. Relative paths set by the config file
// are resolved against -root. Every issue is printed to errOut as
// "severity: path: message". An error is returned when any issue is an
// error.
func LoadJob(f *Flags, def func(root string) config.Job, errOut io.Writer) (config.Job, error) {
	base := def(f.Root)
	job := base
	if f.ConfigPath != "" {
		if err := config.Load(f.ConfigPath, &job); err != nil {
			return job, err
		}
		resolvePath(f.Root, &job.Source.File.Path, base.Source.File.Path)
		resolvePath(f.Root, &job.Outputs.Path, base.Outputs.Path)
		resolvePath(f.Root, &job.Outputs.WidePath, base.Outputs.WidePath)
	}

	issues := config.ValidateJob(job)
	for _, iss := range issues {
		fmt.Fprintf(errOut, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if config.HasErrors(issues) {
		return job, fmt.Errorf("configuration is invalid (%d issues)", len(issues))
	}
	return job, nil
}

// resolvePath joins a relative *p with root unless it still holds the
// default, which def already rooted.
func resolvePath(root string, p *string, def string) {
	if *p == "" || *p == def || filepath.IsAbs(*p) {
		return
	}
	*p = filepath.Join(root, *p)
}

// Getenv returns the value of key, or def when it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
