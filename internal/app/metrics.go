package app

import (
	"log"

	"ghanarepro/internal/metrics"
	"ghanarepro/internal/metrics/datadog"
	"ghanarepro/internal/metrics/prompush"
)

// Defaults used when neither flag nor environment names an endpoint.
const (
	DefaultPushgatewayURL = "http://localhost:9091"
	DefaultStatsdAddr     = "127.0.0.1:8125"
)

// SetupMetrics installs the backend chosen by flag, then METRICS_BACKEND,
// then "none". The returned function flushes it and must be called before
// exit. An unusable backend is logged and metrics stay disabled.
func SetupMetrics(f *Flags, job string) (flush func()) {
	noop := func() {}

	name := f.MetricsBackend
	if name == "" {
		name = Getenv("METRICS_BACKEND", "none")
	}

	var (
		b   metrics.Backend
		err error
	)
	switch name {
	case "pushgateway":
		url := f.PushgatewayURL
		if url == "" {
			url = Getenv("PUSHGATEWAY_URL", DefaultPushgatewayURL)
		}
		b, err = prompush.NewBackend(job, url)
		if err == nil {
			Debugf("metrics: backend=pushgateway url=%s job=%s", url, job)
		}

	case "datadog":
		addr := f.StatsdAddr
		if addr == "" {
			addr = Getenv("DD_AGENT_ADDR", DefaultStatsdAddr)
		}
		b, err = datadog.NewBackend(datadog.Config{
			Addr:       addr,
			Namespace:  "ghana.",
			GlobalTags: []string{"job:" + job},
		})
		if err == nil {
			Debugf("metrics: backend=datadog addr=%s job=%s", addr, job)
		}

	case "none":
		Debugf("metrics: disabled")
		return noop

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", name)
		return noop
	}

	if err != nil {
		log.Printf("metrics: failed to init %s backend: %v; using nop", name, err)
		return noop
	}
	metrics.SetBackend(b)
	return func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}
}
