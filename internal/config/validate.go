package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning is reported but does not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into
// the config (e.g. "storage.db.table").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether any issue has SeverityError.
func HasErrors(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

// KnownStorageKinds lists the storage backends built into the binaries.
var KnownStorageKinds = []string{"sqlite", "postgres", "mssql", "mysql"}

// ValidateJob lints j without mutating it.
func ValidateJob(j Job) []Issue {
	var issues []Issue

	if strings.TrimSpace(j.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "job",
			Message:  "job must not be empty; it is used for metrics labeling",
		})
	}

	switch j.Kind {
	case KindPaper:
		if j.Source.File.Path != "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     "source.file.path",
				Message:  "paper job has no input file; source is ignored",
			})
		}
	case KindWEO:
		issues = append(issues, validateSource(j.Source)...)
		issues = append(issues, validateParser(j.Parser)...)
		if strings.TrimSpace(j.Outputs.WidePath) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "outputs.wide_path",
				Message:  "wide output path must not be empty",
			})
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "kind",
			Message:  fmt.Sprintf("unknown job kind %q", j.Kind),
		})
	}

	if strings.TrimSpace(j.Outputs.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "outputs.path",
			Message:  "output path must not be empty",
		})
	}
	if j.Outputs.Path != "" && j.Outputs.Path == j.Outputs.WidePath {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "outputs.wide_path",
			Message:  "long and wide outputs must not share a path",
		})
	}

	issues = append(issues, validateStorage(j.Storage)...)
	return issues
}

func validateSource(s Source) []Issue {
	var issues []Issue
	switch s.Kind {
	case "file":
		if strings.TrimSpace(s.File.Path) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "source.file.path",
				Message:  "file source requires a non-empty path",
			})
		}
	case "http":
		u := strings.TrimSpace(s.HTTP.URL)
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "source.http.url",
				Message:  fmt.Sprintf("http source requires an http(s) URL, got %q", u),
			})
		}
		if s.HTTP.MaxRetries < 0 || s.HTTP.TimeoutSeconds < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "source.http",
				Message:  "max_retries and timeout_seconds must be >= 0",
			})
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.kind",
			Message:  fmt.Sprintf("unsupported source kind %q; expected \"file\" or \"http\"", s.Kind),
		})
	}
	return issues
}

func validateParser(p Parser) []Issue {
	var issues []Issue
	if p.Kind != "csv" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "parser.kind",
			Message:  fmt.Sprintf("unsupported parser kind %q; only \"csv\" is available", p.Kind),
		})
	}
	if c := p.Options.String("comma", ","); utf8.RuneCountInString(c) != 1 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "parser.options.comma",
			Message:  fmt.Sprintf("comma must be a single character, got %q", c),
		})
	}
	if p.Options.Bool("trim_space", false) {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "parser.options.trim_space",
			Message:  "trim_space relaxes the exact COUNTRY match",
		})
	}
	return issues
}

func validateStorage(s Storage) []Issue {
	var issues []Issue
	if !s.Enabled() {
		return issues
	}

	known := false
	for _, k := range KnownStorageKinds {
		if s.Kind == k {
			known = true
			break
		}
	}
	if !known {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q; expected one of %s", s.Kind, strings.Join(KnownStorageKinds, ", ")),
		})
	}
	if strings.TrimSpace(s.DB.DSN) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.dsn",
			Message:  "storage requires a DSN",
		})
	}
	if strings.TrimSpace(s.DB.Table) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.table",
			Message:  "storage requires a table name",
		})
	}
	if s.DB.BatchSize < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.db.batch_size",
			Message:  "batch_size must be >= 0",
		})
	}
	return issues
}
