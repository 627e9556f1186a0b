// Package config defines the JSON-serializable job model for the
// reproduction binaries. Every field has a compiled-in default, so a job runs
// with no configuration at all; a JSON file only overrides what it names.
//
// Example (trimmed):
//
//	{
//	  "job":     "weo_reproduction",
//	  "source":  { "kind": "file", "file": { "path": "WEO.csv" } },
//	  "parser":  { "kind": "csv", "options": { "trim_space": false } },
//	  "outputs": { "path": "reproduced/long.csv", "wide_path": "reproduced/wide.csv" },
//	  "wide":    { "full_year_range": false },
//	  "storage": { "kind": "sqlite", "db": { "dsn": "repro.db", "table": "weo_long", "auto_create_table": true } }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Job kinds.
const (
	KindPaper = "paper"
	KindWEO   = "weo"
)

// Default file locations, relative to the repository root.
const (
	DefaultWEOInput   = "WEO.csv"
	DefaultPaperOut   = "reproduced/imf_paper_ghana_selected_indicators_2022_2028.csv"
	DefaultWEOLongOut = "reproduced/ghana_imf_reproduction_dataset.csv"
	DefaultWEOWideOut = "reproduced/ghana_imf_reproduction_dataset_wide.csv"
)

// DefaultBatchSize is the number of rows per storage bulk insert.
const DefaultBatchSize = 500

// Job describes one reproduction run.
type Job struct {
	// Job names the run; used for metrics grouping.
	Job string `json:"job"`

	// Kind is KindPaper or KindWEO. It is set by the defaults and not
	// expected in JSON.
	Kind string `json:"-"`

	Source  Source  `json:"source"`
	Parser  Parser  `json:"parser"`
	Outputs Outputs `json:"outputs"`
	Wide    Wide    `json:"wide"`
	Storage Storage `json:"storage"`
}

// Source identifies the input. Unused by the paper job.
type Source struct {
	Kind string     `json:"kind"` // "file" or "http"
	File SourceFile `json:"file"`
	HTTP SourceHTTP `json:"http"`
}

// SourceFile holds configuration for the "file" source kind.
type SourceFile struct {
	Path string `json:"path"`
}

// SourceHTTP holds configuration for the "http" source kind.
type SourceHTTP struct {
	URL            string `json:"url"`
	MaxRetries     int    `json:"max_retries"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Parser selects how the input is parsed. Options keys for "csv":
// comma (string), trim_space (bool), lazy_quotes (bool, default true), header_map (object).
type Parser struct {
	Kind    string  `json:"kind"`
	Options Options `json:"options"`
}

// Outputs are the CSV destinations. WidePath is only used by the WEO job.
type Outputs struct {
	Path     string `json:"path"`
	WidePath string `json:"wide_path"`
}

// Wide tunes the wide pivot.
type Wide struct {
	// FullYearRange emits a row for every year of the selection, including
	// years without any data.
	FullYearRange bool `json:"full_year_range"`
}

// Storage optionally mirrors the long records into a database. An empty
// Kind disables it.
type Storage struct {
	Kind string   `json:"kind"`
	DB   DBConfig `json:"db"`
}

// DBConfig configures the database sink.
type DBConfig struct {
	// DSN is the driver connection string.
	DSN string `json:"dsn"`

	// Table is the destination table, optionally schema-qualified.
	Table string `json:"table"`

	// AutoCreateTable creates Table when it does not exist.
	AutoCreateTable bool `json:"auto_create_table"`

	// BatchSize is the number of rows per bulk insert; 0 means DefaultBatchSize.
	BatchSize int `json:"batch_size"`
}

// Enabled reports whether a storage sink is configured.
func (s Storage) Enabled() bool { return s.Kind != "" && s.Kind != "none" }

// BatchSizeOrDefault returns the configured batch size or DefaultBatchSize.
func (d DBConfig) BatchSizeOrDefault() int {
	if d.BatchSize > 0 {
		return d.BatchSize
	}
	return DefaultBatchSize
}

// DefaultPaperJob returns the paper job with outputs under root.
func DefaultPaperJob(root string) Job {
	return Job{
		Job:     "paper_reproduction",
		Kind:    KindPaper,
		Outputs: Outputs{Path: filepath.Join(root, DefaultPaperOut)},
	}
}

// DefaultWEOJob returns the WEO job reading and writing under root.
func DefaultWEOJob(root string) Job {
	return Job{
		Job:    "weo_reproduction",
		Kind:   KindWEO,
		Source: Source{Kind: "file", File: SourceFile{Path: filepath.Join(root, DefaultWEOInput)}},
		Parser: Parser{Kind: "csv", Options: Options{}},
		Outputs: Outputs{
			Path:     filepath.Join(root, DefaultWEOLongOut),
			WidePath: filepath.Join(root, DefaultWEOWideOut),
		},
	}
}

// Load decodes the JSON file at path over j. Fields absent from the file
// keep their current values.
func Load(path string, j *Job) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	kind := j.Kind
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(j); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	j.Kind = kind
	if j.Parser.Options == nil {
		j.Parser.Options = Options{}
	}
	return nil
}
