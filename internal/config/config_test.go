package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	p := DefaultPaperJob("/repo")
	if p.Kind != KindPaper || p.Outputs.Path != filepath.Join("/repo", DefaultPaperOut) {
		t.Fatalf("paper defaults: %+v", p)
	}
	w := DefaultWEOJob("/repo")
	if w.Kind != KindWEO || w.Source.File.Path != filepath.Join("/repo", "WEO.csv") {
		t.Fatalf("weo defaults: %+v", w)
	}
	if w.Outputs.WidePath != filepath.Join("/repo", DefaultWEOWideOut) {
		t.Fatalf("weo wide path: %q", w.Outputs.WidePath)
	}
	if issues := ValidateJob(p); len(issues) != 0 {
		t.Fatalf("paper defaults have issues: %v", issues)
	}
	if issues := ValidateJob(w); len(issues) != 0 {
		t.Fatalf("weo defaults have issues: %v", issues)
	}
}

func TestLoad_OverridesOnlyNamedFields(t *testing.T) {
	path := writeFile(t, `{
	  "outputs": { "wide_path": "out/wide.csv" },
	  "wide": { "full_year_range": true },
	  "storage": { "kind": "sqlite", "db": { "dsn": ":memory:", "table": "weo_long", "batch_size": 10 } }
	}`)

	j := DefaultWEOJob("root")
	if err := Load(path, &j); err != nil {
		t.Fatalf("load: %v", err)
	}
	if j.Kind != KindWEO {
		t.Fatalf("kind lost: %q", j.Kind)
	}
	if j.Outputs.WidePath != "out/wide.csv" {
		t.Fatalf("wide path=%q", j.Outputs.WidePath)
	}
	if j.Outputs.Path != filepath.Join("root", DefaultWEOLongOut) {
		t.Fatalf("long path should keep default, got %q", j.Outputs.Path)
	}
	if !j.Wide.FullYearRange || !j.Storage.Enabled() || j.Storage.DB.BatchSizeOrDefault() != 10 {
		t.Fatalf("unexpected job %+v", j)
	}
	if j.Parser.Options == nil {
		t.Fatal("parser options must be non-nil")
	}
}

func TestLoad_Errors(t *testing.T) {
	j := DefaultPaperJob("")
	if err := Load(filepath.Join(t.TempDir(), "missing.json"), &j); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := Load(writeFile(t, `{"unknown_field": 1}`), &j); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if err := Load(writeFile(t, `{`), &j); err == nil {
		t.Fatal("expected error for bad JSON")
	}
}

func TestOptionsAccessors(t *testing.T) {
	o := Options{
		"s":   "x",
		"b":   true,
		"r":   "ä;",
		"m":   map[string]any{"a": "b", "n": 1.0},
		"bad": 3.0,
	}
	if o.String("s", "d") != "x" || o.String("bad", "d") != "d" || o.String("none", "d") != "d" {
		t.Fatal("String accessor")
	}
	if !o.Bool("b", false) || o.Bool("bad", false) {
		t.Fatal("Bool accessor")
	}
	if o.Rune("r", ',') != 'ä' || o.Rune("none", ',') != ',' {
		t.Fatal("Rune accessor")
	}
	if m := o.StringMap("m"); len(m) != 1 || m["a"] != "b" {
		t.Fatalf("StringMap=%v", m)
	}
	if m := o.StringMap("none"); m == nil || len(m) != 0 {
		t.Fatalf("StringMap missing=%v", m)
	}
}

func TestOptions_UnmarshalNull(t *testing.T) {
	var o Options
	if err := o.UnmarshalJSON([]byte("null")); err != nil || o == nil {
		t.Fatalf("null: %v %v", o, err)
	}
	if err := o.UnmarshalJSON([]byte(`{"a":1}`)); err != nil || o["a"] != 1.0 {
		t.Fatalf("object: %v %v", o, err)
	}
	if err := o.UnmarshalJSON([]byte(`[1]`)); err == nil {
		t.Fatal("expected error for array")
	}
}
