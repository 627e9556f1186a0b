package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ghanarepro/internal/config"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const weoFixture = "\uFEFFCOUNTRY,SERIES_CODE,2015,2016,2017\n" +
	"Ghana,GHA.NGDP_RPCH.A,3.8,,8.1\n" +
	"Ghana,GHA.PCPIPCH.A,17.15,17.4549,abc\n" +
	"Nigeria,NGA.NGDP_RPCH.A,2.7,-1.6,0.8\n" +
	"Ghana,GHA.XXX.A,1,2,3\n" +
	"Ghana,GHA.TX_RPCH.A,1\"2,3\n"

func setup(t *testing.T) config.Job {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.DefaultWEOInput), []byte(weoFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	return config.DefaultWEOJob(root)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestRun_LongAndWide(t *testing.T) {
	job := setup(t)

	var stdout bytes.Buffer
	if err := run(context.Background(), job, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	wantOut := "Wrote 5 long rows to " + job.Outputs.Path + "\n" +
		"Wrote 3 wide rows to " + job.Outputs.WidePath + "\n"
	if stdout.String() != wantOut {
		t.Fatalf("stdout = %q, want %q", stdout.String(), wantOut)
	}

	src := "IMF WEO 9.0.0 (via repository WEO.csv)"
	wantLong := []string{
		"country,year,series_code,indicator,value,source_dataset",
		`Ghana,2015,GHA.PCPIPCH.A,"Inflation, average CPI (%)",17.15,` + src,
		"Ghana,2015,GHA.NGDP_RPCH.A,Real GDP growth (%),3.8," + src,
		"Ghana,2016,GHA.TX_RPCH.A,Exports of goods and services volume growth (%),3.0," + src,
		`Ghana,2016,GHA.PCPIPCH.A,"Inflation, average CPI (%)",17.455,` + src,
		"Ghana,2017,GHA.NGDP_RPCH.A,Real GDP growth (%),8.1," + src,
	}
	if got := readLines(t, job.Outputs.Path); strings.Join(got, "\n") != strings.Join(wantLong, "\n") {
		t.Fatalf("long =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(wantLong, "\n"))
	}

	wide := readLines(t, job.Outputs.WidePath)
	if len(wide) != 4 {
		t.Fatalf("wide lines = %d, want header + 3", len(wide))
	}
	if !strings.HasPrefix(wide[0], `country,year,Real GDP growth (%),"Inflation, average CPI (%)",`) {
		t.Fatalf("wide header = %q", wide[0])
	}
	blanks := strings.Repeat(",", 12)
	for i, want := range []string{
		"Ghana,2015,3.8,17.15" + blanks,
		"Ghana,2016,,17.455" + strings.Repeat(",", 9) + ",3.0,,",
		"Ghana,2017,8.1," + blanks,
	} {
		if wide[i+1] != want {
			t.Errorf("wide row %d = %q, want %q", i+1, wide[i+1], want)
		}
	}
}

func TestRun_FullYearRange(t *testing.T) {
	job := setup(t)
	job.Wide.FullYearRange = true

	var stdout bytes.Buffer
	if err := run(context.Background(), job, &stdout); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "Wrote 16 wide rows") {
		t.Fatalf("stdout = %q", stdout.String())
	}
	wide := readLines(t, job.Outputs.WidePath)
	if wide[len(wide)-1] != "Ghana,2030"+strings.Repeat(",", 14) {
		t.Fatalf("last wide row = %q", wide[len(wide)-1])
	}
}

func TestRun_Idempotent(t *testing.T) {
	job := setup(t)
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		if err := run(context.Background(), job, io.Discard); err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(job.Outputs.WidePath)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, b)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Fatal("wide output differs between runs")
	}
}

func TestRun_MissingInput(t *testing.T) {
	job := config.DefaultWEOJob(t.TempDir())
	err := run(context.Background(), job, io.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	if _, statErr := os.Stat(job.Outputs.Path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("long output must not be written when the input is missing")
	}
}

func TestRun_EmptyInput(t *testing.T) {
	for _, body := range []string{"", "\uFEFF"} {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, config.DefaultWEOInput), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		job := config.DefaultWEOJob(root)

		var stdout bytes.Buffer
		if err := run(context.Background(), job, &stdout); err != nil {
			t.Fatalf("run(%q): %v", body, err)
		}
		wantOut := "Wrote 0 long rows to " + job.Outputs.Path + "\n" +
			"Wrote 0 wide rows to " + job.Outputs.WidePath + "\n"
		if stdout.String() != wantOut {
			t.Fatalf("stdout = %q, want %q", stdout.String(), wantOut)
		}
		if got := readLines(t, job.Outputs.Path); len(got) != 1 || got[0] != "country,year,series_code,indicator,value,source_dataset" {
			t.Fatalf("long = %q, want header only", got)
		}
		if got := readLines(t, job.Outputs.WidePath); len(got) != 1 || !strings.HasPrefix(got[0], "country,year,") {
			t.Fatalf("wide = %q, want header only", got)
		}
	}
}

func TestRun_UnsupportedSource(t *testing.T) {
	job := setup(t)
	job.Source.Kind = "s3"
	if err := run(context.Background(), job, io.Discard); err == nil || !strings.Contains(err.Error(), "unsupported source.kind") {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, weoFixture)
	}))
	defer srv.Close()

	job := config.DefaultWEOJob(t.TempDir())
	job.Source = config.Source{Kind: "http", HTTP: config.SourceHTTP{URL: srv.URL + "/WEO.csv"}}

	var stdout bytes.Buffer
	if err := run(context.Background(), job, &stdout); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "Wrote 5 long rows") {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestRun_MirrorsLongRecords(t *testing.T) {
	job := setup(t)

	orig := mirrorFn
	t.Cleanup(func() { mirrorFn = orig })

	var rows [][]any
	mirrorFn = func(_ context.Context, _ config.Job, cols, kinds []string, r [][]any) error {
		if len(cols) != 6 || len(kinds) != 6 {
			t.Errorf("cols=%v kinds=%v", cols, kinds)
		}
		rows = r
		return nil
	}
	if err := run(context.Background(), job, io.Discard); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || rows[0][1] != int64(2015) || rows[0][4] != 17.15 {
		t.Fatalf("mirrored rows = %v", rows)
	}
}
