package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLocalOpen covers success, missing file, directory and pre-canceled
// context.
func TestLocalOpen(t *testing.T) {
	t.Parallel()

	type tc struct {
		name            string
		prepare         func(t *testing.T) string
		canceled        bool
		wantErrIs       error
		wantErrContains string
		wantContent     string
	}

	writeWEO := func(t *testing.T) string {
		t.Helper()
		p := filepath.Join(t.TempDir(), "WEO.csv")
		if err := os.WriteFile(p, []byte("COUNTRY,SERIES_CODE\nGhana,GHA.NGDPD.A\n"), 0o644); err != nil {
			t.Fatalf("write test file: %v", err)
		}
		return p
	}

	cases := []tc{
		{
			name:        "success_reads_content",
			prepare:     writeWEO,
			wantContent: "COUNTRY,SERIES_CODE\nGhana,GHA.NGDPD.A\n",
		},
		{
			name: "missing_file_errors_with_wrapping",
			prepare: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErrIs:       os.ErrNotExist,
			wantErrContains: "missing.csv",
		},
		{
			name: "directory_rejected",
			prepare: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErrContains: "is a directory",
		},
		{
			name:      "pre_canceled_context_short_circuits",
			prepare:   writeWEO,
			canceled:  true,
			wantErrIs: context.Canceled,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			path := c.prepare(t)
			ctx := context.Background()
			if c.canceled {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			src := NewLocal(path)
			if src.Path() != path {
				t.Fatalf("Path()=%q want %q", src.Path(), path)
			}
			rc, err := src.Open(ctx)

			if c.wantErrIs != nil || c.wantErrContains != "" {
				if err == nil {
					rc.Close()
					t.Fatal("expected error, got nil")
				}
				if c.wantErrIs != nil && !errors.Is(err, c.wantErrIs) {
					t.Fatalf("errors.Is(%v, %v) = false", err, c.wantErrIs)
				}
				if c.wantErrContains != "" && !strings.Contains(err.Error(), c.wantErrContains) {
					t.Fatalf("error %q does not contain %q", err, c.wantErrContains)
				}
				if rc != nil {
					t.Fatalf("got non-nil ReadCloser on error: %T", rc)
				}
				return
			}

			if err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			defer rc.Close()

			got, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("reading: %v", err)
			}
			if string(got) != c.wantContent {
				t.Fatalf("content mismatch: got %q, want %q", got, c.wantContent)
			}
		})
	}
}
