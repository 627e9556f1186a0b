// Package csvout writes header-plus-rows CSV files. Each Write replaces the
// destination file and creates missing parent directories.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"
)

// Result describes a completed write.
type Result struct {
	Path   string
	Rows   int    // data rows, header excluded
	Bytes  int64  // bytes written, header included
	Digest uint64 // xxh3 of the written bytes
}

// DigestHex returns the digest as 16 lowercase hex digits.
func (r Result) DigestHex() string {
	return fmt.Sprintf("%016x", r.Digest)
}

// Write creates (or truncates) path and writes header followed by rows.
// Every row must have len(header) fields.
func Write(path string, header []string, rows [][]string) (Result, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("csvout: create dir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("csvout: create %s: %w", path, err)
	}

	res, err := Encode(f, header, rows)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("csvout: close %s: %w", path, cerr)
	}
	res.Path = path
	return res, err
}

// Encode writes header and rows to w and reports what was written.
func Encode(w io.Writer, header []string, rows [][]string) (Result, error) {
	h := xxh3.New()
	cw := &countWriter{w: io.MultiWriter(w, h)}
	enc := csv.NewWriter(cw)

	if err := enc.Write(header); err != nil {
		return Result{}, fmt.Errorf("csvout: write header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return Result{}, fmt.Errorf("csvout: row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
		if err := enc.Write(row); err != nil {
			return Result{}, fmt.Errorf("csvout: write row %d: %w", i+1, err)
		}
	}
	enc.Flush()
	if err := enc.Error(); err != nil {
		return Result{}, fmt.Errorf("csvout: flush: %w", err)
	}

	return Result{Rows: len(rows), Bytes: cw.n, Digest: h.Sum64()}, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
