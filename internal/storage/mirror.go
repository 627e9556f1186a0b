package storage

import (
	"context"
	"fmt"

	"ghanarepro/internal/ddl"
)

// Target describes a table that mirrors one CSV output.
type Target struct {
	Kind  string
	DSN   string
	Table string

	// Columns and Kinds are parallel; Kinds holds ddl.Kind* values.
	Columns []string
	Kinds   []string

	AutoCreateTable bool
	BatchSize       int
}

// Mirror replaces the contents of t.Table with rows. The table is created
// first when t.AutoCreateTable is set. Rows must be aligned to t.Columns.
func Mirror(ctx context.Context, t Target, rows [][]any) (LoadStats, error) {
	d, ok := DialectFor(t.Kind)
	if !ok {
		return LoadStats{}, fmt.Errorf("no SQL dialect registered for storage kind %q", t.Kind)
	}

	repo, err := New(ctx, Config{Kind: t.Kind, DSN: t.DSN, Table: t.Table, Columns: t.Columns})
	if err != nil {
		return LoadStats{}, fmt.Errorf("open %s: %w", t.Kind, err)
	}
	defer repo.Close()

	if t.AutoCreateTable {
		td, err := ddl.FromColumns(t.Table, t.Columns, t.Kinds)
		if err != nil {
			return LoadStats{}, err
		}
		stmt, err := d.CreateTableSQL(td)
		if err != nil {
			return LoadStats{}, err
		}
		if err := repo.Exec(ctx, stmt); err != nil {
			return LoadStats{}, fmt.Errorf("create table %s: %w", t.Table, err)
		}
	}
	if err := repo.Exec(ctx, d.DeleteAllSQL(t.Table)); err != nil {
		return LoadStats{}, fmt.Errorf("clear table %s: %w", t.Table, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan []any)
	go func() {
		defer close(in)
		for _, r := range rows {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	batch := t.BatchSize
	if batch <= 0 {
		batch = len(rows)
		if batch == 0 {
			batch = 1
		}
	}
	st, err := LoadBatches(ctx, t.Columns, in, batch, repo.CopyFrom)
	if err != nil {
		return st, fmt.Errorf("load %s: %w", t.Table, err)
	}
	return st, nil
}
