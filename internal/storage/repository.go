// Package storage contains the backend-agnostic contracts for mirroring
// reproduced records into a database. Concrete backends register themselves
// from init; callers obtain a Repository through New and never import a
// backend directly (see package storage/all).
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ghanarepro/internal/ddl"
)

// Config is the backend-independent connection description.
type Config struct {
	Kind    string   // "sqlite", "postgres", "mssql", "mysql"
	DSN     string   // driver connection string
	Table   string   // destination table, optionally schema-qualified
	Columns []string // ordered destination columns
}

// Repository is the minimal surface the loader needs.
type Repository interface {
	// CopyFrom bulk-inserts rows aligned to columns and returns the number
	// of rows written.
	CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error)
	// Exec runs a single statement, typically DDL.
	Exec(ctx context.Context, sql string) error
	Close()
}

// Factory opens a Repository for cfg.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
	dialects  = map[string]ddl.Dialect{}
)

// Register makes a backend available under kind. Later registrations for
// the same kind replace earlier ones.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = f
}

// RegisterDialect records the SQL dialect used for DDL against kind.
func RegisterDialect(kind string, d ddl.Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[kind] = d
}

// DialectFor returns the dialect registered for kind.
func DialectFor(kind string) (ddl.Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[kind]
	return d, ok
}

// New opens a Repository using the factory registered for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported storage kind %q (registered: %v)", cfg.Kind, ListKinds())
	}
	return f(ctx, cfg)
}

// ListKinds returns the registered backend kinds, sorted.
func ListKinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
