// Package ddl is a small, backend-agnostic model for CREATE TABLE statements.
// Backends describe their SQL flavour with a Dialect; the model itself never
// assumes a specific database.
package ddl

import (
	"fmt"
	"strings"
)

// Logical column kinds understood by every Dialect.
const (
	KindText  = "text"
	KindInt   = "int"
	KindFloat = "float"
)

// ColumnDef describes a single column. Name is unquoted; quoting happens at
// render time.
type ColumnDef struct {
	Name     string
	Kind     string
	Nullable bool
}

// TableDef holds a dotted table name (e.g. "public.weo_long") and its
// ordered columns.
type TableDef struct {
	FQN     string
	Columns []ColumnDef
}

// FromColumns builds a TableDef of NOT NULL columns from parallel name and
// kind slices.
func FromColumns(fqn string, names, kinds []string) (TableDef, error) {
	if len(names) != len(kinds) {
		return TableDef{}, fmt.Errorf("ddl: %d column names but %d kinds", len(names), len(kinds))
	}
	td := TableDef{FQN: fqn, Columns: make([]ColumnDef, len(names))}
	for i := range names {
		td.Columns[i] = ColumnDef{Name: names[i], Kind: kinds[i]}
	}
	return td, nil
}

// ColumnNames returns the column names in order.
func (t TableDef) ColumnNames() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Dialect captures what differs between SQL backends.
type Dialect struct {
	// QuoteIdent quotes a single identifier segment.
	QuoteIdent func(string) string

	// MapType maps a logical kind to a column type.
	MapType func(kind string) string

	// CreateIfMissing renders the full statement from the raw and quoted
	// table names and the parenthesized column list. Nil means
	// "CREATE TABLE IF NOT EXISTS".
	CreateIfMissing func(rawFQN, quotedFQN, columns string) string
}

// QuoteFQN quotes every dot-separated segment of fqn.
func (d Dialect) QuoteFQN(fqn string) string {
	parts := strings.Split(fqn, ".")
	for i, p := range parts {
		parts[i] = d.QuoteIdent(strings.TrimSpace(p))
	}
	return strings.Join(parts, ".")
}

// CreateTableSQL renders an idempotent CREATE TABLE statement for t.
func (d Dialect) CreateTableSQL(t TableDef) (string, error) {
	fqn := strings.TrimSpace(t.FQN)
	if fqn == "" {
		return "", fmt.Errorf("ddl: table FQN must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", fqn)
		}
		def := d.QuoteIdent(name) + " " + d.MapType(c.Kind)
		if !c.Nullable {
			def += " NOT NULL"
		}
		cols = append(cols, def)
	}
	body := "(\n  " + strings.Join(cols, ",\n  ") + "\n)"

	quoted := d.QuoteFQN(fqn)
	if d.CreateIfMissing != nil {
		return d.CreateIfMissing(fqn, quoted, body), nil
	}
	return "CREATE TABLE IF NOT EXISTS " + quoted + " " + body, nil
}

// DeleteAllSQL renders a statement removing every row of fqn.
func (d Dialect) DeleteAllSQL(fqn string) string {
	return "DELETE FROM " + d.QuoteFQN(fqn)
}

// QuoteWith returns a QuoteIdent function that wraps identifiers in open and
// close, doubling any embedded close character.
func QuoteWith(open, close string) func(string) string {
	return func(s string) string {
		return open + strings.ReplaceAll(s, close, close+close) + close
	}
}
