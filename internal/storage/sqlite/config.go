package sqlite

// Config holds SQLite repository configuration derived from storage.Config.
type Config struct {
	// DSN is a file path or URI understood by modernc.org/sqlite, e.g.
	// "repro.db", "file:repro.db?_pragma=busy_timeout(5000)" or ":memory:".
	DSN string

	// Table is the destination table. "main.weo_long" and "weo_long" are
	// equivalent.
	Table string

	// Columns is the ordered list of destination columns.
	Columns []string
}
