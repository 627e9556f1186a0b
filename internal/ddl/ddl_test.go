package ddl

import (
	"reflect"
	"strings"
	"testing"
)

func testDialect() Dialect {
	return Dialect{
		QuoteIdent: QuoteWith(`"`, `"`),
		MapType: func(kind string) string {
			return map[string]string{KindText: "TEXT", KindInt: "BIGINT", KindFloat: "DOUBLE"}[kind]
		},
	}
}

func TestCreateTableSQL(t *testing.T) {
	td, err := FromColumns("public.weo_long", []string{"country", "year", "value"}, []string{KindText, KindInt, KindFloat})
	if err != nil {
		t.Fatal(err)
	}
	got, err := testDialect().CreateTableSQL(td)
	if err != nil {
		t.Fatal(err)
	}
	want := "CREATE TABLE IF NOT EXISTS \"public\".\"weo_long\" (\n" +
		"  \"country\" TEXT NOT NULL,\n" +
		"  \"year\" BIGINT NOT NULL,\n" +
		"  \"value\" DOUBLE NOT NULL\n" +
		")"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCreateTableSQL_CustomWrapperAndNullable(t *testing.T) {
	d := testDialect()
	d.CreateIfMissing = func(raw, quoted, cols string) string {
		return "IF MISSING " + raw + " CREATE TABLE " + quoted + " " + cols
	}
	got, err := d.CreateTableSQL(TableDef{FQN: "t", Columns: []ColumnDef{{Name: "a", Kind: KindText, Nullable: true}}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "IF MISSING t CREATE TABLE \"t\"") || strings.Contains(got, "NOT NULL") {
		t.Fatalf("got %q", got)
	}
}

func TestCreateTableSQL_Errors(t *testing.T) {
	d := testDialect()
	if _, err := d.CreateTableSQL(TableDef{FQN: " ", Columns: []ColumnDef{{Name: "a"}}}); err == nil {
		t.Fatal("expected error for empty FQN")
	}
	if _, err := d.CreateTableSQL(TableDef{FQN: "t"}); err == nil {
		t.Fatal("expected error for no columns")
	}
	if _, err := d.CreateTableSQL(TableDef{FQN: "t", Columns: []ColumnDef{{Name: ""}}}); err == nil {
		t.Fatal("expected error for empty column name")
	}
	if _, err := FromColumns("t", []string{"a"}, nil); err == nil {
		t.Fatal("expected error for mismatched kinds")
	}
}

func TestQuoting(t *testing.T) {
	q := QuoteWith("[", "]")
	if got := q("a]b"); got != "[a]]b]" {
		t.Fatalf("got %q", got)
	}
	d := testDialect()
	if got := d.DeleteAllSQL("s.t"); got != `DELETE FROM "s"."t"` {
		t.Fatalf("got %q", got)
	}
	td := TableDef{Columns: []ColumnDef{{Name: "x"}, {Name: "y"}}}
	if got := td.ColumnNames(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("got %v", got)
	}
}
