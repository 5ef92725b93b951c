package repository

import (
	"reflect"
	"testing"
)

func TestWhere_BuildOrdersPredicatesAndPlaceholders(t *testing.T) {
	var w Where
	w.And("is_active", OpEq, true).
		And("status", OpEq, "approved").
		AndAny(
			Predicate{Column: "title", Op: OpILike, Value: "%cook%"},
			Predicate{Column: "company", Op: OpILike, Value: "%cook%"},
		).
		And("job_type", OpEq, "Full-time")

	sql, args := w.Build(0)
	want := "is_active = $1 AND status = $2 AND (title ILIKE $3 OR company ILIKE $4) AND job_type = $5"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	wantArgs := []any{true, "approved", "%cook%", "%cook%", "Full-time"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestWhere_BuildWithOffset(t *testing.T) {
	var w Where
	w.And("id", OpEq, int64(7))
	sql, args := w.Build(2)
	if sql != "id = $3" || len(args) != 1 {
		t.Fatalf("unexpected build: %q %v", sql, args)
	}
}

func TestWhere_EmptyAnyOfIsIgnored(t *testing.T) {
	var w Where
	w.AndAny()
	if w.Len() != 0 {
		t.Fatalf("expected empty where")
	}
	sql, args := w.Build(0)
	if sql != "" || args != nil {
		t.Fatalf("expected empty build, got %q %v", sql, args)
	}
}

func TestContains_EscapesPatternCharacters(t *testing.T) {
	if got := Contains("Austin"); got != "%Austin%" {
		t.Fatalf("unexpected pattern %q", got)
	}
	if got := Contains(`100%_off\`); got != `%100\%\_off\\%` {
		t.Fatalf("unexpected escaped pattern %q", got)
	}
}

func TestSelectQuery_Build(t *testing.T) {
	q := SelectQuery{
		Table:   "jobs",
		Columns: []string{"id", "title"},
		OrderBy: []OrderBy{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}},
	}
	q.Where.And("is_active", OpEq, true)

	sql, args := q.Build()
	want := "SELECT id, title FROM jobs WHERE is_active = $1 ORDER BY created_at DESC, id DESC"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if len(args) != 1 || args[0] != true {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildUpdate_FiltersUnknownColumns(t *testing.T) {
	allowed := map[string]struct{}{"title": {}, "salary": {}}
	sql, args, ok := BuildUpdate("jobs", 9, []Assignment{
		{Column: "title", Value: "Cook"},
		{Column: "status", Value: "approved"},
		{Column: "salary", Value: nil},
	}, allowed)
	if !ok {
		t.Fatalf("expected update")
	}
	if sql != "UPDATE jobs SET title = $1, salary = $2 WHERE id = $3" {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"Cook", nil, int64(9)}) {
		t.Fatalf("unexpected args: %#v", args)
	}

	if _, _, ok := BuildUpdate("jobs", 9, []Assignment{{Column: "status", Value: "x"}}, allowed); ok {
		t.Fatalf("expected no update when every column is rejected")
	}
}
