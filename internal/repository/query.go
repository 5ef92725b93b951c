package repository

import (
	"strconv"
	"strings"
)

type Op string

const (
	OpEq    Op = "="
	OpGte   Op = ">="
	OpILike Op = "ILIKE"
)

// Predicate is one (column, operator, bound value) condition. When AnyOf is
// set the predicate is a parenthesised OR group of its members instead.
// Column names come from code, never from request input.
type Predicate struct {
	Column string
	Op     Op
	Value  any
	AnyOf  []Predicate
}

// Where is an ordered conjunction of predicates.
type Where struct {
	preds []Predicate
}

func (w *Where) And(column string, op Op, value any) *Where {
	w.preds = append(w.preds, Predicate{Column: column, Op: op, Value: value})
	return w
}

func (w *Where) AndAny(preds ...Predicate) *Where {
	if len(preds) == 0 {
		return w
	}
	w.preds = append(w.preds, Predicate{AnyOf: preds})
	return w
}

func (w *Where) Len() int {
	return len(w.preds)
}

// Build renders the predicates as a WHERE body with $n placeholders starting
// after argOffset, returning the bound values in placeholder order.
func (w *Where) Build(argOffset int) (string, []any) {
	if w == nil || len(w.preds) == 0 {
		return "", nil
	}

	args := make([]any, 0, len(w.preds))
	parts := make([]string, 0, len(w.preds))
	for _, p := range w.preds {
		parts = append(parts, renderPredicate(p, argOffset, &args))
	}
	return strings.Join(parts, " AND "), args
}

func renderPredicate(p Predicate, argOffset int, args *[]any) string {
	if len(p.AnyOf) > 0 {
		sub := make([]string, 0, len(p.AnyOf))
		for _, m := range p.AnyOf {
			sub = append(sub, renderPredicate(m, argOffset, args))
		}
		return "(" + strings.Join(sub, " OR ") + ")"
	}
	*args = append(*args, p.Value)
	return p.Column + " " + string(p.Op) + " $" + strconv.Itoa(argOffset+len(*args))
}

// Contains wraps s for a LIKE/ILIKE substring match, escaping the pattern
// metacharacters so user text matches literally.
func Contains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

type OrderBy struct {
	Column string
	Desc   bool
}

func (o OrderBy) String() string {
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	return o.Column + " " + dir
}

// SelectQuery assembles SELECT <columns> FROM <table> [WHERE ...] [ORDER BY ...].
type SelectQuery struct {
	Table   string
	Columns []string
	Where   Where
	OrderBy []OrderBy
}

func (q *SelectQuery) Build() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.Table)

	where, args := q.Where.Build(0)
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	if len(q.OrderBy) > 0 {
		order := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			order = append(order, o.String())
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(order, ", "))
	}
	return b.String(), args
}

// Assignment is one column = value pair of an UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// BuildUpdate renders UPDATE <table> SET ... WHERE id = $n. Assignments whose
// column is not in allowed are dropped; ok is false when nothing remains.
func BuildUpdate(table string, id int64, assignments []Assignment, allowed map[string]struct{}) (query string, args []any, ok bool) {
	sets := make([]string, 0, len(assignments))
	args = make([]any, 0, len(assignments)+1)
	for _, a := range assignments {
		if _, permitted := allowed[a.Column]; !permitted {
			continue
		}
		args = append(args, a.Value)
		sets = append(sets, a.Column+" = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false
	}
	args = append(args, id)
	query = "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(len(args))
	return query, args, true
}
