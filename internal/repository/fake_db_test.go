package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"fairchance-board/internal/database"
)

type recordedCall struct {
	query string
	args  []any
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d != %d", len(dest), len(r.vals))
	}
	for i := range dest {
		d := reflect.ValueOf(dest[i]).Elem()
		if r.vals[i] == nil {
			d.Set(reflect.Zero(d.Type()))
			continue
		}
		v := reflect.ValueOf(r.vals[i])
		if !v.Type().AssignableTo(d.Type()) {
			return fmt.Errorf("scan type mismatch at %d: %s into %s", i, v.Type(), d.Type())
		}
		d.Set(v)
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	idx  int
}

func (r *fakeRows) Close() {}
func (r *fakeRows) Err() error {
	return nil
}
func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}
func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.idx-1].Scan(dest...)
}

// fakeDB records every statement and replays canned results.
type fakeDB struct {
	calls []recordedCall

	execAffected int64
	execErr      error
	queryRows    []fakeRow
	queryErr     error
	row          fakeRow
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }
func (db *fakeDB) SQLDB() *sql.DB                 { return nil }

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.calls = append(db.calls, recordedCall{query: query, args: args})
	return db.execAffected, db.execErr
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	db.calls = append(db.calls, recordedCall{query: query, args: args})
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	return &fakeRows{rows: db.queryRows}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	db.calls = append(db.calls, recordedCall{query: query, args: args})
	return db.row
}

func (db *fakeDB) lastCall() recordedCall {
	if len(db.calls) == 0 {
		return recordedCall{}
	}
	return db.calls[len(db.calls)-1]
}
