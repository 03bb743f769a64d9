package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vblajic/chirper/internal/database"
)

// fakeDB scripts the storage gateway. Results and errors are keyed by a
// distinguishing substring of the SQL; the longest matching key wins.
type fakeDB struct {
	rows     map[string][][]any
	rowsErr  map[string]error
	queryErr map[string]error

	calls []string
	txs   []*fakeTx
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		rows:     make(map[string][][]any),
		rowsErr:  make(map[string]error),
		queryErr: make(map[string]error),
	}
}

func (db *fakeDB) match(m map[string]error, sql string) (error, bool) {
	var best string
	for key := range m {
		if strings.Contains(sql, key) && len(key) > len(best) {
			best = key
		}
	}
	if best == "" {
		return nil, false
	}
	return m[best], true
}

func (db *fakeDB) rowsFor(sql string) [][]any {
	var best string
	for key := range db.rows {
		if strings.Contains(sql, key) && len(key) > len(best) {
			best = key
		}
	}
	if best == "" {
		return nil
	}
	return db.rows[best]
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.calls = append(db.calls, sql)
	if err, ok := db.match(db.queryErr, sql); ok {
		return pgconn.CommandTag{}, err
	}
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.calls = append(db.calls, sql)
	if err, ok := db.match(db.queryErr, sql); ok {
		return nil, err
	}
	return &fakeRows{rows: db.rowsFor(sql)}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.calls = append(db.calls, sql)
	if err, ok := db.match(db.rowsErr, sql); ok {
		return &fakeRow{err: err}
	}
	rows := db.rowsFor(sql)
	if len(rows) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	return &fakeRow{vals: rows[0]}
}

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	tx := &fakeTx{db: db}
	db.txs = append(db.txs, tx)
	return tx, nil
}

type fakeTx struct {
	db         *fakeDB
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return tx.db.Exec(ctx, sql, args...)
}

func (tx *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return tx.db.Query(ctx, sql, args...)
}

func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return tx.db.QueryRow(ctx, sql, args...)
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeRow struct {
	vals []any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(dest, r.vals)
}

type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignAll(dest, r.rows[r.pos-1])
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos-1], nil
}

func assignAll(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d targets for %d values", len(dest), len(vals))
	}
	for i, d := range dest {
		if err := assign(d, vals[i]); err != nil {
			return fmt.Errorf("scan target %d: %w", i, err)
		}
	}
	return nil
}

func assign(dst, src any) error {
	switch d := dst.(type) {
	case *int64:
		*d = src.(int64)
	case *int32:
		*d = src.(int32)
	case *string:
		*d = src.(string)
	case *time.Time:
		*d = src.(time.Time)
	case *[]byte:
		if src == nil {
			*d = nil
		} else {
			*d = src.([]byte)
		}
	case **string:
		if src == nil {
			*d = nil
		} else {
			s := src.(string)
			*d = &s
		}
	case **int64:
		if src == nil {
			*d = nil
		} else {
			n := src.(int64)
			*d = &n
		}
	default:
		return fmt.Errorf("unsupported type %T", dst)
	}
	return nil
}
