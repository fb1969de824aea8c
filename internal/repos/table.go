package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
)

// table is a content.Collection over one SQL table. columns[0] is the primary key
// and values must return arguments in the same order.
type table[T any] struct {
	db      *sqlx.DB
	name    string
	columns []string
	values  func(*T) []any
	id      func(*T) string
	fields  filter.Columns
	order   []filter.Order
}

func (t *table[T]) insertSQL() string {
	marks := strings.TrimSuffix(strings.Repeat("?,", len(t.columns)), ",")
	return t.db.Rebind(`INSERT INTO ` + t.name + `(` + strings.Join(t.columns, ",") + `) VALUES(` + marks + `)`)
}

func (t *table[T]) List(ctx context.Context, q filter.Query) ([]T, error) {
	clause, args, err := filter.SQL(q.WithDefaultSort(t.order...), t.fields)
	if err != nil {
		return nil, err
	}
	out := []T{}
	query := t.db.Rebind(`SELECT ` + strings.Join(t.columns, ",") + ` FROM ` + t.name + clause)
	if err := t.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return out, nil
}

func (t *table[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	query := t.db.Rebind(`SELECT ` + strings.Join(t.columns, ",") + ` FROM ` + t.name + ` WHERE id = ?`)
	err := t.db.GetContext(ctx, &out, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.ErrNotFound
	}
	return out, err
}

func (t *table[T]) Create(ctx context.Context, item *T) error {
	if t.id(item) == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidInput)
	}
	if _, err := t.db.ExecContext(ctx, t.insertSQL(), t.values(item)...); err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidInput, t.id(item))
		}
		return fmt.Errorf("insert %s: %w", t.name, err)
	}
	return nil
}

func (t *table[T]) Update(ctx context.Context, item *T) error {
	sets := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns[1:] {
		sets = append(sets, c+" = ?")
	}
	vals := t.values(item)
	args := append(vals[1:len(vals):len(vals)], vals[0])
	query := t.db.Rebind(`UPDATE ` + t.name + ` SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`)
	res, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.name, err)
	}
	return mustAffect(res)
}

func (t *table[T]) Delete(ctx context.Context, id string) error {
	res, err := t.db.ExecContext(ctx, t.db.Rebind(`DELETE FROM `+t.name+` WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	return mustAffect(res)
}

// isDuplicate reports a primary key or unique constraint violation from
// either driver.
func isDuplicate(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch code := liteErr.Code(); code {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		default:
			// base code only when extended codes are off
			return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")
		}
	}
	return false
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
