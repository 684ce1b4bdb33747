package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pet-records/internal/domain/records"
)

// Collection guarda documentos JSON en una tabla por colección.
// seq (rowid) da el orden de inserción; el upsert por id no lo toca.
type Collection[T any] struct {
	db      *sql.DB
	table   string
	timeout time.Duration
}

func NewCollection[T any](ctx context.Context, db *sql.DB, table string, timeout time.Duration) (*Collection[T], error) {
	if !records.ValidIdentifier(table) {
		return nil, fmt.Errorf("invalid collection name %q", table)
	}
	c := &Collection[T]{db: db, table: table, timeout: timeout}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		doc TEXT NOT NULL
	)`, table)); err != nil {
		return nil, fmt.Errorf("create %s table: %w", table, err)
	}
	// Misma expresión que fieldExpr("name"): si no coincide, SQLite no usa el índice.
	if _, err := db.ExecContext(ctx, fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS %s_name_text_idx ON %s (%s)`, table, table, fieldExpr("name"),
	)); err != nil {
		return nil, fmt.Errorf("create %s name index: %w", table, err)
	}
	return c, nil
}

var _ records.Store[struct{}] = (*Collection[struct{}])(nil)

func (c *Collection[T]) Save(ctx context.Context, id string, rec T) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("record id required")
	}
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s(id, doc) VALUES(?, ?) ON CONFLICT(id) DO UPDATE SET doc=excluded.doc`, c.table,
	), id, string(doc)); err != nil {
		return fmt.Errorf("upsert %s: %w", c.table, err)
	}
	return nil
}

func (c *Collection[T]) Find(ctx context.Context, filter records.Filter) ([]T, error) {
	return c.query(ctx, filter, 0)
}

func (c *Collection[T]) FindOne(ctx context.Context, filter records.Filter) (T, bool, error) {
	var zero T
	out, err := c.query(ctx, filter, 1)
	if err != nil {
		return zero, false, err
	}
	if len(out) == 0 {
		return zero, false, nil
	}
	return out[0], true, nil
}

func (c *Collection[T]) query(ctx context.Context, filter records.Filter, limit int) ([]T, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	q, args := selectSQL(c.table, filter, limit)

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c.table, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.table, err)
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", c.table, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// selectSQL arma el SELECT ordenado por seq. Los campos ya fueron validados.
func selectSQL(table string, filter records.Filter, limit int) (string, []any) {
	q := fmt.Sprintf(`SELECT doc FROM %s`, table)
	args := make([]any, 0, len(filter))
	if len(filter) > 0 {
		conds := make([]string, 0, len(filter))
		for _, k := range filter.Keys() {
			conds = append(conds, fieldExpr(k)+" = ?")
			args = append(args, filter[k])
		}
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY seq ASC"
	if limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", limit)
	}
	return q, args
}

// fieldExpr: json_extract devuelve INTEGER para números y el filtro es string,
// así que comparamos como TEXT.
func fieldExpr(field string) string {
	return fmt.Sprintf("CAST(json_extract(doc, '$.%s') AS TEXT)", field)
}

func (c *Collection[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
