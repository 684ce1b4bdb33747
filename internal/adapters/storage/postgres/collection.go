package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pet-records/internal/domain/records"
)

// Collection guarda cada registro como un documento JSONB en su propia tabla:
//
//	id TEXT PRIMARY KEY, seq BIGSERIAL, doc JSONB
//
// seq conserva el orden de inserción (los upserts no lo cambian).
type Collection[T any] struct {
	db      *sql.DB
	table   string
	timeout time.Duration
}

// NewCollection crea la tabla si no existe. timeout <= 0 = sin timeout propio.
func NewCollection[T any](ctx context.Context, db *sql.DB, table string, timeout time.Duration) (*Collection[T], error) {
	if !records.ValidIdentifier(table) {
		return nil, fmt.Errorf("invalid collection name %q", table)
	}
	c := &Collection[T]{db: db, table: table, timeout: timeout}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL,
		doc JSONB NOT NULL
	)`, table)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("ensure table %s: %w", table, err)
	}

	idx := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_name_idx ON %s ((doc->>'name'))`, table, table)
	if _, err := db.ExecContext(ctx, idx); err != nil {
		return nil, fmt.Errorf("ensure name index %s: %w", table, err)
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

	_, err = c.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`, c.table), id, string(doc))
	if err != nil {
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

	where, args := whereClause(filter)
	q := fmt.Sprintf(`SELECT doc FROM %s%s ORDER BY seq ASC`, c.table, where)
	if limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", limit)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c.table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.table, err)
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", c.table, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// whereClause arma `WHERE doc->>'k' = $n` por cada campo del filtro.
// Los nombres de campo ya fueron validados como identificadores.
func whereClause(filter records.Filter) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for i, k := range filter.Keys() {
		conds = append(conds, fmt.Sprintf("doc->>'%s' = $%d", k, i+1))
		args = append(args, filter[k])
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (c *Collection[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
