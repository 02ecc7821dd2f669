// Package store implements the entity collections on PostgreSQL.
//
// The five admin-managed collections plus the blog share one generic
// fetch/delete cycle ("remote collection"); per-entity stores add the
// typed insert/update statements and ordering keys. Reads return errors
// explicitly so callers can tell "no rows" from "fetch failed".
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row is missing for a targeted operation.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyJoined is the benign outcome of inserting a duplicate email
// into the talent pool.
var ErrAlreadyJoined = errors.New("email already in talent pool")

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// collection is the shared read/delete cycle over one table.
type collection[T any] struct {
	pool    *pgxpool.Pool
	table   string
	columns string
	orderBy string
	scan    func(rowScanner) (T, error)
}

// fetchAll reads the full table in the collection's order.
// Always returns a non-nil slice on success so empty lists encode as [].
func (c *collection[T]) fetchAll(ctx context.Context) ([]T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, c.columns, c.table, c.orderBy)
	rows, err := c.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", c.table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := c.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", c.table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", c.table, err)
	}
	return out, nil
}

// deleteByID removes one row, returning ErrNotFound when nothing matched.
func (c *collection[T]) deleteByID(ctx context.Context, id int64) error {
	tag, err := c.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table), id)
	if err != nil {
		return fmt.Errorf("%s delete: %w", c.table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// mapNoRows converts pgx.ErrNoRows into the package sentinel.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
