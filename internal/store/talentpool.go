package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mobintix/site-service/internal/model"
)

const talentPoolColumns = `id, created_at, email`

func scanTalentPoolEntry(row rowScanner) (model.TalentPoolEntry, error) {
	var e model.TalentPoolEntry
	err := row.Scan(&e.ID, &e.CreatedAt, &e.Email)
	return e, err
}

// TalentPoolStore manages talent_pool. Ordered newest first.
type TalentPoolStore struct {
	c collection[model.TalentPoolEntry]
}

// NewTalentPoolStore returns a TalentPoolStore on pool.
func NewTalentPoolStore(pool *pgxpool.Pool) *TalentPoolStore {
	return &TalentPoolStore{c: collection[model.TalentPoolEntry]{
		pool:    pool,
		table:   "talent_pool",
		columns: talentPoolColumns,
		orderBy: "created_at DESC",
		scan:    scanTalentPoolEntry,
	}}
}

// FetchAll returns every entry, newest first.
func (s *TalentPoolStore) FetchAll(ctx context.Context) ([]model.TalentPoolEntry, error) {
	return s.c.fetchAll(ctx)
}

// Join inserts an email. A duplicate is a benign outcome, not a failure:
// the unique constraint maps to ErrAlreadyJoined so callers can tell the
// visitor they were already signed up.
func (s *TalentPoolStore) Join(ctx context.Context, email string) (model.TalentPoolEntry, error) {
	e, err := scanTalentPoolEntry(s.c.pool.QueryRow(ctx,
		`INSERT INTO talent_pool (email) VALUES ($1) RETURNING `+talentPoolColumns,
		email,
	))
	if err != nil {
		if IsUniqueViolation(err) {
			return model.TalentPoolEntry{}, ErrAlreadyJoined
		}
		return model.TalentPoolEntry{}, fmt.Errorf("talent_pool insert: %w", err)
	}
	return e, nil
}

// Delete removes an entry by id.
func (s *TalentPoolStore) Delete(ctx context.Context, id int64) error {
	return s.c.deleteByID(ctx, id)
}
