package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"mobintix/site-service/internal/store"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	if !store.IsUniqueViolation(unique) {
		t.Error("IsUniqueViolation(23505) should be true")
	}
	if !store.IsUniqueViolation(fmt.Errorf("insert: %w", unique)) {
		t.Error("IsUniqueViolation should unwrap wrapped errors")
	}

	for _, err := range []error{
		nil,
		errors.New("connection refused"),
		&pgconn.PgError{Code: "23503"}, // foreign key, not unique
		store.ErrNotFound,
	} {
		if store.IsUniqueViolation(err) {
			t.Errorf("IsUniqueViolation(%v) should be false", err)
		}
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if errors.Is(store.ErrNotFound, store.ErrAlreadyJoined) {
		t.Error("ErrNotFound and ErrAlreadyJoined must be distinct sentinels")
	}
}
