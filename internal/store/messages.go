package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mobintix/site-service/internal/model"
)

const messageColumns = `id, created_at, name, email, phone, subject, message`

func scanMessage(row rowScanner) (model.ContactMessage, error) {
	var m model.ContactMessage
	err := row.Scan(&m.ID, &m.CreatedAt, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message)
	return m, err
}

// MessageStore manages contact_messages. Ordered newest first.
// Messages are create-only for visitors; admins list and delete.
type MessageStore struct {
	c collection[model.ContactMessage]
}

// NewMessageStore returns a MessageStore on pool.
func NewMessageStore(pool *pgxpool.Pool) *MessageStore {
	return &MessageStore{c: collection[model.ContactMessage]{
		pool:    pool,
		table:   "contact_messages",
		columns: messageColumns,
		orderBy: "created_at DESC",
		scan:    scanMessage,
	}}
}

// FetchAll returns every message, newest first.
func (s *MessageStore) FetchAll(ctx context.Context) ([]model.ContactMessage, error) {
	return s.c.fetchAll(ctx)
}

// Create inserts a visitor submission and returns the stored row.
func (s *MessageStore) Create(ctx context.Context, in model.ContactMessageInput) (model.ContactMessage, error) {
	m, err := scanMessage(s.c.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+messageColumns,
		in.Name, in.Email, in.Phone, in.Subject, in.Message,
	))
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("contact_messages insert: %w", err)
	}
	return m, nil
}

// Delete removes a message by id.
func (s *MessageStore) Delete(ctx context.Context, id int64) error {
	return s.c.deleteByID(ctx, id)
}
