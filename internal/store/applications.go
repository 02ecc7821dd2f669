package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mobintix/site-service/internal/model"
)

const applicationColumns = `id, created_at, job_id, job_title, name, email, phone, resume_link, portfolio_link`

func scanApplication(row rowScanner) (model.JobApplication, error) {
	var a model.JobApplication
	err := row.Scan(&a.ID, &a.CreatedAt, &a.JobID, &a.JobTitle, &a.Name,
		&a.Email, &a.Phone, &a.ResumeLink, &a.PortfolioLink)
	return a, err
}

// ApplicationStore manages job_applications. Ordered newest first.
type ApplicationStore struct {
	c collection[model.JobApplication]
}

// NewApplicationStore returns an ApplicationStore on pool.
func NewApplicationStore(pool *pgxpool.Pool) *ApplicationStore {
	return &ApplicationStore{c: collection[model.JobApplication]{
		pool:    pool,
		table:   "job_applications",
		columns: applicationColumns,
		orderBy: "created_at DESC",
		scan:    scanApplication,
	}}
}

// FetchAll returns every application, newest first.
func (s *ApplicationStore) FetchAll(ctx context.Context) ([]model.JobApplication, error) {
	return s.c.fetchAll(ctx)
}

// Create inserts an application. The caller supplies JobTitle as a
// point-in-time snapshot of the referenced job's title.
func (s *ApplicationStore) Create(ctx context.Context, in model.JobApplicationInput) (model.JobApplication, error) {
	a, err := scanApplication(s.c.pool.QueryRow(ctx,
		`INSERT INTO job_applications (job_id, job_title, name, email, phone, resume_link, portfolio_link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+applicationColumns,
		in.JobID, in.JobTitle, in.Name, in.Email, in.Phone, in.ResumeLink, in.PortfolioLink,
	))
	if err != nil {
		return model.JobApplication{}, fmt.Errorf("job_applications insert: %w", err)
	}
	return a, nil
}

// Delete removes an application by id.
func (s *ApplicationStore) Delete(ctx context.Context, id int64) error {
	return s.c.deleteByID(ctx, id)
}
