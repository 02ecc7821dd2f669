package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mobintix/site-service/internal/model"
)

const jobColumns = `id, created_at, title, type, location, description, requirements, salary_range, category`

func scanJob(row rowScanner) (model.Job, error) {
	var j model.Job
	err := row.Scan(&j.ID, &j.CreatedAt, &j.Title, &j.Type, &j.Location,
		&j.Description, &j.Requirements, &j.SalaryRange, &j.Category)
	return j, err
}

// JobStore manages the jobs collection. Ordered by id ascending.
type JobStore struct {
	c collection[model.Job]
}

// NewJobStore returns a JobStore on pool.
func NewJobStore(pool *pgxpool.Pool) *JobStore {
	return &JobStore{c: collection[model.Job]{
		pool:    pool,
		table:   "jobs",
		columns: jobColumns,
		orderBy: "id ASC",
		scan:    scanJob,
	}}
}

// FetchAll returns every job posting.
func (s *JobStore) FetchAll(ctx context.Context) ([]model.Job, error) {
	return s.c.fetchAll(ctx)
}

// Get returns one job by id. Used by the application flow to snapshot the
// job title. Returns ErrNotFound for an unknown id.
func (s *JobStore) Get(ctx context.Context, id int64) (model.Job, error) {
	j, err := scanJob(s.c.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id,
	))
	if err != nil {
		return model.Job{}, mapNoRows(err)
	}
	return j, nil
}

// Create inserts a job posting and returns the stored row.
func (s *JobStore) Create(ctx context.Context, in model.JobInput) (model.Job, error) {
	j, err := scanJob(s.c.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, type, location, description, requirements, salary_range, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+jobColumns,
		in.Title, in.Type, in.Location, in.Description, in.Requirements, in.SalaryRange, in.Category,
	))
	if err != nil {
		return model.Job{}, fmt.Errorf("jobs insert: %w", err)
	}
	return j, nil
}

// Update rewrites a job's mutable fields. Returns ErrNotFound when the id
// does not exist.
func (s *JobStore) Update(ctx context.Context, id int64, in model.JobInput) (model.Job, error) {
	j, err := scanJob(s.c.pool.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $1, type = $2, location = $3, description = $4,
		     requirements = $5, salary_range = $6, category = $7
		 WHERE id = $8
		 RETURNING `+jobColumns,
		in.Title, in.Type, in.Location, in.Description, in.Requirements,
		in.SalaryRange, in.Category, id,
	))
	if err != nil {
		return model.Job{}, mapNoRows(err)
	}
	return j, nil
}

// Delete removes a job by id. Existing applications keep their job_title
// snapshot; they are not touched.
func (s *JobStore) Delete(ctx context.Context, id int64) error {
	return s.c.deleteByID(ctx, id)
}
