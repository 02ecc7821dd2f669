package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mobintix/site-service/internal/model"
)

const projectColumns = `id, title, category, description, image, tags, link`

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Description, &p.Image, &p.Tags, &p.Link)
	return p, err
}

// ProjectStore manages the projects collection. Ordered by id ascending.
type ProjectStore struct {
	c collection[model.Project]
}

// NewProjectStore returns a ProjectStore on pool.
func NewProjectStore(pool *pgxpool.Pool) *ProjectStore {
	return &ProjectStore{c: collection[model.Project]{
		pool:    pool,
		table:   "projects",
		columns: projectColumns,
		orderBy: "id ASC",
		scan:    scanProject,
	}}
}

// FetchAll returns every project.
func (s *ProjectStore) FetchAll(ctx context.Context) ([]model.Project, error) {
	return s.c.fetchAll(ctx)
}

// Create inserts a project and returns the stored row.
func (s *ProjectStore) Create(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	p, err := scanProject(s.c.pool.QueryRow(ctx,
		`INSERT INTO projects (title, category, description, image, tags, link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+projectColumns,
		in.Title, in.Category, in.Description, in.Image, in.Tags, in.Link,
	))
	if err != nil {
		return model.Project{}, fmt.Errorf("projects insert: %w", err)
	}
	return p, nil
}

// Update rewrites a project's mutable fields. Returns ErrNotFound when the
// id does not exist.
func (s *ProjectStore) Update(ctx context.Context, id int64, in model.ProjectInput) (model.Project, error) {
	p, err := scanProject(s.c.pool.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, category = $2, description = $3, image = $4, tags = $5, link = $6
		 WHERE id = $7
		 RETURNING `+projectColumns,
		in.Title, in.Category, in.Description, in.Image, in.Tags, in.Link, id,
	))
	if err != nil {
		return model.Project{}, mapNoRows(err)
	}
	return p, nil
}

// Delete removes a project by id.
func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	return s.c.deleteByID(ctx, id)
}
