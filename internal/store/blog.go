package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mobintix/site-service/internal/model"
)

const blogColumns = `id, created_at, slug, title, content, excerpt, image, author, category, tags, published`

func scanBlogPost(row rowScanner) (model.BlogPost, error) {
	var b model.BlogPost
	err := row.Scan(&b.ID, &b.CreatedAt, &b.Slug, &b.Title, &b.Content,
		&b.Excerpt, &b.Image, &b.Author, &b.Category, &b.Tags, &b.Published)
	return b, err
}

// BlogStore manages blog_posts. Admin listings include drafts; the public
// site only ever sees published rows.
type BlogStore struct {
	c collection[model.BlogPost]
}

// NewBlogStore returns a BlogStore on pool.
func NewBlogStore(pool *pgxpool.Pool) *BlogStore {
	return &BlogStore{c: collection[model.BlogPost]{
		pool:    pool,
		table:   "blog_posts",
		columns: blogColumns,
		orderBy: "created_at DESC",
		scan:    scanBlogPost,
	}}
}

// FetchAll returns every post including drafts, newest first.
func (s *BlogStore) FetchAll(ctx context.Context) ([]model.BlogPost, error) {
	return s.c.fetchAll(ctx)
}

// Published returns published posts, newest first.
func (s *BlogStore) Published(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := s.c.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE published ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("blog_posts query: %w", err)
	}
	defer rows.Close()

	out := make([]model.BlogPost, 0)
	for rows.Next() {
		b, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("blog_posts scan: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("blog_posts rows: %w", err)
	}
	return out, nil
}

// BySlug returns one published post by its unique slug.
// Returns ErrNotFound for unknown slugs and unpublished drafts alike.
func (s *BlogStore) BySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	b, err := scanBlogPost(s.c.pool.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1 AND published`, slug,
	))
	if err != nil {
		return model.BlogPost{}, mapNoRows(err)
	}
	return b, nil
}

// Create inserts a post. A duplicate slug maps to a wrapped unique
// violation the handler can surface verbatim.
func (s *BlogStore) Create(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error) {
	b, err := scanBlogPost(s.c.pool.QueryRow(ctx,
		`INSERT INTO blog_posts (slug, title, content, excerpt, image, author, category, tags, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+blogColumns,
		in.Slug, in.Title, in.Content, in.Excerpt, in.Image, in.Author,
		in.Category, in.Tags, in.Published,
	))
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("blog_posts insert: %w", err)
	}
	return b, nil
}

// Update rewrites a post's mutable fields. Returns ErrNotFound when the id
// does not exist.
func (s *BlogStore) Update(ctx context.Context, id int64, in model.BlogPostInput) (model.BlogPost, error) {
	b, err := scanBlogPost(s.c.pool.QueryRow(ctx,
		`UPDATE blog_posts
		 SET slug = $1, title = $2, content = $3, excerpt = $4, image = $5,
		     author = $6, category = $7, tags = $8, published = $9
		 WHERE id = $10
		 RETURNING `+blogColumns,
		in.Slug, in.Title, in.Content, in.Excerpt, in.Image, in.Author,
		in.Category, in.Tags, in.Published, id,
	))
	if err != nil {
		return model.BlogPost{}, mapNoRows(err)
	}
	return b, nil
}

// Delete removes a post by id.
func (s *BlogStore) Delete(ctx context.Context, id int64) error {
	return s.c.deleteByID(ctx, id)
}
