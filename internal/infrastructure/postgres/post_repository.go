package postgres

import (
	"context"
	"errors"

	domain "tijaniyah/backend/internal/domain/post"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepository persists community posts in PostgreSQL.
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository constructs a repository.
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// Create inserts a new post.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
INSERT INTO posts (id, author_id, slug, title, body, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.AuthorID,
		post.Slug,
		post.Title,
		post.Body,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// GetByID fetches a post by id.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	const query = `
SELECT id, author_id, slug, title, body, created_at, updated_at
FROM posts WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetBySlug fetches a post by its slug.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	const query = `
SELECT id, author_id, slug, title, body, created_at, updated_at
FROM posts WHERE slug = $1
`
	row := r.pool.QueryRow(ctx, query, slug)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns all posts newest first.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	const query = `
SELECT id, author_id, slug, title, body, created_at, updated_at
FROM posts ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update modifies an existing post.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
UPDATE posts
SET slug = $2, title = $3, body = $4, updated_at = $5
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Slug,
		post.Title,
		post.Body,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a post by id.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM posts WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.Slug,
		&p.Title,
		&p.Body,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
