package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/blog/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresBlogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &postgresBlogRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresBlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		blog.Title,
		blog.Content,
		blog.AuthorID,
	).Scan(&blog.ID)

	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresBlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	// Full overwrite, author reference included
	query := `
		UPDATE blogs
		SET
			title = $2,
			content = $3,
			author_id = $4,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.AuthorID,
	)

	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBlogNotFound
	}

	return nil
}

// =====================================================
// LIST ALL
// =====================================================

func (r *postgresBlogRepository) ListAll(ctx context.Context) ([]*model.BlogWithAuthor, error) {
	query := `
		SELECT b.id, b.title, b.content, u.name
		FROM blogs b
		JOIN users u ON u.id = b.author_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]*model.BlogWithAuthor, 0)
	for rows.Next() {
		blog := &model.BlogWithAuthor{}

		err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Content,
			&blog.Author.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}

		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blogs: %w", err)
	}

	return blogs, nil
}

// =====================================================
// FIND BY ID
// =====================================================

func (r *postgresBlogRepository) FindByID(ctx context.Context, id string) (*model.BlogWithAuthor, error) {
	query := `
		SELECT b.id, b.title, b.content, u.name
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = $1
		LIMIT 1
	`

	blog := &model.BlogWithAuthor{}

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.Author.Name,
	)

	if err != nil {
		// find-first semantics: a missing row is not a failure
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return blog, nil
}
