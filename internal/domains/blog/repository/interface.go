package repository

import (
	"context"

	"blog-backend/internal/domains/blog/model"
)

// =====================================================
// BLOG REPOSITORY INTERFACE
// =====================================================

// BlogRepository is the persistent-store boundary for posts: one insert,
// one update-by-id, one find-many-with-projection, one find-first-by-id.
// Any relational store implementing these four operations suffices.
type BlogRepository interface {
	// Create inserts a new post and fills in the generated id.
	Create(ctx context.Context, blog *model.Blog) error

	// Update overwrites title, content and author of the post with the
	// given id. Returns model.ErrBlogNotFound when the id does not exist.
	Update(ctx context.Context, blog *model.Blog) error

	// ListAll fetches every post with the author-name projection, in
	// store-native order. Not paginated.
	ListAll(ctx context.Context) ([]*model.BlogWithAuthor, error)

	// FindByID fetches the first post matching id with the same
	// projection. A missing post returns (nil, nil).
	FindByID(ctx context.Context, id string) (*model.BlogWithAuthor, error)
}
