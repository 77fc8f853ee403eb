package service

import (
	"context"

	"blog-backend/internal/domains/blog/model"
)

// ServiceInterface is the blog business layer. Every operation assumes
// the auth gate already bound a caller identity; userID parameters are
// that identity, never client-supplied data.
type ServiceInterface interface {
	// CreateBlog inserts a post authored by the caller and returns the
	// full created record.
	CreateBlog(ctx context.Context, userID string, req model.CreateBlogRequest) (*model.Blog, error)

	// UpdateBlog overwrites a post in full. The author reference is reset
	// to the caller; ownership of the existing post is not checked.
	UpdateBlog(ctx context.Context, userID string, req model.UpdateBlogRequest) (*model.UpdateBlogResponse, error)

	// ListBlogs returns every post with the author-name projection.
	ListBlogs(ctx context.Context) ([]*model.BlogWithAuthor, error)

	// GetBlog returns the post with the given id, or (nil, nil) when no
	// such post exists.
	GetBlog(ctx context.Context, id string) (*model.BlogWithAuthor, error)
}
