package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/logger"
)

// =====================================================
// BLOG HANDLER
// =====================================================

// BlogHandler serves the four blog operations. The response bodies are a
// fixed wire contract (raw post JSON, {id}, {blogs}, {blog}); they are
// written directly instead of going through a response envelope.
type BlogHandler struct {
	blogService service.ServiceInterface
}

func NewBlogHandler(blogService service.ServiceInterface) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// getUserID reads the caller identity bound by the auth gate.
func getUserID(c *gin.Context) (string, bool) {
	return middleware.GetUserID(c)
}

// CreateBlog creates a new post authored by the caller.
// POST /api/v1/blog
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	// Step 1: Caller identity (guaranteed by the auth gate)
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	// Step 2: Bind request body; fields are passed through untouched
	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("failed to parse create body", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	// Step 3: Call service
	blog, err := h.blogService.CreateBlog(c.Request.Context(), userID, req)
	if err != nil {
		// No local recovery on the write path
		logger.Error("failed to create blog", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	// Step 4: Return the full created record verbatim
	c.JSON(http.StatusOK, blog)
}

// UpdateBlog overwrites a post in full and returns only its id.
// PUT /api/v1/blog
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	// Step 1: Caller identity
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	// Step 2: Bind request body
	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("failed to parse update body", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	// Step 3: Call service
	resp, err := h.blogService.UpdateBlog(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("failed to update blog", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	// Step 4: Return {id} only
	c.JSON(http.StatusOK, resp)
}

// ListBlogs returns every post with the author-name projection.
// GET /api/v1/blog/all
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs(c.Request.Context())
	if err != nil {
		logger.Error("failed to list blogs", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, model.ListBlogsResponse{Blogs: blogs})
}

// GetBlog returns a single post, or {"blog": null} when it does not
// exist — a missing post is a successful response here, not a 404.
// GET /api/v1/blog/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id := c.Param("id")

	blog, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		// 411 with this exact body is the contract existing clients
		// depend on; do not swap it for a conventional code.
		logger.Error("failed to fetch blog", err)
		c.JSON(411, gin.H{"message": "error while fetching blog"})
		return
	}

	c.JSON(http.StatusOK, model.GetBlogResponse{Blog: blog})
}
