package model

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateBlogRequest carries the create body. Fields are pointers so an
// absent field stays null all the way into the store.
type CreateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// UpdateBlogRequest carries the update body. Update is a full overwrite:
// title, content and the author reference all get replaced.
type UpdateBlogRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// UpdateBlogResponse returns only the id of the updated post.
type UpdateBlogResponse struct {
	ID string `json:"id"`
}

// ListBlogsResponse wraps the list-all projection.
type ListBlogsResponse struct {
	Blogs []*BlogWithAuthor `json:"blogs"`
}

// GetBlogResponse wraps the single-get projection. A missing post is not
// an error: Blog is null and the status stays 200.
type GetBlogResponse struct {
	Blog *BlogWithAuthor `json:"blog"`
}
