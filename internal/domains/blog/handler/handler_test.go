package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "handler-test-secret"

// fakeBlogRepo is an in-memory repository with an injectable failure,
// so the HTTP surface can be exercised without Postgres.
type fakeBlogRepo struct {
	blogs   map[uuid.UUID]*model.Blog
	names   map[string]string
	findErr error
	calls   int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs: make(map[uuid.UUID]*model.Blog),
		names: make(map[string]string),
	}
}

func (f *fakeBlogRepo) Create(ctx context.Context, blog *model.Blog) error {
	f.calls++
	blog.ID = uuid.New()
	stored := *blog
	f.blogs[blog.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, blog *model.Blog) error {
	f.calls++
	if _, ok := f.blogs[blog.ID]; !ok {
		return model.ErrBlogNotFound
	}
	stored := *blog
	f.blogs[blog.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) ListAll(ctx context.Context) ([]*model.BlogWithAuthor, error) {
	f.calls++
	out := make([]*model.BlogWithAuthor, 0, len(f.blogs))
	for _, b := range f.blogs {
		out = append(out, f.project(b))
	}
	return out, nil
}

func (f *fakeBlogRepo) FindByID(ctx context.Context, id string) (*model.BlogWithAuthor, error) {
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	blogID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	b, ok := f.blogs[blogID]
	if !ok {
		return nil, nil
	}
	return f.project(b), nil
}

func (f *fakeBlogRepo) project(b *model.Blog) *model.BlogWithAuthor {
	return &model.BlogWithAuthor{
		ID:      b.ID,
		Title:   b.Title,
		Content: b.Content,
		Author:  model.Author{Name: f.names[b.AuthorID]},
	}
}

// newTestRouter wires the auth gate and the four blog routes the same
// way the real router does.
func newTestRouter(repo *fakeBlogRepo) *gin.Engine {
	h := NewBlogHandler(service.NewBlogService(repo))

	r := gin.New()
	blog := r.Group("/api/v1/blog")
	blog.Use(middleware.AuthMiddleware(testSecret, jwt.Verify))
	{
		blog.POST("", h.CreateBlog)
		blog.PUT("", h.UpdateBlog)
		blog.GET("/all", h.ListBlogs)
		blog.GET("/:id", h.GetBlog)
	}
	return r
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewManager(testSecret).Sign(userID)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBlogRoutesRejectMissingCredential(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)

	for _, route := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/v1/blog"},
		{http.MethodPut, "/api/v1/blog"},
		{http.MethodGet, "/api/v1/blog/all"},
		{http.MethodGet, "/api/v1/blog/" + uuid.New().String()},
	} {
		w := doRequest(r, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		assert.JSONEq(t, `{"message":"unauthorized"}`, w.Body.String())
	}
	assert.Zero(t, repo.calls, "store must not be touched without a credential")
}

func TestBlogRoutesRejectBadCredential(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/v1/blog/all", "Bearer garbage", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You are not logged in!"}`, w.Body.String())
	assert.Zero(t, repo.calls)
}

func TestCreateBlogReturnsFullRecordWithCallerAsAuthor(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)
	token := signToken(t, "u1")

	w := doRequest(r, http.MethodPost, "/api/v1/blog", token,
		`{"title":"Hello","content":"World"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Hello", got["title"])
	assert.Equal(t, "World", got["content"])
	assert.Equal(t, "u1", got["authorId"])
	assert.NotEmpty(t, got["id"])
}

func TestCreateBlogAcceptsNullFields(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)
	token := signToken(t, "u1")

	w := doRequest(r, http.MethodPost, "/api/v1/blog", token, `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Nil(t, got["title"])
	assert.Nil(t, got["content"])
}

func TestUpdateBlogReturnsIDAndReassignsAuthor(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)

	// u1 creates the post.
	w := doRequest(r, http.MethodPost, "/api/v1/blog", signToken(t, "u1"),
		`{"title":"Hello","content":"World"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	// u2 overwrites it; the author reference follows the caller.
	w = doRequest(r, http.MethodPut, "/api/v1/blog", signToken(t, "u2"),
		`{"id":"`+id+`","title":"Changed","content":"Body"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+id+`"}`, w.Body.String())

	stored := repo.blogs[uuid.MustParse(id)]
	require.NotNil(t, stored)
	assert.Equal(t, "u2", stored.AuthorID)
	assert.Equal(t, "Changed", *stored.Title)
}

func TestUpdateBlogUnknownIDIsServerError(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodPut, "/api/v1/blog", signToken(t, "u1"),
		`{"id":"`+uuid.New().String()+`","title":"X"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
}

func TestListBlogsEnvelopeAndProjection(t *testing.T) {
	repo := newFakeBlogRepo()
	repo.names["u1"] = "Alice"
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodPost, "/api/v1/blog", signToken(t, "u1"),
		`{"title":"Hello","content":"World"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/blog/all", signToken(t, "u2"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Blogs []map[string]any `json:"blogs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Blogs, 1)

	entry := got.Blogs[0]
	assert.Equal(t, "Hello", entry["title"])
	assert.Equal(t, "World", entry["content"])
	assert.Equal(t, map[string]any{"name": "Alice"}, entry["author"])
	// The list projection never leaks the raw author id.
	assert.NotContains(t, entry, "authorId")
}

func TestListBlogsEmptyIsAnArray(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/v1/blog/all", signToken(t, "u1"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"blogs":[]}`, w.Body.String())
}

func TestGetBlogMissingReturnsNullBody(t *testing.T) {
	repo := newFakeBlogRepo()
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/v1/blog/"+uuid.New().String(),
		signToken(t, "u1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"blog":null}`, w.Body.String())
}

func TestGetBlogStoreFailureReturns411(t *testing.T) {
	repo := newFakeBlogRepo()
	repo.findErr = errors.New("connection reset")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/v1/blog/"+uuid.New().String(),
		signToken(t, "u1"), "")
	assert.Equal(t, 411, w.Code)
	assert.JSONEq(t, `{"message":"error while fetching blog"}`, w.Body.String())
}

func TestGetBlogFound(t *testing.T) {
	repo := newFakeBlogRepo()
	repo.names["u1"] = "Alice"
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodPost, "/api/v1/blog", signToken(t, "u1"),
		`{"title":"Hello","content":"World"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doRequest(r, http.MethodGet, "/api/v1/blog/"+id, signToken(t, "u2"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Blog map[string]any `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Blog)
	assert.Equal(t, id, got.Blog["id"])
	assert.Equal(t, "Hello", got.Blog["title"])
	assert.Equal(t, map[string]any{"name": "Alice"}, got.Blog["author"])
}
