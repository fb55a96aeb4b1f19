package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/amishharsoor/views-golang/internal/database"
	"github.com/amishharsoor/views-golang/internal/store"
)

var postCols = []string{"id", "title", "excerpt", "content", "category", "slug", "created_at", "updated_at"}

func setupAPI(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	h := &Handlers{
		Posts: store.NewPostStore(db, database.SQLite),
		Users: store.NewUserStore(db, database.SQLite),
	}

	router := gin.New()
	router.GET("/posts", h.GetPosts)
	router.GET("/posts/search", h.SearchPosts)
	router.GET("/posts/:id", h.GetPost)
	router.GET("/posts/:id/toc", h.GetPostTOC)
	router.POST("/posts", h.CreatePost)
	router.PUT("/posts/:id", h.UpdatePost)
	router.DELETE("/posts", h.DeletePost)

	cleanup := func() { _ = db.Close() }
	return router, mock, cleanup
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreatePostMissingFields(t *testing.T) {
	router, mock, cleanup := setupAPI(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodPost, "/posts", map[string]string{"title": "only a title"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreatePostInvalidCategory(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodPost, "/posts", map[string]string{
		"title": "T", "excerpt": "e", "content": "c", "category": "Sports",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestGetPostNotFound(t *testing.T) {
	router, mock, cleanup := setupAPI(t)
	defer cleanup()

	mock.ExpectQuery("FROM posts WHERE id = ").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(postCols))
	mock.ExpectQuery("FROM posts WHERE slug = ").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(postCols))

	resp := doJSON(t, router, http.MethodGet, "/posts/nope", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestDeletePostWithoutID(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodDelete, "/posts", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestUpdatePostEmptyBody(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodPut, "/posts/p1", map[string]string{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestCreatePostStorageFailure(t *testing.T) {
	router, mock, cleanup := setupAPI(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO posts").
		WillReturnError(errors.New("UNIQUE constraint failed: posts.slug"))

	resp := doJSON(t, router, http.MethodPost, "/posts", map[string]string{
		"title": "Same Title", "excerpt": "e", "content": "c",
	})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
}

func TestGetPostTOC(t *testing.T) {
	router, mock, cleanup := setupAPI(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery("FROM posts WHERE id = ").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "T", "e", "<h2>Intro</h2><p>body text here</p>", "Tech", "t", now, now))

	resp := doJSON(t, router, http.MethodGet, "/posts/p1/toc", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var out struct {
		Content  string `json:"content"`
		ReadTime int    `json:"readTime"`
		Headings []struct {
			ID    string `json:"id"`
			Text  string `json:"text"`
			Level int    `json:"level"`
		} `json:"headings"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out.Headings) != 1 || out.Headings[0].ID != "heading-0" || out.Headings[0].Text != "Intro" {
		t.Fatalf("headings = %+v", out.Headings)
	}
	if out.ReadTime != 1 {
		t.Errorf("readTime = %d, want 1", out.ReadTime)
	}
	if want := `<h2 id="heading-0">Intro</h2>`; !bytes.Contains([]byte(out.Content), []byte(want)) {
		t.Errorf("content missing anchored heading: %q", out.Content)
	}
}

// TestPostLifecycle walks the whole surface: create with derived slug and
// default category, fetch by slug, partial update that keeps the slug,
// delete, and a final 404.
func TestPostLifecycle(t *testing.T) {
	router, mock, cleanup := setupAPI(t)
	defer cleanup()

	now := time.Now().UTC()

	// 1. POST /posts {"title":"A","excerpt":"e","content":"c"}
	mock.ExpectExec("INSERT INTO posts").
		WithArgs(sqlmock.AnyArg(), "A", "e", "c", "Politics", "a", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM posts WHERE id = ").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "A", "e", "c", "Politics", "a", now, now))

	resp := doJSON(t, router, http.MethodPost, "/posts", map[string]string{
		"title": "A", "excerpt": "e", "content": "c",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201 (%s)", resp.Code, resp.Body.String())
	}
	var created struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Slug     string `json:"slug"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if created.Category != "Politics" || created.Slug != "a" {
		t.Fatalf("created = %+v, want category Politics slug a", created)
	}

	// 2. GET /posts/a resolves through the slug fallback.
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = ?")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(postCols))
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE slug = ?")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "A", "e", "c", "Politics", "a", now, now))

	resp = doJSON(t, router, http.MethodGet, "/posts/a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get by slug: status = %d, want 200", resp.Code)
	}

	// 3. PUT /posts/p1 changes the title; the slug stays "a".
	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET title = ?, excerpt = ?, content = ?, updated_at = ? WHERE id = ?")).
		WithArgs("B", "e", "c", sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM posts WHERE id = ").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "B", "e", "c", "Politics", "a", now, now.Add(time.Second)))

	resp = doJSON(t, router, http.MethodPut, "/posts/p1", map[string]string{
		"title": "B", "excerpt": "e", "content": "c",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("update: status = %d, want 200 (%s)", resp.Code, resp.Body.String())
	}
	var updated struct {
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if updated.Title != "B" || updated.Slug != "a" {
		t.Fatalf("updated = %+v, want title B slug a", updated)
	}

	// 4. DELETE /posts?id=p1
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = ?")).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp = doJSON(t, router, http.MethodDelete, "/posts?id=p1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200", resp.Code)
	}

	// 5. GET /posts/a now misses on both lookups.
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = ?")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(postCols))
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE slug = ?")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(postCols))

	resp = doJSON(t, router, http.MethodGet, "/posts/a", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want 404", resp.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
