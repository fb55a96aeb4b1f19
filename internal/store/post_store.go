package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishharsoor/views-golang/internal/database"
	"github.com/amishharsoor/views-golang/internal/models"
)

const postColumns = "id, title, excerpt, content, category, slug, created_at, updated_at"

// PostStore is the persistence adapter for posts. All SQL lives here,
// written against `?` placeholders and rebound per dialect, so handlers
// never see backend-specific syntax.
type PostStore struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewPostStore(db *sql.DB, dialect database.Dialect) *PostStore {
	return &PostStore{db: db, dialect: dialect}
}

// List returns every post ordered by creation time, newest first by
// default. There is no pagination.
func (s *PostStore) List(order Order) ([]models.Post, error) {
	query := "SELECT " + postColumns + " FROM posts ORDER BY created_at " + string(order)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return collectPosts(rows)
}

// Search matches the command-palette filter: case-insensitive substring
// on title or excerpt, newest first. An empty query returns everything.
func (s *PostStore) Search(q string) ([]models.Post, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(OrderDesc)
	}
	pattern := "%" + strings.ToLower(q) + "%"
	query := s.dialect.Rebind("SELECT " + postColumns + " FROM posts" +
		" WHERE LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? ORDER BY created_at DESC")
	rows, err := s.db.Query(query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return collectPosts(rows)
}

func (s *PostStore) GetByID(id string) (*models.Post, error) {
	query := s.dialect.Rebind("SELECT " + postColumns + " FROM posts WHERE id = ?")
	return scanPost(s.db.QueryRow(query, id))
}

func (s *PostStore) GetBySlug(slug string) (*models.Post, error) {
	query := s.dialect.Rebind("SELECT " + postColumns + " FROM posts WHERE slug = ?")
	return scanPost(s.db.QueryRow(query, slug))
}

// Resolve looks a post up by primary key first and falls back to slug.
// Public URLs carry either form, and the caller cannot tell which one an
// incoming path segment is.
func (s *PostStore) Resolve(idOrSlug string) (*models.Post, error) {
	post, err := s.GetByID(idOrSlug)
	if errors.Is(err, ErrNotFound) {
		return s.GetBySlug(idOrSlug)
	}
	return post, err
}

// Create inserts a new post with a generated id, the category default and
// a slug derived from the title when none was supplied, then reads the
// row back so the caller gets exactly what the engine stored.
func (s *PostStore) Create(input models.CreatePostInput) (*models.Post, error) {
	id := uuid.NewString()

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Title)
	}
	// A title with no alphanumerics derives an empty slug; store NULL so
	// the UNIQUE constraint does not trip on the second such post.
	var slugValue *string
	if slug != "" {
		slugValue = &slug
	}

	now := time.Now().UTC()

	query := s.dialect.Rebind(`INSERT INTO posts
		(id, title, excerpt, content, category, slug, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err := s.db.Exec(query,
		id, input.Title, input.Excerpt, input.Content, category, slugValue, now, now); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return s.GetByID(id)
}

// Update applies only the fields present in the input and always bumps
// updated_at. Updating an id that does not exist returns ErrNotFound.
// The slug is never regenerated on update.
func (s *PostStore) Update(id string, input models.UpdatePostInput) (*models.Post, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Excerpt != nil {
		sets = append(sets, "excerpt = ?")
		args = append(args, *input.Excerpt)
	}
	if input.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *input.Content)
	}
	if input.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *input.Category)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := s.dialect.Rebind("UPDATE posts SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(id)
}

// Delete removes the post by id. Deleting an id that is already gone is a
// silent no-op, which keeps the DELETE surface idempotent.
func (s *PostStore) Delete(id string) error {
	query := s.dialect.Rebind("DELETE FROM posts WHERE id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func scanPost(row *sql.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Category, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &p, nil
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()

	// Keep the zero case a JSON [] rather than null.
	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Category, &p.Slug, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}
