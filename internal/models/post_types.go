package models

import "time"

// Post categories are a closed set; the same set is enforced by the
// CHECK constraint in the posts schema.
const (
	CategoryTech     = "Tech"
	CategoryPolitics = "Politics"
)

// DefaultCategory is applied when a create request omits the category.
const DefaultCategory = CategoryPolitics

// Post Model. Slug is a pointer because the column is nullable (older
// posts were created before slugs existed).
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Excerpt   string    `json:"excerpt" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	Category  string    `json:"category" db:"category"`
	Slug      *string   `json:"slug,omitempty" db:"slug"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CreatePostInput is the request body for creating a post. It is separate
// from the Post model because clients must not supply ids or timestamps.
type CreatePostInput struct {
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"omitempty,oneof=Tech Politics"`
	Slug     string `json:"slug"`
}

// UpdatePostInput carries a partial update: only non-nil fields are
// written, everything else is left untouched.
type UpdatePostInput struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Category *string `json:"category" binding:"omitempty,oneof=Tech Politics"`
}

// Empty reports whether the update carries no recognized field.
func (in UpdatePostInput) Empty() bool {
	return in.Title == nil && in.Excerpt == nil && in.Content == nil && in.Category == nil
}

// AdminUpdatePostInput is the admin PUT body, which carries the target id
// in the payload instead of the path.
type AdminUpdatePostInput struct {
	ID string `json:"id" binding:"required"`
	UpdatePostInput
}
