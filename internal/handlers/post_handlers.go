package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amishharsoor/views-golang/internal/content"
	"github.com/amishharsoor/views-golang/internal/models"
	"github.com/amishharsoor/views-golang/internal/store"
)

// GetPosts returns every post, newest first unless ?order=asc is given.
func (h *Handlers) GetPosts(c *gin.Context) {
	posts, err := h.Posts.List(store.OrderFromString(c.Query("order")))
	if err != nil {
		log.Printf("[API] Error fetching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// SearchPosts backs the command palette: substring match on title or
// excerpt, case-insensitive.
func (h *Handlers) SearchPosts(c *gin.Context) {
	posts, err := h.Posts.Search(c.Query("q"))
	if err != nil {
		log.Printf("[API] Error searching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost resolves the path segment as an id first and a slug second.
func (h *Handlers) GetPost(c *gin.Context) {
	post, err := h.Posts.Resolve(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[API] Error fetching post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetPostTOC resolves a post and returns its content with heading anchors
// injected, the extracted table of contents, and the estimated read time.
func (h *Handlers) GetPostTOC(c *gin.Context) {
	post, err := h.Posts.Resolve(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[API] Error fetching post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	anchored := content.InjectHeadingIDs(post.Content)
	c.JSON(http.StatusOK, gin.H{
		"id":       post.ID,
		"content":  anchored,
		"headings": content.ExtractTOC(anchored),
		"readTime": content.ReadTime(post.Content),
	})
}

// CreatePost creates a post. Title, excerpt and content are required; the
// category defaults to Politics and the slug is derived from the title
// when the body does not supply one.
func (h *Handlers) CreatePost(c *gin.Context) {
	var input models.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, excerpt, and content are required"})
		return
	}

	post, err := h.Posts.Create(input)
	if err != nil {
		// Duplicate slugs land here through the UNIQUE constraint.
		log.Printf("[API] Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	log.Printf("[API] Created post %s", post.ID)
	c.JSON(http.StatusCreated, post)
}

// UpdatePost applies a partial update to the post addressed by id. The
// slug is never regenerated, even when the title changes.
func (h *Handlers) UpdatePost(c *gin.Context) {
	var input models.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of title, excerpt, content or category is required"})
		return
	}

	post, err := h.Posts.Update(c.Param("id"), input)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[API] Error updating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post by the id query parameter. Deleting an id
// that is already gone still succeeds.
func (h *Handlers) DeletePost(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	if err := h.Posts.Delete(id); err != nil {
		log.Printf("[API] Error deleting post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
