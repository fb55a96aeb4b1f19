package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amishharsoor/views-golang/internal/models"
	"github.com/amishharsoor/views-golang/internal/store"
)

// The admin surface mirrors the public post CRUD but lives behind the
// localhost gate. It differs in one inherited quirk: PUT addresses the
// post by an id in the body, not the path.

func (h *Handlers) AdminGetPosts(c *gin.Context) {
	posts, err := h.Posts.List(store.OrderDesc)
	if err != nil {
		log.Printf("[Admin] Error fetching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handlers) AdminCreatePost(c *gin.Context) {
	var input models.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, excerpt, and content are required"})
		return
	}

	post, err := h.Posts.Create(input)
	if err != nil {
		log.Printf("[Admin] Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handlers) AdminUpdatePost(c *gin.Context) {
	var input models.AdminUpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}
	if input.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of title, excerpt, content or category is required"})
		return
	}

	post, err := h.Posts.Update(input.ID, input.UpdatePostInput)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("[Admin] Error updating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handlers) AdminDeletePost(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post ID is required"})
		return
	}

	if err := h.Posts.Delete(id); err != nil {
		log.Printf("[Admin] Error deleting post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
