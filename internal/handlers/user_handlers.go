package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amishharsoor/views-golang/internal/store"
)

// AdminGetUsers lists the users table — normally just the seeded author.
func (h *Handlers) AdminGetUsers(c *gin.Context) {
	users, err := h.Users.List(store.OrderDesc)
	if err != nil {
		log.Printf("[Admin] Error fetching users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
