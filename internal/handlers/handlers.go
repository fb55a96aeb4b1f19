package handlers

import (
	"github.com/amishharsoor/views-golang/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Posts *store.PostStore
	Users *store.UserStore
}
