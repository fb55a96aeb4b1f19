package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amishharsoor/views-golang/internal/config"
	"github.com/amishharsoor/views-golang/internal/handlers"
	"github.com/amishharsoor/views-golang/internal/middleware"
)

// CORSMiddleware allows the configured frontend origin to call the API.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Admin-Password, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, cfg config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(CORSMiddleware(cfg.AllowedOrigin))

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Public Post Routes ---
		v1.GET("/posts", h.GetPosts)
		v1.GET("/posts/search", h.SearchPosts)
		v1.GET("/posts/:id", h.GetPost)
		v1.GET("/posts/:id/toc", h.GetPostTOC)
		v1.POST("/posts", h.CreatePost)
		v1.PUT("/posts/:id", h.UpdatePost)
		v1.DELETE("/posts", h.DeletePost)

		// --- Admin Routes (local origin only) ---
		admin := v1.Group("/admin")
		admin.Use(middleware.LocalOnly(cfg.TrustProxyHeaders))
		admin.Use(middleware.AdminPassword(cfg.AdminPasswordHash))
		{
			admin.GET("/posts", h.AdminGetPosts)
			admin.POST("/posts", h.AdminCreatePost)
			admin.PUT("/posts", h.AdminUpdatePost)
			admin.DELETE("/posts", h.AdminDeletePost)

			admin.GET("/users", h.AdminGetUsers)
		}
	}

	return router
}
