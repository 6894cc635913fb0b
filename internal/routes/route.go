package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/sociogram/internal/container"
	"github.com/joshua-takyi/sociogram/internal/handlers"
	"github.com/joshua-takyi/sociogram/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "sociogram-api",
		})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register(container.AuthService))
		auth.POST("/login", handlers.Login(container.AuthService))
		auth.POST("/logout", handlers.Logout())
		auth.GET("/me", handlers.Me(container.AuthService))
	}

	users := api.Group("/users")
	{
		users.GET("/:id", handlers.GetUser(container.UserService))
		users.PUT("/:id", handlers.UpdateUser(container.UserService))
		users.DELETE("/:id", handlers.DeleteUser(container.UserService))
		users.PUT("/:id/follow", handlers.FollowUser(container.UserService))
		users.PUT("/:id/unfollow", handlers.UnfollowUser(container.UserService))
	}

	posts := api.Group("/posts")
	{
		posts.POST("", handlers.CreatePost(container.PostService))
		posts.GET("/timeline/all", handlers.GetTimeline(container.PostService))
		posts.GET("/:id", handlers.GetPost(container.PostService))
		posts.PUT("/:id", handlers.UpdatePost(container.PostService))
		posts.DELETE("/:id", handlers.DeletePost(container.PostService))
		posts.PUT("/:id/like", handlers.LikePost(container.PostService))
	}

	return r
}
