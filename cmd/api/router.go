package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
	"blog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupBlogRoutes(v1, c)
		setupUserRoutes(v1, c)
	}

	return router
}

// ========================================
// BLOG ROUTES
// ========================================
// Every blog endpoint sits behind the auth gate; the handler can rely on
// a userId being present in the context.
func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	blog := v1.Group("/blog")
	blog.Use(middleware.AuthMiddleware(c.Config.JWT.Secret, jwt.Verify))
	if c.Cache != nil {
		blog.Use(middleware.RateLimit(c.Cache, c.Config.App.RateLimit, time.Minute))
	}
	{
		blog.POST("", c.BlogHandler.CreateBlog)
		blog.PUT("", c.BlogHandler.UpdateBlog)
		blog.GET("/all", c.BlogHandler.ListBlogs)
		blog.GET("/:id", c.BlogHandler.GetBlog)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/user")
	users.Use(middleware.AuthMiddleware(c.Config.JWT.Secret, jwt.Verify))
	{
		users.GET("/:id", c.UserHandler.GetUser)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
