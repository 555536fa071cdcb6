package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"titledb-backend/internal/shared/middleware"
	"titledb-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	authed := middleware.Auth(c.JWTManager)
	admin := middleware.RequireAdmin()

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		auth := v1.Group("/auth")
		{
			auth.POST("/signup", c.AuthHandler.Signup)
			auth.POST("/token", c.AuthHandler.Token)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", c.CategoryHandler.List)
			categories.POST("", authed, admin, c.CategoryHandler.Create)
			categories.DELETE("/:slug", authed, admin, c.CategoryHandler.Delete)
		}

		genres := v1.Group("/genres")
		{
			genres.GET("", c.GenreHandler.List)
			genres.POST("", authed, admin, c.GenreHandler.Create)
			genres.DELETE("/:slug", authed, admin, c.GenreHandler.Delete)
		}

		titles := v1.Group("/titles")
		{
			titles.GET("", c.TitleHandler.List)
			titles.POST("", authed, admin, c.TitleHandler.Create)
			titles.GET("/:title_id", c.TitleHandler.Get)
			titles.PATCH("/:title_id", authed, admin, c.TitleHandler.Update)
			titles.DELETE("/:title_id", authed, admin, c.TitleHandler.Delete)

			reviews := titles.Group("/:title_id/reviews")
			{
				reviews.GET("", c.ReviewHandler.List)
				reviews.POST("", authed, c.ReviewHandler.Create)
				reviews.GET("/:review_id", c.ReviewHandler.Get)
				reviews.PATCH("/:review_id", authed, c.ReviewHandler.Update)
				reviews.DELETE("/:review_id", authed, c.ReviewHandler.Delete)

				comments := reviews.Group("/:review_id/comments")
				{
					comments.GET("", c.CommentHandler.List)
					comments.POST("", authed, c.CommentHandler.Create)
					comments.GET("/:id", c.CommentHandler.Get)
					comments.PATCH("/:id", authed, c.CommentHandler.Update)
					comments.DELETE("/:id", authed, c.CommentHandler.Delete)
				}
			}
		}

		users := v1.Group("/users")
		{
			// The static segment must not be shadowed by :username, so it
			// is registered first.
			users.GET("/me", authed, c.UserHandler.GetSelf)
			users.PATCH("/me", authed, c.UserHandler.UpdateSelf)

			users.GET("", authed, admin, c.UserHandler.List)
			users.POST("", authed, admin, c.UserHandler.Create)
			users.GET("/:username", authed, admin, c.UserHandler.Get)
			users.PATCH("/:username", authed, admin, c.UserHandler.Update)
			users.DELETE("/:username", authed, admin, c.UserHandler.Delete)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		status := http.StatusOK
		if err := c.DB.HealthCheck(dbCtx); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   "ok",
			"version":  c.Config.App.Version,
			"database": dbStatus,
		})
	}
}
