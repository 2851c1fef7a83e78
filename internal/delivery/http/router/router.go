// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sukhan/internal/delivery/http/middleware"
	"sukhan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	PoetHandler       *handler.PoetHandler
	PoemHandler       *handler.PoemHandler
	GenreHandler      *handler.GenreHandler
	EngagementHandler *handler.EngagementHandler
	FeedbackHandler   *handler.FeedbackHandler
	AdminHandler      *handler.AdminHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	AuthMiddleware    *middleware.AuthMiddleware
	LoggerMiddleware  *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	poetHandler       *handler.PoetHandler
	poemHandler       *handler.PoemHandler
	genreHandler      *handler.GenreHandler
	engagementHandler *handler.EngagementHandler
	feedbackHandler   *handler.FeedbackHandler
	adminHandler      *handler.AdminHandler
	analyticsHandler  *handler.AnalyticsHandler
	authMiddleware    *middleware.AuthMiddleware
	loggerMiddleware  *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		poetHandler:       params.PoetHandler,
		poemHandler:       params.PoemHandler,
		genreHandler:      params.GenreHandler,
		engagementHandler: params.EngagementHandler,
		feedbackHandler:   params.FeedbackHandler,
		adminHandler:      params.AdminHandler,
		analyticsHandler:  params.AnalyticsHandler,
		authMiddleware:    params.AuthMiddleware,
		loggerMiddleware:  params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/verify-otp", r.userHandler.VerifyOTP)
		authGroup.POST("/resend-otp", r.userHandler.ResendOTP)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.GET("/engagement", r.engagementHandler.GetUserEngagement)
		userGroup.POST("/feedback", r.feedbackHandler.SubmitFeedback)
	}

	// Public poet routes; registration and edits need a logged-in user.
	poetGroup := e.Group("/poets")
	{
		poetGroup.GET("", r.poetHandler.ListPoets)
		poetGroup.GET("/me", r.poetHandler.GetOwnPoet, r.authMiddleware.Authenticate)
		poetGroup.GET("/:slug", r.poetHandler.GetPoetBySlug)
		poetGroup.GET("/:slug/qr", r.poetHandler.ShareQR)
		poetGroup.POST("", r.poetHandler.RegisterPoet, r.authMiddleware.Authenticate)
		poetGroup.PUT("/:id", r.poetHandler.UpdatePoet, r.authMiddleware.Authenticate)
		poetGroup.POST("/:id/follow", r.engagementHandler.FollowPoet, r.authMiddleware.Authenticate)
		poetGroup.DELETE("/:id/follow", r.engagementHandler.UnfollowPoet, r.authMiddleware.Authenticate)
		poetGroup.GET("/:id/follow", r.engagementHandler.CheckFollow, r.authMiddleware.Authenticate)
	}

	// Public poem routes; submission and engagement need a logged-in user.
	poemGroup := e.Group("/poems")
	{
		poemGroup.GET("", r.poemHandler.ListPoems)
		poemGroup.GET("/:id", r.poemHandler.GetPoem, r.authMiddleware.OptionalAuthenticate)
		poemGroup.POST("", r.poemHandler.SubmitPoem, r.authMiddleware.Authenticate)
		poemGroup.POST("/:id/like", r.engagementHandler.LikePoem, r.authMiddleware.Authenticate)
		poemGroup.DELETE("/:id/like", r.engagementHandler.UnlikePoem, r.authMiddleware.Authenticate)
		poemGroup.GET("/:id/like", r.engagementHandler.CheckLike, r.authMiddleware.Authenticate)
		poemGroup.POST("/:id/rating", r.engagementHandler.RatePoem, r.authMiddleware.Authenticate)
		poemGroup.DELETE("/:id/rating", r.engagementHandler.RemoveRating, r.authMiddleware.Authenticate)
		poemGroup.GET("/:id/rating", r.engagementHandler.CheckRating, r.authMiddleware.Authenticate)
		poemGroup.POST("/:id/save", r.engagementHandler.SavePoem, r.authMiddleware.Authenticate)
		poemGroup.DELETE("/:id/save", r.engagementHandler.UnsavePoem, r.authMiddleware.Authenticate)
		poemGroup.GET("/:id/save", r.engagementHandler.CheckSaved, r.authMiddleware.Authenticate)
	}

	// Genre taxonomy is public.
	genreGroup := e.Group("/genres")
	{
		genreGroup.GET("", r.genreHandler.ListGenres)
		genreGroup.GET("/:slug", r.genreHandler.GetGenreBySlug)
	}

	// Admin back office: authentication plus the admin flag.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.analyticsHandler.GetDashboard)
		adminGroup.GET("/top-poems", r.analyticsHandler.GetTopPoems)
		adminGroup.GET("/growth", r.analyticsHandler.GetGrowth)
		adminGroup.GET("/activity", r.analyticsHandler.GetRecentActivity)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id/block", r.adminHandler.SetUserBlocked)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.GET("/poets", r.poetHandler.ListAllPoets)
		adminGroup.PUT("/poets/:id/publish", r.poetHandler.SetPoetPublished)
		adminGroup.DELETE("/poets/:id", r.poetHandler.DeletePoet)

		adminGroup.GET("/poems", r.poemHandler.ListAllPoems)
		adminGroup.PUT("/poems/:id/approve", r.poemHandler.ApprovePoem)
		adminGroup.PUT("/poems/:id/reject", r.poemHandler.RejectPoem)
		adminGroup.PUT("/poems/:id/toggle", r.poemHandler.TogglePoemVisibility)
		adminGroup.DELETE("/poems/:id", r.poemHandler.DeletePoem)

		adminGroup.POST("/genres", r.genreHandler.CreateGenre)

		adminGroup.GET("/feedback", r.feedbackHandler.ListFeedback)
		adminGroup.PUT("/feedback/:id/reply", r.feedbackHandler.ReplyFeedback)
		adminGroup.DELETE("/feedback/:id", r.feedbackHandler.DeleteFeedback)

		adminGroup.GET("/settings", r.adminHandler.GetSettings)
		adminGroup.PUT("/settings/:key", r.adminHandler.UpdateSetting)

		adminGroup.POST("/reconcile", r.adminHandler.ReconcileCounters)
	}
}
