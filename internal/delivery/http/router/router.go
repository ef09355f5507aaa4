// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zeemart/internal/delivery/http/middleware"
	"zeemart/internal/delivery/http/router/handler"
	"zeemart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ListingHandler      *handler.ListingHandler
	OrderHandler        *handler.OrderHandler
	WalletHandler       *handler.WalletHandler
	UploadHandler       *handler.UploadHandler
	VerificationHandler *handler.VerificationHandler
	NotificationHandler *handler.NotificationHandler
	AdHandler           *handler.AdHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	auth := r.params.AuthMiddleware

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/signup", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/otp", r.params.AuthHandler.RequestOTP)
		authGroup.PUT("/otp", r.params.AuthHandler.VerifyOTP)
		authGroup.GET("/role", r.params.AuthHandler.GetRole, auth.Authenticate)
		authGroup.POST("/role", r.params.AuthHandler.SelectRole, auth.Authenticate)
	}

	// Listing routes: browsing is public, creation requires a seller.
	listingGroup := api.Group("/listings")
	{
		listingGroup.GET("", r.params.ListingHandler.BrowseListings)
		listingGroup.GET("/:id", r.params.ListingHandler.GetListing)
		listingGroup.POST("", r.params.ListingHandler.CreateListing,
			auth.Authenticate, auth.RequireRole(entity.RoleSeller))
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("/buyer", r.params.OrderHandler.ListBuyerOrders)
		orderGroup.GET("/seller", r.params.OrderHandler.ListSellerOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PUT("/:id/status", r.params.OrderHandler.UpdateStatus)
		orderGroup.POST("/:id/dispute", r.params.OrderHandler.Dispute)
	}

	// Wallet routes
	walletGroup := api.Group("/wallet")
	walletGroup.Use(auth.Authenticate)
	{
		walletGroup.GET("", r.params.WalletHandler.GetWallet)
		walletGroup.POST("/deposit", r.params.WalletHandler.Deposit)
		walletGroup.POST("/deposit/confirm", r.params.WalletHandler.ConfirmDeposit)
		walletGroup.GET("/transactions", r.params.WalletHandler.ListTransactions)
	}

	// Upload routes. The verification alias serves older clients.
	api.POST("/upload", r.params.UploadHandler.Upload, auth.Authenticate)
	api.POST("/verification/upload", r.params.UploadHandler.Upload, auth.Authenticate)

	// Verification routes
	verificationGroup := api.Group("/verification")
	verificationGroup.Use(auth.Authenticate)
	{
		verificationGroup.POST("", r.params.VerificationHandler.Submit)
		verificationGroup.GET("", r.params.VerificationHandler.Status)
	}

	// Notification routes
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(auth.Authenticate)
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.PUT("/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.POST("/device", r.params.NotificationHandler.RegisterDevice)
	}

	// Public ad feed
	api.GET("/ads", r.params.AdHandler.BrowseLiveAds)

	// Admin console: authentication plus the ADMIN role, else 401.
	adminGroup := api.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.params.AdminHandler.Dashboard)
		adminGroup.GET("/disputes", r.params.AdminHandler.ListDisputes)
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.POST("/users/:id/ban", r.params.AdminHandler.BanUser)
		adminGroup.POST("/users/:id/unban", r.params.AdminHandler.UnbanUser)
		adminGroup.GET("/verifications", r.params.AdminHandler.ListVerifications)
		adminGroup.POST("/verifications/:userID/review", r.params.AdminHandler.ReviewVerification)
		adminGroup.GET("/ads", r.params.AdHandler.ListAds)
		adminGroup.POST("/ads", r.params.AdHandler.CreateAd)
		adminGroup.PUT("/ads/:id", r.params.AdHandler.UpdateAd)
		adminGroup.DELETE("/ads/:id", r.params.AdHandler.DeleteAd)
	}
}
