// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walletmart/internal/delivery/http/middleware"
	"walletmart/internal/delivery/http/router/handler"
	"walletmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	WalletHandler   *handler.WalletHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	RewardHandler   *handler.RewardHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	walletHandler   *handler.WalletHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	rewardHandler   *handler.RewardHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		walletHandler:   params.WalletHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		rewardHandler:   params.RewardHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/featured", r.productHandler.ListFeatured)
		productGroup.GET("/categories", r.productHandler.Categories)
		productGroup.GET("/:productID", r.productHandler.GetProduct)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.POST("/profile/image", r.userHandler.UploadProfileImage)
		userGroup.POST("/merchant", r.userHandler.RegisterMerchant)
	}

	// Wallet routes
	walletGroup := e.Group("/wallet")
	walletGroup.Use(r.authMiddleware.Authenticate)
	{
		walletGroup.POST("/topup", r.walletHandler.TopUp)
		walletGroup.POST("/withdraw", r.walletHandler.Withdraw)
		walletGroup.GET("/accounts", r.walletHandler.GetAccounts)
		walletGroup.GET("/accounts/:accountID/transactions", r.walletHandler.GetTransactions)
	}

	// Cart and checkout routes
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productID", r.cartHandler.UpdateItemQuantity)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}

	// Order lifecycle routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:orderID", r.orderHandler.GetOrder)
		orderGroup.POST("/:orderID/cancel", r.orderHandler.Cancel)
	}

	// Reward routes
	rewardGroup := e.Group("/rewards")
	rewardGroup.Use(r.authMiddleware.Authenticate)
	{
		rewardGroup.GET("", r.rewardHandler.GetBalance)
		rewardGroup.POST("/redeem", r.rewardHandler.Redeem)
	}

	// Merchant routes that require authentication and "merchant" role
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.GET("/products", r.productHandler.ListMerchantProducts)
		merchantGroup.POST("/products", r.productHandler.CreateProduct)
		merchantGroup.PUT("/products/:productID", r.productHandler.UpdateProduct)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/logs", r.adminHandler.GetLogs)
		adminGroup.GET("/stats", r.adminHandler.GetStats)
		adminGroup.PUT("/users/:userID/status", r.adminHandler.SetUserStatus)
	}
}
