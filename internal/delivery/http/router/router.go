// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	StoreHandler    *handler.StoreHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	storeHandler    *handler.StoreHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		storeHandler:    params.StoreHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.UpsertUser)
		userGroup.GET("/me", r.userHandler.GetMe, r.authMiddleware.RequireUser)
		userGroup.GET("/telegram/:telegramId", r.userHandler.GetUserByTelegramID)
		userGroup.GET("/:id", r.userHandler.GetUserByID)
		userGroup.POST("/:id/ban", r.userHandler.BanUser, r.authMiddleware.RequireAdmin)
		userGroup.POST("/:id/unban", r.userHandler.UnbanUser, r.authMiddleware.RequireAdmin)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/root", r.categoryHandler.GetRootCategories)
		categoryGroup.GET("/tree", r.categoryHandler.GetCategoryTree)
		categoryGroup.GET("/slug/:slug", r.categoryHandler.GetCategoryBySlug)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategoryByID)
		categoryGroup.POST("", r.categoryHandler.CreateCategory, r.authMiddleware.RequireAdmin)
		categoryGroup.PUT("/:id", r.categoryHandler.UpdateCategory, r.authMiddleware.RequireAdmin)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, r.authMiddleware.RequireAdmin)
	}

	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.ListStores, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		storeGroup.GET("/pending", r.storeHandler.GetPendingStores, r.authMiddleware.RequireAdmin)
		storeGroup.GET("/slug/:slug", r.storeHandler.GetStoreBySlug, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		storeGroup.GET("/:id", r.storeHandler.GetStoreByID, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		storeGroup.POST("", r.storeHandler.CreateStore, r.authMiddleware.RequireUser)
		storeGroup.PUT("/:id", r.storeHandler.UpdateStore, r.authMiddleware.RequireUserOrAdmin)
		storeGroup.DELETE("/:id", r.storeHandler.DeleteStore, r.authMiddleware.RequireUserOrAdmin)
		storeGroup.POST("/:id/approve", r.storeHandler.ApproveStore, r.authMiddleware.RequireAdmin)
		storeGroup.POST("/:id/reject", r.storeHandler.RejectStore, r.authMiddleware.RequireAdmin)
		storeGroup.GET("/:storeId/products", r.productHandler.GetProductsByStore, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		productGroup.GET("/search", r.productHandler.SearchProducts, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		productGroup.GET("/slug/:slug", r.productHandler.GetProductBySlug, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		productGroup.GET("/:id", r.productHandler.GetProductByID, middleware.AntiScrape, r.authMiddleware.OptionalIdentity)
		productGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.RequireUserOrAdmin)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.RequireUserOrAdmin)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.RequireUserOrAdmin)
		productGroup.POST("/:id/publish", r.productHandler.PublishProduct, r.authMiddleware.RequireUserOrAdmin)
		productGroup.POST("/:id/unpublish", r.productHandler.UnpublishProduct, r.authMiddleware.RequireUserOrAdmin)
	}
}
