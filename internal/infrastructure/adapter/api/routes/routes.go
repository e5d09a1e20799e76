package routes

import (
	"net/http"

	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	usecaseport "github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the API handlers wired into the router
type Handlers struct {
	Account     *handler.AccountHandler
	Discount    *handler.DiscountHandler
	Catalog     *handler.CatalogHandler
	Redemption  *handler.RedemptionHandler
	Consumption *handler.ConsumptionHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	accounts usecaseport.AccountUseCase,
	sessionSecret []byte,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public catalog
	v1.GET("/plans", h.Catalog.List)
	v1.GET("/plans/:id", h.Catalog.Get)

	// Authenticated surface
	authed := v1.Group("")
	authed.Use(middleware.Authentication(sessionSecret, logger))
	{
		authed.POST("/accounts", h.Account.CreateAccount)
		authed.GET("/accounts/me", h.Account.GetAccount)
		authed.GET("/accounts/me/balance", h.Account.GetBalance)

		authed.POST("/discounts/validate", h.Discount.Validate)
		authed.GET("/discounts/:code/usage", h.Discount.Usage)

		authed.POST("/orders", h.Redemption.CreateOrder)
		authed.POST("/redeem", h.Redemption.Redeem)
		authed.POST("/waitlist/orders", h.Redemption.CreateWaitlistOrder)
		authed.POST("/waitlist/redeem", h.Redemption.RedeemWaitlist)

		authed.POST("/transform", h.Consumption.Transform)
	}

	// Admin surface
	admin := v1.Group("/admin")
	admin.Use(middleware.Authentication(sessionSecret, logger))
	admin.Use(middleware.RequireAdmin(accounts, logger))
	{
		admin.GET("/accounts", h.Account.ListAccounts)
		admin.GET("/transactions", h.Account.ListTransactions)

		admin.GET("/discounts", h.Discount.List)
		admin.POST("/discounts", h.Discount.Create)
		admin.DELETE("/discounts/:code", h.Discount.Delete)

		admin.POST("/plans", h.Catalog.Create)
		admin.PUT("/plans/:id", h.Catalog.Update)
		admin.DELETE("/plans/:id", h.Catalog.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
