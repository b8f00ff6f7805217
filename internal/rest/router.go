// Package rest wires the HTTP surface: router, middleware, and handlers.
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/quotedesk/quotedesk/internal/api/v1"
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/rest/middleware"
	"github.com/quotedesk/quotedesk/internal/types"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Quotation *v1.QuotationHandler
	Item      *v1.ItemHandler
	RateCard  *v1.RateCardHandler
	Document  *v1.DocumentHandler
}

// NewRouter builds the gin engine with the standard middleware chain and all
// v1 routes mounted.
func NewRouter(cfg *config.Configuration, log *logger.Logger, handlers Handlers) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeServer {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.ErrorHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("/v1")

	quotations := root.Group("/quotations")
	{
		quotations.POST("", handlers.Quotation.CreateQuotation)
		quotations.GET("", handlers.Quotation.ListQuotations)
		quotations.GET("/:id", handlers.Quotation.GetQuotation)
		quotations.PUT("/:id", handlers.Quotation.UpdateQuotation)
		quotations.DELETE("/:id", handlers.Quotation.DeleteQuotation)
		quotations.PATCH("/:id/discount", handlers.Quotation.UpdateDiscount)
		quotations.PATCH("/:id/status", handlers.Quotation.UpdateStatus)
		quotations.PATCH("/:id/annexures", handlers.Quotation.UpdateAnnexures)
		quotations.GET("/:id/summary", handlers.Quotation.GetSummary)

		quotations.POST("/:id/interior-items", handlers.Item.CreateInteriorItem)
		quotations.GET("/:id/interior-items", handlers.Item.ListInteriorItems)
		quotations.POST("/:id/ceiling-items", handlers.Item.CreateCeilingItem)
		quotations.GET("/:id/ceiling-items", handlers.Item.ListCeilingItems)
		quotations.POST("/:id/other-items", handlers.Item.CreateOtherItem)
		quotations.GET("/:id/other-items", handlers.Item.ListOtherItems)

		quotations.POST("/:id/preview/:section", handlers.Document.PreviewSection)
		quotations.POST("/:id/agreement-pack", handlers.Document.AssembleAgreementPack)
	}

	interiorItems := root.Group("/interior-items")
	{
		interiorItems.PUT("/:item_id", handlers.Item.UpdateInteriorItem)
		interiorItems.DELETE("/:item_id", handlers.Item.DeleteInteriorItem)
	}

	ceilingItems := root.Group("/ceiling-items")
	{
		ceilingItems.PUT("/:item_id", handlers.Item.UpdateCeilingItem)
		ceilingItems.DELETE("/:item_id", handlers.Item.DeleteCeilingItem)
	}

	otherItems := root.Group("/other-items")
	{
		otherItems.PUT("/:item_id", handlers.Item.UpdateOtherItem)
		otherItems.DELETE("/:item_id", handlers.Item.DeleteOtherItem)
	}

	rates := root.Group("/rates")
	{
		rates.POST("", handlers.RateCard.CreateRateEntry)
		rates.GET("", handlers.RateCard.ListRateEntries)
		rates.GET("/resolve", handlers.RateCard.ResolveRate)
		rates.GET("/:id", handlers.RateCard.GetRateEntry)
		rates.PUT("/:id", handlers.RateCard.UpdateRateEntry)
		rates.PATCH("/:id/base-rate", handlers.RateCard.PatchBaseRate)
		rates.DELETE("/:id", handlers.RateCard.DeleteRateEntry)
	}

	brandAdders := root.Group("/brand-adders")
	{
		brandAdders.POST("", handlers.RateCard.CreateBrandAdder)
		brandAdders.GET("", handlers.RateCard.ListBrandAdders)
		brandAdders.PUT("/:id", handlers.RateCard.UpdateBrandAdder)
		brandAdders.DELETE("/:id", handlers.RateCard.DeleteBrandAdder)
	}

	catalogItems := root.Group("/catalog-items")
	{
		catalogItems.POST("", handlers.RateCard.CreateCatalogItem)
		catalogItems.GET("", handlers.RateCard.ListCatalogItems)
		catalogItems.GET("/:id", handlers.RateCard.GetCatalogItem)
		catalogItems.PUT("/:id", handlers.RateCard.UpdateCatalogItem)
		catalogItems.DELETE("/:id", handlers.RateCard.DeleteCatalogItem)
	}

	return router
}
