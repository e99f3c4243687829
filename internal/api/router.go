package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/hireloop/pricing-engine/internal/api/v1"
	"github.com/hireloop/pricing-engine/internal/rest/middleware"
)

type Handlers struct {
	Quote *v1.QuoteHandler
	Addon *v1.AddonHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Quote routes
	quotes := router.Group("/quotes")
	{
		quotes.POST("", handlers.Quote.CreateQuote)
	}

	// Addon routes
	addons := router.Group("/addons")
	{
		addons.GET("", handlers.Addon.ListAddons)
		addons.GET("/:id", handlers.Addon.GetAddon)
	}

	// Business unit routes
	businessUnits := router.Group("/business-units")
	{
		businessUnits.GET("/:id/baseline", handlers.Addon.GetBaseline)
	}
}
