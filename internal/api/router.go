package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/promokit/promokit/internal/api/v1"
	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/rest/middleware"
)

type Handlers struct {
	Discount *v1.DiscountHandler
	Health   *v1.HealthHandler
}

func NewRouter(handlers Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.RequestLoggerMiddleware(log))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Discount evaluation routes
	discounts := router.Group("/discounts")
	{
		discounts.POST("/evaluate", handlers.Discount.EvaluateCart)
	}

	// Rule set authoring routes
	rulesets := router.Group("/rulesets")
	{
		rulesets.POST("/validate", handlers.Discount.ValidateRuleSet)
	}
}
