package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	playground "github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"github.com/promokit/promokit/internal/api"
	v1 "github.com/promokit/promokit/internal/api/v1"
	"github.com/promokit/promokit/internal/config"
	"github.com/promokit/promokit/internal/engine"
	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/service"
	"github.com/promokit/promokit/internal/validator"
)

// @title PromoKit API
// @version 1.0
// @description Checkout discount rule evaluation service
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Evaluation engine
			provideEngine,

			// Services
			service.NewDiscountService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideEngine(log *logger.Logger) *engine.Engine {
	return engine.New(log)
}

func provideHandlers(
	discountService service.DiscountService,
	log *logger.Logger,
) api.Handlers {
	return api.Handlers{
		Discount: v1.NewDiscountHandler(discountService, log),
		Health:   v1.NewHealthHandler(log),
	}
}

func provideRouter(handlers api.Handlers, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	_ *playground.Validate, // forces validator initialization before requests arrive
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
