package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"greencart/shophub/internal/config"
	"greencart/shophub/internal/handler"
	"greencart/shophub/internal/repository"
	"greencart/shophub/internal/service"
	"greencart/shophub/pkg/random"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Load product catalog (built-in seed unless a file is configured)
	products := repository.SeedProducts()
	if cfg.Catalog.File != "" {
		products, err = config.LoadCatalog(cfg.Catalog.File)
		if err != nil {
			logger.Fatal("failed to load catalog", zap.String("file", cfg.Catalog.File), zap.Error(err))
		}
		logger.Info("catalog loaded from file", zap.String("file", cfg.Catalog.File), zap.Int("products", len(products)))
	}
	catalog := repository.NewStaticCatalog(products)

	// 4. Initialize stores (in-memory or Redis)
	var (
		cartStore    repository.CartStore
		rewardLedger repository.RewardLedger
	)
	switch cfg.Store.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Store.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cartStore = repository.NewRedisCartStore(redisClient)
		rewardLedger = repository.NewRedisRewardLedger(redisClient)
		logger.Info("using Redis stores")
	case "memory":
		cartStore = repository.NewMemoryCartStore()
		rewardLedger = repository.NewMemoryRewardLedger()
		logger.Info("using in-memory stores")
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	// 5. Initialize services
	rng := random.New()
	productService := service.NewProductService(catalog, rng)
	cartService := service.NewCartService(cartStore, rewardLedger, catalog)
	adService := service.NewAdService(rng)
	challengeService := service.NewChallengeService(rewardLedger, rng)

	// 6. Initialize handlers
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	adHandler := handler.NewAdHandler(adService)
	challengeHandler := handler.NewChallengeHandler(challengeService)

	// 7. Setup router
	router := handler.SetupRouter(cfg, logger, productHandler, cartHandler, adHandler, challengeHandler)

	// 8. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 9. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
