package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rate-aggregator/internal/adapter/cache"
	httpRouter "rate-aggregator/internal/adapter/http"
	"rate-aggregator/internal/adapter/provider"
	"rate-aggregator/internal/config"
	"rate-aggregator/internal/domain/ports"
	"rate-aggregator/internal/metrics"
	"rate-aggregator/internal/service"
	"rate-aggregator/pkg/logger"
)

func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting rate aggregator service")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics()
	rateCache := cache.NewMemoryCache(cfg.Cache.TTL, log)

	// Registry order is the fallback priority: peer aggregator first,
	// then the order-book exchanges.
	cryptoProviders := []ports.Provider{
		provider.NewBestChange(cfg.Providers.BestChangeBaseURL, cfg.Providers.BestChangeAPIKey, cfg.Providers.ExchangeTimeout, log),
		provider.NewBinance(cfg.Providers.BinanceBaseURL, cfg.Providers.ExchangeTimeout, log),
		provider.NewBybit(cfg.Providers.BybitBaseURL, cfg.Providers.ExchangeTimeout, log),
		provider.NewHTX(cfg.Providers.HTXBaseURL, cfg.Providers.ExchangeTimeout, log),
		provider.NewKuCoin(cfg.Providers.KuCoinBaseURL, cfg.Providers.ExchangeTimeout, log),
		provider.NewGateio(cfg.Providers.GateioBaseURL, cfg.Providers.ExchangeTimeout, log),
	}

	selector := service.NewProviderSelector(cryptoProviders)
	fiatProvider := provider.NewExchangeRateAPI(cfg.Providers.FiatBaseURL, cfg.Providers.ExchangeTimeout, log)
	officialProvider := provider.NewCBR(cfg.Providers.CBRURL, cfg.Providers.CBRTimeout, log)

	aggregator := service.NewRateAggregator(rateCache, selector, fiatProvider, officialProvider, log)

	handler := httpRouter.NewHandler(aggregator, log, appMetrics)
	router := httpRouter.NewRouter(handler, log, appMetrics)
	routes := router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancelSweep := context.WithCancel(context.Background())
	if cfg.Cache.SweepInterval > 0 {
		go sweepCache(ctx, rateCache, cfg.Cache.SweepInterval, log)
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	cancelSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// sweepCache periodically drops expired cache entries. Lazy eviction on
// read already keeps callers correct; the sweep only bounds memory between
// reads of cold pairs.
func sweepCache(ctx context.Context, rateCache *cache.MemoryCache, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rateCache.ClearExpired()
		case <-ctx.Done():
			log.Info("Stopping cache sweep goroutine")
			return
		}
	}
}
