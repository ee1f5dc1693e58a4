package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpLayer "flip-agent/http"
	"flip-agent/repository"
	"flip-agent/service"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		log.Printf("Using Redis cache at %s", addr)
	} else {
		cache = repository.NewMemoryCache()
	}

	dealRepo := repository.NewDealRepositoryMemory()
	dealService := service.NewDealService(dealRepo, cache)
	shareService := service.NewShareService(cache)
	earlySaleService := service.NewEarlySaleService()
	exportService := service.NewExportService()

	dealHandler := httpLayer.NewDealHandler(dealService)
	dealStoreHandler := httpLayer.NewDealStoreHandler(dealService)
	earlySaleHandler := httpLayer.NewEarlySaleHandler(earlySaleService)
	shareHandler := httpLayer.NewShareHandler(shareService)
	exportHandler := httpLayer.NewExportHandler(exportService)

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	limited := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/deal/calculate", limited(dealHandler.Calculate))
	mux.Handle("/deal/defaults", limited(dealHandler.Defaults))
	mux.Handle("/deal/early-sale", limited(earlySaleHandler.Schedule))
	mux.Handle("/deal/share", limited(shareHandler.Handle))
	mux.Handle("/deal/export/csv", limited(exportHandler.CSV))
	mux.Handle("/deal/export/pdf", limited(exportHandler.PDF))
	mux.Handle("/deal/save", limited(dealStoreHandler.Save))
	mux.Handle("/deal/saved", limited(dealStoreHandler.Saved))

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Flip deal calculator listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
