package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VasaraSujal/king-hub/internal/address"
	"github.com/VasaraSujal/king-hub/internal/cart"
	"github.com/VasaraSujal/king-hub/internal/catalog"
	"github.com/VasaraSujal/king-hub/internal/catalog/cache"
	"github.com/VasaraSujal/king-hub/internal/checkout"
	"github.com/VasaraSujal/king-hub/internal/httpapi"
)

type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	RedisAddr       string
	DBPath          string
	MigrationsPath  string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "https://king-hub-1.onrender.com"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		DBPath:          getEnv("DB_PATH", "./storefront.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./internal/address/migrations"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	log.Println("storefront starting...")

	cfg := loadConfig()

	// Durable address store
	repo, err := address.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open address store: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Address store migrations completed")

	book, err := address.NewBook(context.Background(), repo)
	if err != nil {
		log.Fatalf("Failed to load address book: %v", err)
	}

	// Menu cache is optional; without redis every category switch hits
	// the backend.
	var menuCache catalog.MenuCache
	if cfg.RedisAddr != "" {
		menuCache = cache.NewRedisCache(redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		}))
		log.Printf("Menu cache enabled at %s", cfg.RedisAddr)
	}

	menu := catalog.NewService(catalog.NewClient(cfg.BackendBaseURL), menuCache, catalog.NewStore())
	ledger := cart.NewLedger()
	orch := checkout.NewOrchestrator(ledger, book, checkout.NewPaymentClient(cfg.BackendBaseURL))

	api := httpapi.NewAPI(menu, ledger, book, orch)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.Handler(cfg.RequestTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
