package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/babubl/loan-restructure-pro/internal/api/handlers"
	"github.com/babubl/loan-restructure-pro/internal/api/middleware"
	"github.com/babubl/loan-restructure-pro/internal/cache"
	"github.com/babubl/loan-restructure-pro/internal/config"
	"github.com/babubl/loan-restructure-pro/internal/simulate"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	// Compare responses are memoized; Redis lets replicas share the cache.
	var store cache.Cache = cache.NewMemory()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store = cache.NewRedis(addr)
		log.Printf("Using Redis cache at %s", addr)
	}

	engine := simulate.New()
	simulateHandler := handlers.NewSimulateHandler(engine, store)
	reportHandler := handlers.NewReportHandler(engine)
	strategyHandler := handlers.NewStrategyHandler()
	presetHandler := handlers.NewPresetHandler(cfg.Presets)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.Run)
		api.POST("/compare", simulateHandler.Compare)
		api.POST("/report", reportHandler.Build)

		api.GET("/strategies", strategyHandler.ListStrategies)
		api.GET("/presets", presetHandler.ListPresets)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      cors.Default().Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Starting API server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalf("Failed to start server: %v", err)
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
