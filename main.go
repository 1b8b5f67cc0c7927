package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cipher-backend/config"
	"cipher-backend/handlers"
	"cipher-backend/logger"
	"cipher-backend/models"
)

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.ini"
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	router := setupRouter(cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Msgf("Server starting on port %s", cfg.Server.Port)
		log.Info().Msg("API endpoints:")
		log.Info().Msg("  GET  /api/v1/health                - Health check")
		log.Info().Msg("  GET  /api/v1/algorithms            - Supported ciphers and key formats")
		log.Info().Msg("  POST /api/v1/cipher/encrypt        - Encrypt text")
		log.Info().Msg("  POST /api/v1/cipher/decrypt        - Decrypt text")
		log.Info().Msg("  POST /api/v1/cipher/playfair/grid  - Show the Playfair key square")
		log.Info().Msg("  POST /api/v1/analyze               - Letter statistics of a text")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}
}

func setupRouter(cfg *models.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(handlers.RequestLogger(logger.WithComponent("http")))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", handlers.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{handlers.RequestIDHeader, "X-Cipher-Algorithm"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	cipherHandler := handlers.NewCipherHandler(cfg.Server.MaxTextLength)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)
		api.GET("/algorithms", cipherHandler.ListAlgorithms)
		api.POST("/analyze", cipherHandler.Analyze)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.Encrypt)
			cipher.POST("/decrypt", cipherHandler.Decrypt)
			cipher.POST("/playfair/grid", cipherHandler.PlayfairGrid)
		}
	}

	return router
}
