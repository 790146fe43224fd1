package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"promptvault/cmd/internal/logger"
	"promptvault/config"
	"promptvault/db"

	"promptvault/cmd/api/router"
	_ "promptvault/docs" // swag will generate this package
)

// @title           PromptVault API
// @version         1.0
// @description     Content backend for the prompt-sharing site
// @BasePath        /api
// @securityDefinitions.apikey  AdminKey
// @in              header
// @name            X-Admin-Key
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	// LOG_LEVEL overrides the config.yaml logging level.
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = cfg.Logging.Level
	}
	if level == "" {
		level = "info"
	}
	logger.Log = logger.NewLogger(level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	r, err := router.New()
	if err != nil {
		log.Fatal(err)
	}
	corsOpts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Key"},
	}
	if cfg.AllowedOrigin != "" {
		corsOpts.AllowedOrigins = []string{cfg.AllowedOrigin}
	}
	handler := cors.New(corsOpts).Handler(r)

	// Bound request bodies to the upload cap plus form overhead.
	maxBody := cfg.Upload.MaxSizeMB<<20 + 1<<20
	bounded := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		req.Body = http.MaxBytesReader(w, req.Body, maxBody)
		handler.ServeHTTP(w, req)
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	logger.Log.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, bounded); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
