package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"promptvault/config"
	"promptvault/db"
	"promptvault/repositories"
)

// Offline job: reads every prompt id + creation date and writes the
// sitemap to the configured output paths. No interaction with the
// running API server.
func main() {
	config.InitApp()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	cfg := config.GetConfig()
	siteURL := cfg.Sitemap.SiteURL
	if siteURL == "" {
		log.Fatal("sitemap.site_url is not configured")
	}

	refs, err := repositories.NewPromptRepository(db.Database()).ListRefs(ctx)
	if err != nil {
		log.Fatal("failed to read prompts:", err)
	}

	body, err := buildSitemap(siteURL, refs, time.Now())
	if err != nil {
		log.Fatal("failed to build sitemap:", err)
	}

	for _, path := range cfg.Sitemap.OutputPaths {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, body, 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("sitemap written to %s (%d urls)", path, len(refs)+2)
	}
}
