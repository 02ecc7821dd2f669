// mobintix-site-service
//
// Backend for the Mobintix marketing site and its admin console:
//   - public content API (projects, jobs, blog) with Redis caching
//   - visitor submissions (contact, applications, talent pool)
//   - per-request geo/currency resolution with localized price formatting
//   - token-guarded admin CRUD, xlsx exports, image uploads
//
// Publishes EVENT_MESSAGE_RECEIVED to Redis when a contact message lands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mobintix/site-service/internal/admin"
	"mobintix/site-service/internal/auth"
	"mobintix/site-service/internal/cache"
	"mobintix/site-service/internal/config"
	"mobintix/site-service/internal/db"
	"mobintix/site-service/internal/geo"
	"mobintix/site-service/internal/imagestore"
	"mobintix/site-service/internal/region"
	"mobintix/site-service/internal/scheduler"
	"mobintix/site-service/internal/site"
	"mobintix/site-service/internal/store"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[site-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[site-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[site-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[site-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[site-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[site-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[site-service] Redis connected ✓")

	// Cached entries outlive one warm interval so a stalled warmer degrades
	// to stale content rather than cache misses.
	contentCache := cache.New(rdb, time.Duration(cfg.CacheWarmIntervalHours*2)*time.Hour)

	// ── Object storage (optional) ────────────────────────────────────────────
	var uploader admin.Uploader
	if cfg.S3Endpoint != "" {
		images, err := imagestore.New(imagestore.Config{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
			UseSSL:        cfg.S3UseSSL,
		})
		if err != nil {
			log.Fatalf("[site-service] Object storage: %v", err)
		}
		uploader = images
		log.Printf("[site-service] Image uploads enabled — bucket %q", cfg.S3Bucket)
	} else {
		log.Println("[site-service] S3_ENDPOINT not set — image uploads disabled")
	}

	// ── Stores ───────────────────────────────────────────────────────────────
	projects := store.NewProjectStore(pool)
	jobs := store.NewJobStore(pool)
	messages := store.NewMessageStore(pool)
	applications := store.NewApplicationStore(pool)
	talentPool := store.NewTalentPoolStore(pool)
	blog := store.NewBlogStore(pool)

	// ── Geo / region ─────────────────────────────────────────────────────────
	resolver := geo.NewResolver(cfg.GeoPrimaryURL, cfg.GeoFallbackURL, contentCache)
	regions := region.NewService(resolver)

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	siteHandler := site.NewHandler(site.Deps{
		Projects:     projects,
		Jobs:         jobs,
		Blog:         blog,
		Messages:     messages,
		Applications: applications,
		TalentPool:   talentPool,
		Region:       regions,
		Cache:        contentCache,
		Events:       rdb,
	})
	siteHandler.RegisterRoutes(mux)

	adminHandler := admin.NewHandler(admin.Deps{
		Projects:     projects,
		Jobs:         jobs,
		Blog:         blog,
		Messages:     messages,
		Applications: applications,
		TalentPool:   talentPool,
		Credentials:  auth.NewAuthenticator(pool),
		Sessions:     auth.NewSessions(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour),
		Uploader:     uploader,
		Cache:        contentCache,
	})
	adminHandler.RegisterRoutes(mux)

	// ── Cache warmer ─────────────────────────────────────────────────────────
	warmer := scheduler.New(projects, jobs, contentCache, cfg.CacheWarmIntervalHours)
	if err := warmer.Start(ctx); err != nil {
		log.Fatalf("[site-service] Scheduler: %v", err)
	}
	defer warmer.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[site-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[site-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[site-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[site-service] Shutdown error: %v", err)
	}
	log.Println("[site-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "site-service",
		"version": version,
	})
}
