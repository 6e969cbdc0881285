package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"almanac/api/internal/app"
	"almanac/api/internal/catalog"
	"almanac/api/internal/config"
	"almanac/api/internal/fetch"
	"almanac/api/internal/search"
	"almanac/api/internal/source"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var (
		origin    source.Origin
		dirOrigin *source.Dir
	)
	switch cfg.Origin {
	case "dir":
		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			log.Fatalf("failed to create content dir: %v", err)
		}
		dirOrigin = source.NewDir(cfg.ContentDir)
		origin = dirOrigin
	case "git":
		origin = source.NewRepo(cfg.GitDir, cfg.GitRef)
	case "bucket":
		bucket, err := source.NewBucket(source.BucketConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("minio connection failed: %v", err)
		}
		origin = bucket
	default:
		log.Fatalf("unknown origin %q (want dir, git or bucket)", cfg.Origin)
	}

	var opts []catalog.Option
	if strings.TrimSpace(cfg.RedisURL) != "" {
		log.Printf("Using Redis content cache")
		cache, err := fetch.NewContentCache(cfg.RedisURL, cfg.ContentTTL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer cache.Close()
		opts = append(opts, catalog.WithContentCache(cache))
	}
	catalogService := catalog.NewService(origin, opts...)

	var meiliClient *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meiliClient = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
	}
	searchService := search.NewService(meiliClient, search.NewMemory())
	if meiliClient != nil {
		defer meiliClient.Close()
	}

	service := app.New(catalogService, searchService)
	if err := service.Bootstrap(ctx); err != nil {
		log.Printf("WARNING: bootstrap error (catalog builds lazily on first request): %v", err)
	}

	if cfg.Watch && dirOrigin != nil {
		watcher, err := source.NewWatcher(dirOrigin, 0, func() {
			log.Printf("content change detected, reloading catalog")
			if _, err := service.Reload(context.Background()); err != nil {
				log.Printf("reload failed: %v", err)
			}
		})
		if err != nil {
			log.Printf("WARNING: watcher disabled: %v", err)
		} else {
			watchCtx, stopWatch := context.WithCancel(ctx)
			defer stopWatch()
			go func() {
				if err := watcher.Run(watchCtx); err != nil {
					log.Printf("watcher stopped: %v", err)
				}
			}()
		}
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Almanac API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
